package controller

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	m "github.com/mouse-blink/infoclust/internal/model"
)

var motifHeader = []string{"Rank", "ID", "Len", "Occurrences", "Count", "LLR", "Rel. Entropy", "States"}

func motifRow(rank int, motif *m.Motif) []string {
	return []string{
		strconv.Itoa(rank),
		motif.ID,
		strconv.Itoa(motif.Len()),
		humanize.Comma(int64(motif.Occurrences())),
		humanize.Comma(int64(motif.Count)),
		formatLLR(motif),
		fmt.Sprintf("%.3f", motif.RelativeEntropy),
		formatStates(motif.States),
	}
}

// formatLLR marks saturated motifs with a trailing asterisk.
func formatLLR(motif *m.Motif) string {
	var s string

	switch {
	case math.IsInf(motif.LogLikelihood, 1):
		s = "+inf"
	case math.IsInf(motif.LogLikelihood, -1):
		s = "-inf"
	default:
		s = fmt.Sprintf("%.2f", motif.LogLikelihood)
	}

	if motif.Saturated {
		s += "*"
	}

	return s
}

func formatStates(states []int) string {
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = strconv.Itoa(s)
	}

	return strings.Join(parts, " ")
}

func sequenceName(corpus *m.Corpus, seqID int) string {
	if corpus != nil && seqID >= 0 && seqID < corpus.Len() && corpus.Sequences[seqID].Name != "" {
		return corpus.Sequences[seqID].Name
	}

	return fmt.Sprintf("#%d", seqID)
}
