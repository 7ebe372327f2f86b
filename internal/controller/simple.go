package controller

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/infoclust/internal/model"
)

// SimpleUI implements UI with plain tables written to the cobra command's
// output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayReport prints the ranked motifs.
func (s *SimpleUI) DisplayReport(report m.Report) error {
	if len(report.Motifs) == 0 {
		s.printf("No motifs found in %s sequences\n", humanize.Comma(int64(report.Sequences)))
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(motifHeader)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for i := range report.Motifs {
		table.Append(motifRow(i+1, &report.Motifs[i]))
	}

	table.SetFooter([]string{
		"", "", "", "", "",
		"Motifs " + humanize.Comma(int64(len(report.Motifs))),
		"Candidates " + humanize.Comma(int64(report.Candidates)),
		"Sequences " + humanize.Comma(int64(report.Sequences)),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	if hasSaturated(report) {
		s.printf("* motif fills every window of the corpus; background prior clamped\n")
	}

	return nil
}

// DisplaySegments prints one row per raw candidate.
func (s *SimpleUI) DisplaySegments(corpus *m.Corpus, results []m.SequenceResult) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Sequence", "Start", "Stop", "Len", "Sum", "Min Density", "Max Density", "Verdict"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	total, kept := 0, 0

	for _, res := range results {
		for _, c := range res.Candidates {
			table.Append([]string{
				sequenceName(corpus, res.SeqID),
				strconv.Itoa(c.Segment.Start),
				strconv.Itoa(c.Segment.Stop),
				strconv.Itoa(c.Segment.Len()),
				fmt.Sprintf("%.3f", c.Segment.Sum),
				fmt.Sprintf("%.3f", c.Segment.MinDensity),
				fmt.Sprintf("%.3f", c.Segment.MaxDensity),
				string(c.Verdict),
			})

			total++

			if c.Verdict == m.VerdictKeep {
				kept++
			}
		}
	}

	if total == 0 {
		s.printf("No segments found\n")
		return nil
	}

	table.SetFooter([]string{
		"Segments " + humanize.Comma(int64(total)),
		"", "", "", "", "", "",
		"Kept " + humanize.Comma(int64(kept)),
	})
	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayStates prints the relative entropy of every state.
func (s *SimpleUI) DisplayStates(hmm *m.Model, rel []float64) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"State", "Relative Entropy (bits)", "Top Residue"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for state, r := range rel {
		table.Append([]string{strconv.Itoa(state), fmt.Sprintf("%.4f", r), topResidue(hmm, state)})
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func hasSaturated(report m.Report) bool {
	for i := range report.Motifs {
		if report.Motifs[i].Saturated {
			return true
		}
	}

	return false
}

// topResidue names the most probable residue of state, or "-" when the
// state emits nothing.
func topResidue(hmm *m.Model, state int) string {
	if hmm == nil || !hmm.HasState(state) {
		return "-"
	}

	best, bestP := -1, 0.0

	for symbol, p := range hmm.Emissions[state] {
		if p > bestP {
			best, bestP = symbol, p
		}
	}

	if best < 0 {
		return "-"
	}

	letters := []rune(hmm.Alphabet)
	if best < len(letters) {
		return fmt.Sprintf("%c (%.2f)", letters[best], bestP)
	}

	return fmt.Sprintf("%d (%.2f)", best, bestP)
}
