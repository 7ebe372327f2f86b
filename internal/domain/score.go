package domain

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/mouse-blink/infoclust/internal/adapter"
	m "github.com/mouse-blink/infoclust/internal/model"
)

// Scorer computes the significance of motif candidates against a corpus.
type Scorer struct {
	hmm    *m.Model
	corpus *m.Corpus
	index  adapter.SubstringIndex
	logger *slog.Logger
}

// NewScorer binds a scorer to the shared model, the corpus and its label
// index. A nil logger discards output.
func NewScorer(hmm *m.Model, corpus *m.Corpus, index adapter.SubstringIndex, logger *slog.Logger) (*Scorer, error) {
	if hmm == nil || corpus == nil || index == nil {
		return nil, fmt.Errorf("%w: scorer needs a model, a corpus and an index", ErrInvalidArgument)
	}

	return &Scorer{
		hmm:    hmm,
		corpus: corpus,
		index:  index,
		logger: componentLogger(logger, "scorer"),
	}, nil
}

// Locate looks the motif's state sequence up in the index and records the
// occurrence range.
func (s *Scorer) Locate(motif *m.Motif) error {
	if len(motif.States) == 0 {
		return ErrEmptyMotif
	}

	start, end, err := s.index.Search(motif.States)
	if err != nil {
		return fmt.Errorf("failed to search index: %w", err)
	}

	motif.IndexStart, motif.IndexEnd = start, end

	return nil
}

// logZero is the log score of a zero probability.
var logZero = math.Log(math.SmallestNonzeroFloat64)

func scaledLog(p float64) float64 {
	if p <= 0 {
		return logZero
	}

	return math.Log(p)
}

// LogLikelihood sets motif.LogLikelihood to the prior-weighted log-likelihood
// ratio of the motif model against the background, summed over every
// occurrence in the motif's index range.
//
// With w the motif width, occur the number of occurrences and c the window
// count of the corpus, the mixture priors are λ1 = occur/c and
// λ0 = (c-occur)/c. When the motif fills every window λ0 would be zero;
// it is clamped to 1/(2c) and the motif is flagged Saturated. Zero
// probabilities score as logZero, so the result is always finite.
func (s *Scorer) LogLikelihood(motif *m.Motif) error {
	w := motif.Len()
	if w == 0 {
		return ErrEmptyMotif
	}

	if err := checkStates(s.hmm, motif.States); err != nil {
		return err
	}

	occur := motif.Occurrences()
	motif.Saturated = false
	motif.LogLikelihood = math.Log(1.0)

	if occur == 0 {
		return nil
	}

	c := max(s.corpus.WindowCount(w), occur)

	lambda0 := float64(c-occur) / float64(c)
	lambda1 := float64(occur) / float64(c)

	if lambda0 == 0 {
		lambda0 = 0.5 / float64(c)
		lambda1 = 1 - lambda0
		motif.Saturated = true

		s.logger.Debug("motif fills every window; clamping background prior",
			slog.Int("width", w), slog.Int("occurrences", occur))
	}

	prior := math.Log(lambda1) - math.Log(lambda0)
	total := math.Log(1.0)

	for i := motif.IndexStart; i < motif.IndexEnd; i++ {
		o, err := s.index.Occurrence(i)
		if err != nil {
			return fmt.Errorf("failed to resolve occurrence %d: %w", i, err)
		}

		if o.Seq < 0 || o.Seq >= s.corpus.Len() {
			return fmt.Errorf("%w: occurrence in sequence %d", ErrInvalidArgument, o.Seq)
		}

		residues := s.corpus.Sequences[o.Seq].Residues
		if o.Pos < 0 || o.Pos+w > len(residues) {
			return fmt.Errorf("%w: occurrence at %d overruns sequence %d", ErrInvalidArgument, o.Pos, o.Seq)
		}

		a, b := 0.0, 0.0

		for j, state := range motif.States {
			residue := residues[o.Pos+j]
			a += scaledLog(s.hmm.Emission(state, residue))
			b += scaledLog(s.hmm.Background[residue])
		}

		total += (a - b) + prior
	}

	motif.LogLikelihood = total

	return nil
}
