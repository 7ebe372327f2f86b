package domain

import (
	"fmt"
	"math"

	m "github.com/mouse-blink/infoclust/internal/model"
)

// StateRelativeEntropy returns, for every state, the relative entropy in bits
// of its emission distribution against the background. Zero-probability
// symbols contribute nothing.
func StateRelativeEntropy(hmm *m.Model) ([]float64, error) {
	if hmm == nil {
		return nil, fmt.Errorf("%w: nil model", ErrInvalidArgument)
	}

	rel := make([]float64, hmm.States())
	for state := range rel {
		rel[state] = emissionEntropy(hmm, state)
	}

	return rel, nil
}

// ProjectSignal replaces every label with the relative entropy of its state,
// producing the signal the segment finder searches.
func ProjectSignal(labels []int, rel []float64) ([]float64, error) {
	signal := make([]float64, len(labels))

	for i, label := range labels {
		if label < 0 || label >= len(rel) {
			return nil, fmt.Errorf("%w: label %d at position %d", ErrStateOutOfRange, label, i)
		}

		signal[i] = rel[label]
	}

	return signal, nil
}

// RelativeEntropy is the per-position mean relative entropy of the emission
// profile spelled by states.
func RelativeEntropy(hmm *m.Model, states []int) (float64, error) {
	if hmm == nil {
		return 0, fmt.Errorf("%w: nil model", ErrInvalidArgument)
	}

	if len(states) == 0 {
		return 0, ErrEmptyMotif
	}

	x := 0.0

	for i, state := range states {
		if !hmm.HasState(state) {
			return 0, fmt.Errorf("%w: state %d at position %d", ErrStateOutOfRange, state, i)
		}

		x += emissionEntropy(hmm, state)
	}

	return x / float64(len(states)), nil
}

func emissionEntropy(hmm *m.Model, state int) float64 {
	x := 0.0

	for symbol, p := range hmm.Emissions[state] {
		if p > 0 {
			x += p * math.Log2(p/hmm.Background[symbol])
		}
	}

	return x
}
