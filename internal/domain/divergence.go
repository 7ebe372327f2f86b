package domain

import (
	"fmt"
	"math"

	m "github.com/mouse-blink/infoclust/internal/model"
)

// Divergence compares two state sequences through their emission
// distributions. The shorter sequence slides along the longer one; at every
// offset both directed KL sums are taken over the aligned positions, and the
// smallest value seen in either direction is returned. Symbols to which
// either side assigns zero probability are skipped, so the value
// underestimates divergence between distributions with different support.
//
// The result is symmetric in a and b. Values near or below zero mean the
// sequences are very similar.
func Divergence(hmm *m.Model, a, b []int) (float64, error) {
	if hmm == nil {
		return 0, fmt.Errorf("%w: nil model", ErrInvalidArgument)
	}

	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyMotif
	}

	if err := checkStates(hmm, a); err != nil {
		return 0, err
	}

	if err := checkStates(hmm, b); err != nil {
		return 0, err
	}

	if len(b) > len(a) {
		a, b = b, a
	}

	best := math.Inf(1)

	for offset := 0; offset <= len(a)-len(b); offset++ {
		x, y := 0.0, 0.0

		for j, sb := range b {
			ea := hmm.Emissions[a[offset+j]]
			eb := hmm.Emissions[sb]

			for c := range ea {
				if ea[c] > 0 && eb[c] > 0 {
					x += ea[c] * math.Log2(ea[c]/eb[c])
					y += eb[c] * math.Log2(eb[c]/ea[c])
				}
			}
		}

		best = min(best, x, y)
	}

	return best, nil
}

func checkStates(hmm *m.Model, states []int) error {
	for i, s := range states {
		if !hmm.HasState(s) {
			return fmt.Errorf("%w: state %d at position %d", ErrStateOutOfRange, s, i)
		}
	}

	return nil
}
