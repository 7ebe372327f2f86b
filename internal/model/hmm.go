// Package model defines the data structures for motif discovery.
package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidModel reports an emission table or background that does not fit
// the alphabet.
var ErrInvalidModel = errors.New("invalid model")

// Model is the read-only emission table of a labelled state model together
// with the background residue distribution. A single instance is shared by
// every component of a run.
type Model struct {
	// Alphabet maps symbol indices to residue letters.
	Alphabet string
	// Background is the residue distribution, indexed by symbol.
	Background []float64
	// Emissions is indexed [state][symbol].
	Emissions [][]float64
}

// States returns the number of states in the model.
func (m *Model) States() int {
	return len(m.Emissions)
}

// Symbols returns the size of the residue alphabet.
func (m *Model) Symbols() int {
	return len(m.Background)
}

// Emission returns the probability that state emits symbol.
func (m *Model) Emission(state, symbol int) float64 {
	return m.Emissions[state][symbol]
}

// HasState reports whether state indexes a row of the emission table.
func (m *Model) HasState(state int) bool {
	return state >= 0 && state < len(m.Emissions)
}

// Validate checks the table shapes and that every probability is finite and
// non-negative.
func (m *Model) Validate() error {
	if m == nil {
		return fmt.Errorf("%w: nil model", ErrInvalidModel)
	}

	if len(m.Background) == 0 {
		return fmt.Errorf("%w: empty background", ErrInvalidModel)
	}

	if m.Alphabet != "" && len([]rune(m.Alphabet)) != len(m.Background) {
		return fmt.Errorf("%w: alphabet has %d letters, background has %d entries",
			ErrInvalidModel, len([]rune(m.Alphabet)), len(m.Background))
	}

	if len(m.Emissions) == 0 {
		return fmt.Errorf("%w: no states", ErrInvalidModel)
	}

	if err := checkDistribution(m.Background); err != nil {
		return fmt.Errorf("%w: background: %w", ErrInvalidModel, err)
	}

	for state, row := range m.Emissions {
		if len(row) != len(m.Background) {
			return fmt.Errorf("%w: state %d has %d emissions, want %d",
				ErrInvalidModel, state, len(row), len(m.Background))
		}

		if err := checkDistribution(row); err != nil {
			return fmt.Errorf("%w: state %d: %w", ErrInvalidModel, state, err)
		}
	}

	return nil
}

func checkDistribution(p []float64) error {
	for i, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("probability %d is %v", i, v)
		}
	}

	return nil
}
