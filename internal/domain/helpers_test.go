package domain

import (
	m "github.com/mouse-blink/infoclust/internal/model"
)

const (
	stateUniform = iota
	stateARich
	stateCRich
	stateSilent
	stateGOnly
	stateTOnly
	stateTRich
)

func testModel() *m.Model {
	return &m.Model{
		Alphabet:   "ACGT",
		Background: []float64{0.25, 0.25, 0.25, 0.25},
		Emissions: [][]float64{
			stateUniform: {0.25, 0.25, 0.25, 0.25},
			stateARich:   {0.85, 0.05, 0.05, 0.05},
			stateCRich:   {0.05, 0.85, 0.05, 0.05},
			stateSilent:  {0, 0, 0, 0},
			stateGOnly:   {0, 0, 1, 0},
			stateTOnly:   {0, 0, 0, 1},
			stateTRich:   {0.05, 0.05, 0.05, 0.85},
		},
	}
}

// testCorpus holds one A/C island shared by the first two sequences and a T
// island in the third, each at least six positions long.
func testCorpus() *m.Corpus {
	const (
		u = stateUniform
		a = stateARich
		c = stateCRich
		t = stateTRich
	)

	return &m.Corpus{Sequences: []m.Sequence{
		{
			Name:     "first",
			Residues: []int{2, 3, 0, 1, 0, 1, 0, 1, 2, 3},
			Labels:   []int{u, u, a, c, a, c, a, c, u, u},
		},
		{
			Name:     "second",
			Residues: []int{3, 0, 1, 0, 1, 0, 1, 2, 2, 3},
			Labels:   []int{u, a, c, a, c, a, c, u, u, u},
		},
		{
			Name:     "third",
			Residues: []int{0, 1, 2, 3, 3, 3, 3, 3, 3, 0},
			Labels:   []int{u, u, u, t, t, t, t, t, t, u},
		},
	}}
}

func testParams() m.Params {
	return m.Params{
		MinLen:             6,
		MaxLen:             25,
		Floor:              0.1,
		MinDensityIncrease: 1.0,
		MergeThreshold:     1.0,
		Threads:            1,
	}
}

func motifOf(ll float64, states ...int) *m.Motif {
	return &m.Motif{
		States:        states,
		LogLikelihood: ll,
		Count:         1,
		IndexStart:    -1,
		IndexEnd:      -1,
	}
}

type orchestratorFunc func(seqID int) (m.SequenceResult, error)

func (f orchestratorFunc) ProcessSequence(seqID int) (m.SequenceResult, error) {
	return f(seqID)
}
