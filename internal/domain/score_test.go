package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/infoclust/internal/adapter"
	adaptermocks "github.com/mouse-blink/infoclust/internal/adapter/mocks"
	m "github.com/mouse-blink/infoclust/internal/model"
)

func TestNewScorer_RequiresCollaborators(t *testing.T) {
	index := adaptermocks.NewMockSubstringIndex(t)

	_, err := NewScorer(nil, &m.Corpus{}, index, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewScorer(testModel(), nil, index, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewScorer(testModel(), &m.Corpus{}, nil, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestScorer_Locate(t *testing.T) {
	index := adaptermocks.NewMockSubstringIndex(t)
	scorer, err := NewScorer(testModel(), testCorpus(), index, nil)
	require.NoError(t, err)

	states := []int{stateARich, stateCRich}
	index.On("Search", states).Return(4, 7, nil)

	motif := motifOf(0, states...)
	require.NoError(t, scorer.Locate(motif))
	assert.Equal(t, 4, motif.IndexStart)
	assert.Equal(t, 7, motif.IndexEnd)
	assert.Equal(t, 3, motif.Occurrences())
}

func TestScorer_LocateErrors(t *testing.T) {
	index := adaptermocks.NewMockSubstringIndex(t)
	scorer, err := NewScorer(testModel(), testCorpus(), index, nil)
	require.NoError(t, err)

	require.ErrorIs(t, scorer.Locate(motifOf(0)), ErrEmptyMotif)

	boom := errors.New("index unavailable")
	index.On("Search", []int{stateTRich}).Return(0, 0, boom)

	require.ErrorIs(t, scorer.Locate(motifOf(0, stateTRich)), boom)
}

func TestScorer_LogLikelihood_NoOccurrences(t *testing.T) {
	index := adaptermocks.NewMockSubstringIndex(t)
	scorer, err := NewScorer(testModel(), testCorpus(), index, nil)
	require.NoError(t, err)

	motif := motifOf(42, stateARich, stateCRich)
	motif.IndexStart, motif.IndexEnd = 5, 5

	require.NoError(t, scorer.LogLikelihood(motif))
	assert.Equal(t, 0.0, motif.LogLikelihood)
	assert.False(t, motif.Saturated)
}

func TestScorer_LogLikelihood_MixturePrior(t *testing.T) {
	hmm := testModel()
	corpus := testCorpus()
	index := adaptermocks.NewMockSubstringIndex(t)

	scorer, err := NewScorer(hmm, corpus, index, nil)
	require.NoError(t, err)

	states := []int{stateARich, stateCRich, stateARich}
	index.On("Occurrence", 0).Return(m.Occurrence{Seq: 0, Pos: 2}, nil)
	index.On("Occurrence", 1).Return(m.Occurrence{Seq: 1, Pos: 1}, nil)

	motif := motifOf(0, states...)
	motif.IndexStart, motif.IndexEnd = 0, 2

	require.NoError(t, scorer.LogLikelihood(motif))

	// c = 3 * (10 - 3), two occurrences
	prior := math.Log(2.0/21) - math.Log(19.0/21)
	// residues A C A under A-rich, C-rich, A-rich at both occurrences
	perHit := 3*math.Log(0.85) - 3*math.Log(0.25)

	assert.InDelta(t, 2*(perHit+prior), motif.LogLikelihood, 1e-9)
	assert.False(t, motif.Saturated)
}

func TestScorer_LogLikelihood_SaturatedStaysFinite(t *testing.T) {
	hmm := testModel()
	corpus := &m.Corpus{Sequences: []m.Sequence{{
		Name:     "tiny",
		Residues: []int{0, 1, 0},
		Labels:   []int{stateARich, stateCRich, stateARich},
	}}}

	scorer, err := NewScorer(hmm, corpus, adapter.NewLabelIndex(corpus), nil)
	require.NoError(t, err)

	motif := motifOf(0, stateARich, stateCRich, stateARich)
	require.NoError(t, scorer.Locate(motif))
	require.Equal(t, 1, motif.Occurrences())

	require.NoError(t, scorer.LogLikelihood(motif))

	assert.True(t, motif.Saturated)
	assert.False(t, math.IsInf(motif.LogLikelihood, 0))
	assert.False(t, math.IsNaN(motif.LogLikelihood))

	// λ0 clamps to 1/2 so both priors are equal
	assert.InDelta(t, 3*math.Log(0.85)-3*math.Log(0.25), motif.LogLikelihood, 1e-9)
}

func TestScorer_LogLikelihood_Errors(t *testing.T) {
	index := adaptermocks.NewMockSubstringIndex(t)
	scorer, err := NewScorer(testModel(), testCorpus(), index, nil)
	require.NoError(t, err)

	require.ErrorIs(t, scorer.LogLikelihood(motifOf(0)), ErrEmptyMotif)
	require.ErrorIs(t, scorer.LogLikelihood(motifOf(0, 17)), ErrStateOutOfRange)

	boom := errors.New("corrupt index")
	index.On("Occurrence", 0).Return(m.Occurrence{}, boom).Once()

	failing := motifOf(0, stateARich)
	failing.IndexStart, failing.IndexEnd = 0, 1
	require.ErrorIs(t, scorer.LogLikelihood(failing), boom)

	index.On("Occurrence", 3).Return(m.Occurrence{Seq: 0, Pos: 9}, nil).Once()

	overrun := motifOf(0, stateARich, stateARich)
	overrun.IndexStart, overrun.IndexEnd = 3, 4
	require.ErrorIs(t, scorer.LogLikelihood(overrun), ErrInvalidArgument)
}

func TestScorer_LogLikelihood_ZeroProbabilitiesStayFinite(t *testing.T) {
	hmm := &m.Model{
		Alphabet:   "ACG",
		Background: []float64{0.5, 0.5, 0},
		Emissions: [][]float64{
			{0, 0, 0},
			{0.5, 0.5, 0},
			{0.2, 0.2, 0.6},
		},
	}
	require.NoError(t, hmm.Validate())

	corpus := &m.Corpus{Sequences: []m.Sequence{{
		Name:     "gapped",
		Residues: []int{0, 2, 1, 0, 1, 2, 0, 1},
		Labels:   []int{0, 0, 1, 1, 1, 2, 1, 1},
	}}}
	require.NoError(t, corpus.Validate(hmm))

	scorer, err := NewScorer(hmm, corpus, adapter.NewLabelIndex(corpus), nil)
	require.NoError(t, err)

	// c = 8 - 2 windows, one occurrence each
	prior := math.Log(1.0/6) - math.Log(5.0/6)

	silent := motifOf(0, 0, 0)
	require.NoError(t, scorer.Locate(silent))
	require.Equal(t, 1, silent.Occurrences())
	require.NoError(t, scorer.LogLikelihood(silent))

	assert.False(t, math.IsInf(silent.LogLikelihood, 0))
	assert.False(t, math.IsNaN(silent.LogLikelihood))
	// residue G has zero background and zero emission, so only the A counts
	assert.InDelta(t, logZero-math.Log(0.5)+prior, silent.LogLikelihood, 1e-6)

	rare := motifOf(0, 2, 1)
	require.NoError(t, scorer.Locate(rare))
	require.Equal(t, 1, rare.Occurrences())
	require.NoError(t, scorer.LogLikelihood(rare))

	assert.False(t, math.IsInf(rare.LogLikelihood, 0))
	assert.False(t, math.IsNaN(rare.LogLikelihood))
	assert.InDelta(t, math.Log(0.6)-logZero+prior, rare.LogLikelihood, 1e-6)
}
