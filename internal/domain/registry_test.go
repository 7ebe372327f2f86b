package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/infoclust/internal/model"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	registry, err := NewRegistry(testModel(), 1.0, 4, nil)
	require.NoError(t, err)

	return registry
}

func TestNewRegistry_RequiresModel(t *testing.T) {
	_, err := NewRegistry(nil, 1.0, 0, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRegistry_SelfInsertMerges(t *testing.T) {
	registry := newTestRegistry(t)

	merged, err := registry.Insert(motifOf(3, stateARich, stateARich, stateCRich))
	require.NoError(t, err)
	assert.False(t, merged)

	merged, err = registry.Insert(motifOf(3, stateARich, stateARich, stateCRich))
	require.NoError(t, err)
	assert.True(t, merged)

	require.Equal(t, 1, registry.Len())
	assert.Equal(t, 2, registry.Motifs()[0].Count)
}

func TestRegistry_HigherLikelihoodSurvives(t *testing.T) {
	states := []int{stateARich, stateCRich, stateARich}

	orders := map[string][]float64{
		"strong first": {10, 2},
		"weak first":   {2, 10},
	}

	for name, lls := range orders {
		t.Run(name, func(t *testing.T) {
			registry := newTestRegistry(t)

			for _, ll := range lls {
				_, err := registry.Insert(motifOf(ll, states...))
				require.NoError(t, err)
			}

			require.Equal(t, 1, registry.Len())

			survivor := registry.Motifs()[0]
			assert.Equal(t, 10.0, survivor.LogLikelihood)
			assert.Equal(t, 2, survivor.Count)
		})
	}
}

func TestRegistry_DistinctMotifsAppend(t *testing.T) {
	registry := newTestRegistry(t)

	for _, s := range []int{stateARich, stateCRich, stateTRich, stateUniform} {
		merged, err := registry.Insert(motifOf(1, s, s, s))
		require.NoError(t, err)
		assert.False(t, merged)
	}

	assert.Equal(t, 4, registry.Len())
}

func TestRegistry_FirstEquivalentEntryAbsorbs(t *testing.T) {
	registry := newTestRegistry(t)

	_, err := registry.Insert(motifOf(1, stateARich, stateARich))
	require.NoError(t, err)
	_, err = registry.Insert(motifOf(1, stateCRich, stateCRich))
	require.NoError(t, err)

	// the silent state matches everything, so the first entry takes it
	merged, err := registry.Insert(motifOf(5, stateSilent, stateSilent))
	require.NoError(t, err)
	require.True(t, merged)

	motifs := registry.Motifs()
	require.Len(t, motifs, 2)
	assert.Equal(t, []int{stateSilent, stateSilent}, motifs[0].States)
	assert.Equal(t, 2, motifs[0].Count)
	assert.Equal(t, []int{stateCRich, stateCRich}, motifs[1].States)
	assert.Equal(t, 1, motifs[1].Count)
}

func TestRegistry_InsertAssignsID(t *testing.T) {
	registry := newTestRegistry(t)

	motif := motifOf(1, stateARich, stateCRich)
	_, err := registry.Insert(motif)
	require.NoError(t, err)
	assert.Equal(t, MotifID(motif.States), motif.ID)

	named := motifOf(1, stateTRich)
	named.ID = "custom"
	_, err = registry.Insert(named)
	require.NoError(t, err)
	assert.Equal(t, "custom", named.ID)
}

func TestRegistry_InsertErrors(t *testing.T) {
	registry := newTestRegistry(t)

	_, err := registry.Insert(nil)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = registry.Insert(motifOf(1, stateARich))
	require.NoError(t, err)

	_, err = registry.Insert(motifOf(1, 99))
	require.ErrorIs(t, err, ErrStateOutOfRange)

	_, err = registry.Insert(motifOf(1))
	require.ErrorIs(t, err, ErrEmptyMotif)
}

func TestRegistry_Rescore(t *testing.T) {
	registry := newTestRegistry(t)

	_, err := registry.Insert(motifOf(1, stateGOnly, stateUniform))
	require.NoError(t, err)
	_, err = registry.Insert(motifOf(1, stateARich, stateARich))
	require.NoError(t, err)

	require.NoError(t, registry.Rescore())

	motifs := registry.Motifs()
	assert.InDelta(t, 1.0, motifs[0].RelativeEntropy, 1e-12)

	want, err := RelativeEntropy(testModel(), []int{stateARich, stateARich})
	require.NoError(t, err)
	assert.InDelta(t, want, motifs[1].RelativeEntropy, 1e-12)
}

func TestRegistry_RankedByDescendingLikelihood(t *testing.T) {
	registry := newTestRegistry(t)

	inserted := []*m.Motif{
		motifOf(1, stateARich, stateARich, stateARich),
		motifOf(5, stateCRich, stateCRich, stateCRich),
		motifOf(5, stateTRich, stateTRich, stateTRich),
		motifOf(3, stateUniform, stateUniform, stateUniform),
	}
	for _, motif := range inserted {
		_, err := registry.Insert(motif)
		require.NoError(t, err)
	}

	ranked := registry.Ranked()
	require.Len(t, ranked, 4)

	assert.Same(t, inserted[1], ranked[0])
	assert.Same(t, inserted[2], ranked[1])
	assert.Same(t, inserted[3], ranked[2])
	assert.Same(t, inserted[0], ranked[3])

	// ranking leaves insertion order alone
	assert.Same(t, inserted[0], registry.Motifs()[0])
}

func TestMotifID(t *testing.T) {
	id := MotifID([]int{1, 2, 3})

	assert.Len(t, id, 16)
	assert.Equal(t, id, MotifID([]int{1, 2, 3}))
	assert.NotEqual(t, id, MotifID([]int{3, 2, 1}))
	assert.NotEqual(t, id, MotifID([]int{1, 2}))
}

func TestRegistry_RankedPutsNaNLast(t *testing.T) {
	registry := newTestRegistry(t)

	inserted := []*m.Motif{
		motifOf(math.NaN(), stateARich, stateARich, stateARich),
		motifOf(3, stateCRich, stateCRich, stateCRich),
		motifOf(7, stateTRich, stateTRich, stateTRich),
	}
	for _, motif := range inserted {
		_, err := registry.Insert(motif)
		require.NoError(t, err)
	}

	ranked := registry.Ranked()
	require.Len(t, ranked, 3)

	assert.Same(t, inserted[2], ranked[0])
	assert.Same(t, inserted[1], ranked[1])
	assert.Same(t, inserted[0], ranked[2])
}
