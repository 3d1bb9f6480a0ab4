package algorithm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poisson/algorithm"
)

// TestParseKind covers names, case folding and unknown input.
func TestParseKind(t *testing.T) {
	k, err := algorithm.ParseKind("Ebeida")
	require.NoError(t, err)
	assert.Equal(t, algorithm.KindEbeida, k)

	k, err = algorithm.ParseKind(" BRIDSON ")
	require.NoError(t, err)
	assert.Equal(t, algorithm.KindBridson, k)

	_, err = algorithm.ParseKind("lloyd")
	assert.ErrorIs(t, err, algorithm.ErrUnknownKind)
}

// TestKind_String checks the canonical names.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "Ebeida", algorithm.KindEbeida.String())
	assert.Equal(t, "Bridson", algorithm.KindBridson.String())
	assert.Equal(t, "Kind(9)", algorithm.Kind(9).String())
}

// TestNew maps kinds onto creators.
func TestNew(t *testing.T) {
	for _, k := range algorithm.Kinds() {
		c, err := algorithm.New[float64](k)
		require.NoError(t, err)
		assert.Equal(t, k.String(), c.Name())
	}

	_, err := algorithm.New[float32](algorithm.Kind(-1))
	assert.ErrorIs(t, err, algorithm.ErrUnknownKind)
}

// TestFamilies checks the run order.
func TestFamilies(t *testing.T) {
	fams := algorithm.Families[float64](algorithm.WithCandidates(10))
	require.Len(t, fams, 2)
	assert.Equal(t, algorithm.MethodEbeida, fams[0].Name())
	assert.Equal(t, algorithm.MethodBridson, fams[1].Name())
}

// TestOptions_Panics checks that meaningless knob values are rejected early.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { algorithm.WithCandidates(0) })
	assert.Panics(t, func() { algorithm.WithInitialAttempts(-1) })
	assert.Panics(t, func() { algorithm.WithThrowFactor(0) })
	assert.Panics(t, func() { algorithm.WithMaxRefinement(-1) })
	assert.Panics(t, func() { algorithm.WithMaxCells(0) })

	assert.NotPanics(t, func() { algorithm.WithMaxRefinement(0) })
	assert.NotPanics(t, func() { algorithm.WithThrowFactor(2.5) })
}
