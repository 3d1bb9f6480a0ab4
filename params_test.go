package poisson_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poisson"
)

// TestResolve_Errors verifies every validation branch maps to its sentinel.
func TestResolve_Errors(t *testing.T) {
	cases := []struct {
		name string
		p    poisson.Params
		err  error
	}{
		{"DimTooSmall", poisson.WithSamples(1, 100, 0.8, poisson.Bounded), poisson.ErrBadDimension},
		{"DimTooLarge", poisson.WithSamples(9, 100, 0.8, poisson.Bounded), poisson.ErrBadDimension},
		{"NoSamples", poisson.WithSamples(2, 0, 0.8, poisson.Bounded), poisson.ErrBadSamples},
		{"ZeroRelative", poisson.WithSamples(2, 100, 0, poisson.Bounded), poisson.ErrBadRelativeRadius},
		{"RelativeAboveOneBounded", poisson.WithSamples(2, 100, 1.5, poisson.Bounded), poisson.ErrBadRelativeRadius},
		{"NaNRelative", poisson.WithSamples(2, 100, math.NaN(), poisson.Periodic), poisson.ErrBadRelativeRadius},
		{"TooFewForBoundedBox", poisson.WithSamples(2, 1, 1, poisson.Bounded), poisson.ErrBadSamples},
		{"NegativeRadius", poisson.WithRadius(2, -0.1, poisson.Bounded), poisson.ErrBadRadius},
		{"InfRadius", poisson.WithRadius(3, math.Inf(1), poisson.Periodic), poisson.ErrBadRadius},
		{"UnknownType", poisson.WithSamples(2, 100, 0.5, poisson.Type(7)), poisson.ErrBadType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.p.Resolve()
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestResolve_ExplicitRadiusWins checks that a radius overrides samples.
func TestResolve_ExplicitRadiusWins(t *testing.T) {
	p := poisson.WithRadius(2, 0.02, poisson.Bounded)
	p.Samples = 5
	r, err := p.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 0.02, r)
}

// TestRadiusFor_Scaling checks monotonicity and the relative factor.
func TestRadiusFor_Scaling(t *testing.T) {
	for dim := poisson.MinDim; dim <= poisson.MaxDim; dim++ {
		for _, typ := range []poisson.Type{poisson.Bounded, poisson.Periodic} {
			full, err := poisson.RadiusFor(1000, 1, dim, typ)
			require.NoError(t, err)
			half, err := poisson.RadiusFor(1000, 0.5, dim, typ)
			require.NoError(t, err)
			more, err := poisson.RadiusFor(4000, 1, dim, typ)
			require.NoError(t, err)

			assert.Greater(t, full, 0.0)
			assert.InDelta(t, full/2, half, 1e-12, "relative radius scales linearly")
			assert.Less(t, more, full, "more samples need a smaller radius")
		}
	}
}

// TestRadiusFor_BoundedExceedsPeriodic: the bounded box lets disks overhang,
// so the same sample count packs with a larger radius.
func TestRadiusFor_BoundedExceedsPeriodic(t *testing.T) {
	b, err := poisson.RadiusFor(101, 0.8, 2, poisson.Bounded)
	require.NoError(t, err)
	p, err := poisson.RadiusFor(101, 0.8, 2, poisson.Periodic)
	require.NoError(t, err)
	assert.Greater(t, b, p)

	// hexagonal packing: 101·π·q² = π/(2√3)
	q := math.Sqrt(1 / (2 * math.Sqrt(3) * 101))
	assert.InDelta(t, 0.8*q, p, 1e-12)
	assert.InDelta(t, 0.8*q/(1-2*q), b, 1e-12)
}

// TestParseType covers names, aliases and String round-trips.
func TestParseType(t *testing.T) {
	for _, typ := range []poisson.Type{poisson.Bounded, poisson.Periodic} {
		got, err := poisson.ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
	got, err := poisson.ParseType(" Normal ")
	require.NoError(t, err)
	assert.Equal(t, poisson.Bounded, got)

	_, err = poisson.ParseType("klein-bottle")
	assert.ErrorIs(t, err, poisson.ErrBadType)
	assert.Equal(t, "Type(5)", poisson.Type(5).String())
}

// TestHint_String checks both hint renderings.
func TestHint_String(t *testing.T) {
	assert.Equal(t, "(0, 12)", poisson.Hint{Lower: 0, Upper: 12, HasUpper: true}.String())
	assert.Equal(t, "(3, none)", poisson.Hint{Lower: 3}.String())
}
