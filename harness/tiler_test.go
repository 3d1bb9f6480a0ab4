package harness_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poisson"
	"github.com/katalvlaran/poisson/geom"
	"github.com/katalvlaran/poisson/harness"
)

// TestOffsets_Order pins the base-3 decoding, axis 0 first.
func TestOffsets_Order(t *testing.T) {
	offs := harness.Offsets[float64](2)
	require.Len(t, offs, 9)
	assert.Equal(t, geom.Of[float64](-1, -1), offs[0])
	assert.Equal(t, geom.Of[float64](0, -1), offs[1])
	assert.Equal(t, geom.Of[float64](1, -1), offs[2])
	assert.Equal(t, geom.Of[float64](-1, 0), offs[3])
	assert.Equal(t, geom.Of[float64](0, 0), offs[4])
	assert.Equal(t, geom.Of[float64](1, 1), offs[8])

	for d := 2; d <= 5; d++ {
		offs := harness.Offsets[float32](d)
		assert.Len(t, offs, int(math.Pow(3, float64(d))))
		assert.Equal(t, geom.Zero[float32](d), offs[len(offs)/2])
	}
}

// TestTile_Bounded checks the identity tiling.
func TestTile_Bounded(t *testing.T) {
	pts := []geom.Vec[float64]{geom.Of[float64](0.1, 0.2), geom.Of[float64](0.7, 0.9)}
	tiles := harness.Tile(pts, poisson.Bounded)
	require.Len(t, tiles, 2)
	for i, tl := range tiles {
		assert.Equal(t, pts[i], tl.Point)
		assert.Equal(t, i, tl.Source)
	}
	assert.Empty(t, harness.Tile[float64](nil, poisson.Periodic))
}

// TestTile_Periodic checks shape and provenance of the 3^d-fold tiling.
func TestTile_Periodic(t *testing.T) {
	pts := []geom.Vec[float64]{geom.Of[float64](0.25, 0.5), geom.Of[float64](0.75, 0.125)}
	tiles := harness.Tile(pts, poisson.Periodic)
	require.Len(t, tiles, 18)
	assert.Equal(t, geom.Of[float64](-0.75, -0.5), tiles[0].Point)
	assert.Equal(t, 0, tiles[0].Source)
	assert.Equal(t, geom.Of[float64](0.75, 0.125), tiles[13].Point)
	assert.Equal(t, 1, tiles[13].Source)
}

// TestTile_Float32Widened checks that float32 points are shifted in float64.
func TestTile_Float32Widened(t *testing.T) {
	p := geom.Of[float32](0.000973045825958252, 0.5)
	tiles := harness.Tile([]geom.Vec[float32]{p}, poisson.Periodic)
	require.Len(t, tiles, 9)

	// offset (+1, 0) is index 2 + 3·1
	want := float64(p[0]) + 1
	assert.Equal(t, want, tiles[5].Point[0])
	assert.NotEqual(t, float64(p[0]+1), want, "float32 shift rounds")
	assert.Equal(t, 0.5, tiles[5].Point[1])
}

// TestTile_Properties checks the tiling on random point sets.
func TestTile_Properties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 100
	properties := gopter.NewProperties(params)

	sets := gen.SliceOfN(6, gen.SliceOfN(3, gen.Float64Range(0, 0.999)))

	properties.Property("every tile is its source shifted by a unit offset", prop.ForAll(
		func(raw [][]float64) bool {
			pts := make([]geom.Vec[float64], len(raw))
			for i, r := range raw {
				pts[i] = geom.Of[float64](r...)
			}
			tiles := harness.Tile(pts, poisson.Periodic)
			if len(tiles) != len(pts)*27 {
				return false
			}
			for _, tl := range tiles {
				for _, c := range tl.Point.Sub(pts[tl.Source]) {
					if math.Abs(c-math.Round(c)) > 1e-12 || math.Abs(c) > 1+1e-12 {
						return false
					}
				}
			}
			return true
		},
		sets,
	))

	properties.TestingRun(t)
}

// TestCheckContainment reports the offending axis.
func TestCheckContainment(t *testing.T) {
	ok := []geom.Vec[float64]{geom.Of[float64](0, 0.5), geom.Of[float64](0.999, 0)}
	assert.NoError(t, harness.CheckContainment("Fake", ok))

	bad := append(ok, geom.Of[float64](0.5, 1))
	err := harness.CheckContainment("Fake", bad)
	require.ErrorIs(t, err, harness.ErrDomainViolation)
	assert.Contains(t, err.Error(), "point 2 leaves [0, 1) on axis 1 (value 1)")
	assert.Contains(t, err.Error(), "(0.5, 1)")

	err = harness.CheckContainment("Fake", []geom.Vec[float32]{geom.Of[float32](-0.25, 0.5)})
	assert.ErrorIs(t, err, harness.ErrDomainViolation)
}
