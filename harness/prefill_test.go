package harness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poisson/geom"
	"github.com/katalvlaran/poisson/harness"
)

func TestNoPrefill(t *testing.T) {
	inject := harness.NoPrefill[float64]()(0.1)
	_, ok := inject(nil, false)
	assert.False(t, ok)
	_, ok = inject(geom.Of[float64](0.5, 0.5), true)
	assert.False(t, ok)
}

// TestAtStart checks that fixed points come out once, before the first pull.
func TestAtStart(t *testing.T) {
	a, b := geom.Of[float64](0.5, 0.5), geom.Of[float64](-1, 2)
	prefill := harness.AtStart(a, b)

	inject := prefill(0.1)
	p, ok := inject(nil, false)
	require.True(t, ok)
	assert.Equal(t, a, p)
	p, ok = inject(nil, false)
	require.True(t, ok)
	assert.Equal(t, b, p)
	_, ok = inject(nil, false)
	assert.False(t, ok)

	// a fresh run starts over; nothing is injected once points flow
	inject = prefill(0.1)
	_, ok = inject(a, true)
	assert.False(t, ok)
	p, ok = inject(nil, false)
	require.True(t, ok)
	assert.Equal(t, a, p)

	p[0] = 9
	assert.Equal(t, 0.5, a[0], "injected points are copies")
}

// TestNearLast checks one injection per new point, within radius of it.
func TestNearLast(t *testing.T) {
	const radius = 0.05
	inject := harness.NearLast[float64](harness.SequentialSeed())(radius)

	_, ok := inject(nil, false)
	assert.False(t, ok, "nothing before the first pull")

	last := geom.Of[float64](0.3, 0.7)
	p, ok := inject(last, true)
	require.True(t, ok)
	assert.Less(t, p.Distance(last), radius)

	_, ok = inject(last, true)
	assert.False(t, ok, "same last point: no second injection")
	_, ok = inject(last.Clone(), true)
	assert.False(t, ok, "compared by value")

	next := geom.Of[float64](0.8, 0.1)
	p, ok = inject(next, true)
	require.True(t, ok)
	assert.Less(t, p.Distance(next), radius)
}

// TestNearLast_PerRunStream checks that every run replays the same stream.
func TestNearLast_PerRunStream(t *testing.T) {
	prefill := harness.NearLast[float32](harness.SequentialSeed())
	pts := []geom.Vec[float32]{geom.Of[float32](0.1, 0.2, 0.3), geom.Of[float32](0.6, 0.6, 0.6)}

	run := func() []geom.Vec[float32] {
		inject := prefill(0.01)
		var out []geom.Vec[float32]
		for _, v := range pts {
			p, ok := inject(v, true)
			require.True(t, ok)
			out = append(out, p)
		}
		return out
	}
	assert.Equal(t, run(), run())

	other := harness.NearLast[float32]([32]byte{9})(0.01)
	p, _ := other(pts[0], true)
	assert.NotEqual(t, run()[0], p)
}
