package algorithm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewConfig_Defaults verifies the deterministic defaults and that later
// options override earlier ones.
func TestNewConfig_Defaults(t *testing.T) {
	cfg := newConfig()
	assert.Equal(t, defaultCandidates, cfg.candidates)
	assert.Equal(t, defaultInitialAttempts, cfg.initialAttempts)
	assert.Equal(t, defaultThrowFactor, cfg.throwFactor)
	assert.Equal(t, defaultMaxRefinement, cfg.maxRefinement)
	assert.Equal(t, defaultMaxCells, cfg.maxCells)

	cfg = newConfig(WithCandidates(5), WithCandidates(7), WithThrowFactor(1.5))
	assert.Equal(t, 7, cfg.candidates)
	assert.Equal(t, 1.5, cfg.throwFactor)
	assert.Equal(t, defaultMaxRefinement, cfg.maxRefinement)
}

// TestRoundTo checks that float32 rounding is applied before legality.
func TestRoundTo(t *testing.T) {
	v, back := roundTo[float32]([]float64{0.1, 0.99999999999})
	assert.Equal(t, float64(float32(0.1)), back[0])
	assert.Equal(t, float32(1), v[1], "rounds up onto the excluded face")
	assert.False(t, inDomain(back))

	w, back64 := roundTo[float64]([]float64{0.25, 0.5})
	assert.Equal(t, []float64{0.25, 0.5}, back64)
	assert.Equal(t, 0.5, w[1])
}

// TestRngFromSeed checks the stream is keyed by the seed only.
func TestRngFromSeed(t *testing.T) {
	var a, b [32]byte
	b[31] = 1
	x, y := rngFromSeed(a), rngFromSeed(a)
	z := rngFromSeed(b)
	first := x.Uint64()
	assert.Equal(t, first, y.Uint64())
	assert.NotEqual(t, first, z.Uint64())
}
