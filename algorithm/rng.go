// Package algorithm - RNG utilities shared by both families.
//
// Goals:
//   - Determinism: the same 32-byte seed yields the same run on every platform.
//   - Encapsulation: one factory, no global or time-based sources.
//
// Concurrency:
//   - rand.Rand is NOT goroutine-safe; each generator owns its own stream.
package algorithm

import (
	"math/rand/v2"

	"github.com/katalvlaran/poisson/geom"
)

// rngFromSeed returns a ChaCha8-backed stream keyed by seed.
// Complexity: O(1).
func rngFromSeed(seed [32]byte) *rand.Rand {
	return rand.New(rand.NewChaCha8(seed))
}

// uniformIn fills dst with independent U[0,1) coordinates.
func uniformIn(rng *rand.Rand, dst []float64) {
	for i := range dst {
		dst[i] = rng.Float64()
	}
}

// roundTo converts p to the generator scalar type and back, so legality is
// judged on exactly the coordinates that will be emitted.
func roundTo[F geom.Float](p []float64) (geom.Vec[F], []float64) {
	v := make(geom.Vec[F], len(p))
	back := make([]float64, len(p))
	for i, c := range p {
		v[i] = F(c)
		back[i] = float64(v[i])
	}
	return v, back
}
