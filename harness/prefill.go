package harness

import (
	"math/rand/v2"

	"github.com/katalvlaran/poisson/geom"
)

// Injection is one prefilled point and the StaysLegal answer it got just
// before it was restricted.
type Injection[F geom.Float] struct {
	Point geom.Vec[F]
	Legal bool
}

// Injector proposes points to restrict. The driver calls it with the last
// emitted point (ok false before the first pull) until it declines, then
// pulls once and repeats.
type Injector[F geom.Float] func(last geom.Vec[F], ok bool) (geom.Vec[F], bool)

// Prefiller builds a fresh Injector for one run from the generator's radius.
type Prefiller[F geom.Float] func(radius F) Injector[F]

// NoPrefill never injects. A run with NoPrefill matches a run without a
// Prefiller.
func NoPrefill[F geom.Float]() Prefiller[F] {
	return func(F) Injector[F] {
		return func(geom.Vec[F], bool) (geom.Vec[F], bool) {
			return nil, false
		}
	}
}

// NearLast injects one point within radius of every newly emitted point,
// at last + dir·u·radius with dir uniform on the sphere and u uniform in
// [0,1). Each run draws from its own ChaCha8 stream keyed by seed. Injected
// points are always within 2r of an emitted point, so they are never legal.
func NearLast[F geom.Float](seed [32]byte) Prefiller[F] {
	return func(radius F) Injector[F] {
		rng := rand.New(rand.NewChaCha8(seed))
		var prev geom.Vec[F]
		return func(last geom.Vec[F], ok bool) (geom.Vec[F], bool) {
			if !ok || (prev != nil && prev.Equal(last)) {
				return nil, false
			}
			prev = last.Clone()
			dir := geom.RandomDirection[F](rng, last.Dim())
			return last.Add(dir.Scale(F(rng.Float64()) * radius)), true
		}
	}
}

// AtStart injects points, in order, before the first pull and nothing after.
func AtStart[F geom.Float](points ...geom.Vec[F]) Prefiller[F] {
	return func(F) Injector[F] {
		next := 0
		return func(_ geom.Vec[F], ok bool) (geom.Vec[F], bool) {
			if ok || next >= len(points) {
				return nil, false
			}
			p := points[next].Clone()
			next++
			return p, true
		}
	}
}
