package algorithm

import (
	"math"

	"github.com/katalvlaran/poisson"
	"github.com/katalvlaran/poisson/geom"
)

// MethodBridson is the canonical name of the Bridson family.
const MethodBridson = "Bridson"

// Bridson builds generators that grow the sample set outward from active
// samples: each step throws up to k darts into the annulus [2r, 4r] around a
// random active sample and retires the sample once all k miss.
//
// The zero value uses the default configuration.
type Bridson[F geom.Float] struct {
	opts []Option
}

// NewBridson returns a Bridson creator with the given options.
func NewBridson[F geom.Float](opts ...Option) Bridson[F] {
	return Bridson[F]{opts: opts}
}

// Name returns "Bridson".
func (Bridson[F]) Name() string {
	return MethodBridson
}

// New builds a Bridson generator for p seeded by seed.
// Returns the wrapped poisson parameter sentinels on invalid p.
func (b Bridson[F]) New(p poisson.Params, seed [32]byte) (poisson.Generator[F], error) {
	bs, err := newBase[F](MethodBridson, p, seed, newConfig(b.opts...))
	if err != nil {
		return nil, err
	}
	return &bridson[F]{base: bs}, nil
}

type bridson[F geom.Float] struct {
	base[F]
	active  []int // ids of samples that may still spawn neighbours
	started bool
	done    bool
}

// Restrict stores v as occupied. In-domain points also become active, so
// the run grows around them like around its own samples.
func (g *bridson[F]) Restrict(v geom.Vec[F]) {
	id, in, ok := g.restrictPoint(v)
	if ok && in {
		g.active = append(g.active, id)
	}
}

// Next returns the next sample or false once no active sample is left.
func (g *bridson[F]) Next() (geom.Vec[F], bool) {
	if g.done {
		return nil, false
	}
	if !g.started {
		g.started = true
		if len(g.active) == 0 {
			if v, ok := g.seedSample(); ok {
				return v, true
			}
		}
	}

	cand := make([]float64, g.dim)
	inner := 2 * float64(g.radius)
	innerPow := math.Pow(inner, float64(g.dim))
	outerPow := math.Pow(2*inner, float64(g.dim))
	for len(g.active) > 0 {
		i := g.rng.IntN(len(g.active))
		center := g.occ.points[g.active[i]]
		for k := 0; k < g.cfg.candidates; k++ {
			// radius uniform by volume over the annulus
			rho := math.Pow(innerPow+g.rng.Float64()*(outerPow-innerPow), 1/float64(g.dim))
			dir := geom.RandomDirection[float64](g.rng, g.dim)
			for a := range cand {
				cand[a] = center[a] + dir[a]*rho
				if g.typ == poisson.Periodic {
					cand[a] = wrap(cand[a])
				}
			}
			if v, id, ok := g.accept(cand); ok {
				g.active = append(g.active, id)
				return v, true
			}
		}
		last := len(g.active) - 1
		g.active[i] = g.active[last]
		g.active = g.active[:last]
	}

	g.done = true
	return nil, false
}

// seedSample throws uniform darts for the first sample.
func (g *bridson[F]) seedSample() (geom.Vec[F], bool) {
	cand := make([]float64, g.dim)
	for n := 0; n < g.cfg.initialAttempts; n++ {
		uniformIn(g.rng, cand)
		if v, id, ok := g.accept(cand); ok {
			g.active = append(g.active, id)
			return v, true
		}
	}
	return nil, false
}

// SizeHint returns (0, free cells): every future sample lands in a distinct
// cell that holds no point yet. Restrict can only lower the true count, so
// the lower bound stays 0.
func (g *bridson[F]) SizeHint() poisson.Hint {
	if g.done {
		return poisson.Hint{Lower: 0, Upper: 0, HasUpper: true}
	}
	return poisson.Hint{Lower: 0, Upper: g.occ.freeCells(), HasUpper: true}
}
