package algorithm

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/poisson"
	"github.com/katalvlaran/poisson/geom"
)

// base carries the state both families share: the resolved radius, the
// domain, the seeded stream and the occupancy grid.
type base[F geom.Float] struct {
	cfg    config
	rng    *rand.Rand
	radius F
	typ    poisson.Type
	dim    int
	occ    *occupancy
}

// newBase validates p and seeds the stream. method prefixes errors.
func newBase[F geom.Float](method string, p poisson.Params, seed [32]byte, cfg config) (base[F], error) {
	r, err := p.Resolve()
	if err != nil {
		return base[F]{}, fmt.Errorf("%s: %w", method, err)
	}
	radius := F(r)
	if !(radius > 0) || math.IsInf(float64(radius), 0) {
		// the scalar type cannot represent the derived radius
		return base[F]{}, fmt.Errorf("%s: %w: %g does not fit the scalar type", method, poisson.ErrBadRadius, r)
	}

	return base[F]{
		cfg:    cfg,
		rng:    rngFromSeed(seed),
		radius: radius,
		typ:    p.Type,
		dim:    p.Dim,
		occ:    newOccupancy(p.Dim, 2*float64(radius), p.Type == poisson.Periodic),
	}, nil
}

// Radius returns the radius in effect.
func (b *base[F]) Radius() F {
	return b.radius
}

// Type returns the domain type.
func (b *base[F]) Type() poisson.Type {
	return b.typ
}

// StaysLegal reports whether v is farther than 2r from every accepted or
// restricted point. Vectors of the wrong dimension or with non-finite
// coordinates are never legal.
func (b *base[F]) StaysLegal(v geom.Vec[F]) bool {
	q, ok := b.prepare(v)
	if !ok {
		return false
	}
	return b.occ.legal(q)
}

// restrictPoint stores v and returns its id and whether it lies in the
// domain. Unusable vectors are ignored (ok == false).
func (b *base[F]) restrictPoint(v geom.Vec[F]) (id int, in bool, ok bool) {
	q, ok := b.prepare(v)
	if !ok {
		return 0, false, false
	}
	id = b.occ.insert(q)
	return id, inDomain(q), true
}

// prepare widens and normalizes an external vector.
func (b *base[F]) prepare(v geom.Vec[F]) ([]float64, bool) {
	if len(v) != b.dim {
		return nil, false
	}
	p := make([]float64, len(v))
	for i, c := range v {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		p[i] = f
	}
	return b.occ.normalize(p), true
}

// accept rounds a float64 candidate to F and inserts it when it stays in
// [0,1)^d after rounding and is legal.
func (b *base[F]) accept(p []float64) (geom.Vec[F], int, bool) {
	v, back := roundTo[F](p)
	if !inDomain(back) || !b.occ.legal(back) {
		return nil, 0, false
	}
	return v, b.occ.insert(back), true
}
