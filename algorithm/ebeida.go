package algorithm

import (
	"math"

	"github.com/katalvlaran/poisson"
	"github.com/katalvlaran/poisson/geom"
)

// MethodEbeida is the canonical name of the Ebeida family.
const MethodEbeida = "Ebeida"

// Ebeida builds generators that throw darts into a flat list of active grid
// cells. A cell leaves the list once it takes a sample; after a phase of
// ⌈A·|active|⌉ throws every surviving cell is split into 2^d children and
// children already covered by some sample's 2r-ball are discarded.
//
// The zero value uses the default configuration.
type Ebeida[F geom.Float] struct {
	opts []Option
}

// NewEbeida returns an Ebeida creator with the given options.
func NewEbeida[F geom.Float](opts ...Option) Ebeida[F] {
	return Ebeida[F]{opts: opts}
}

// Name returns "Ebeida".
func (Ebeida[F]) Name() string {
	return MethodEbeida
}

// New builds an Ebeida generator for p seeded by seed.
// Returns the wrapped poisson parameter sentinels on invalid p.
func (e Ebeida[F]) New(p poisson.Params, seed [32]byte) (poisson.Generator[F], error) {
	bs, err := newBase[F](MethodEbeida, p, seed, newConfig(e.opts...))
	if err != nil {
		return nil, err
	}
	g := &ebeida[F]{base: bs, side: bs.occ.side, spent: make(map[int]struct{})}
	g.active = g.topCells()
	g.startPhase()
	return g, nil
}

// cell is an axis-aligned box [origin, origin+side)^d at the current level.
// top is the flat index of its level-0 ancestor in the occupancy grid.
type cell struct {
	origin []float64
	top    int
}

type ebeida[F geom.Float] struct {
	base[F]
	active []cell
	side   float64
	level  int
	throws int
	budget int
	done   bool
	spent  map[int]struct{} // level-0 cells that already took a sample
	seen   map[int]struct{} // SizeHint scratch
}

// topCells lists every level-0 cell; they coincide with the occupancy cells.
func (g *ebeida[F]) topCells() []cell {
	o := g.occ
	cells := make([]cell, 0, o.totalCells())
	coord := make([]int, g.dim)
	for idx := 0; idx < o.totalCells(); idx++ {
		rest := idx
		origin := make([]float64, g.dim)
		for a := 0; a < g.dim; a++ {
			coord[a] = rest % o.n
			rest /= o.n
			origin[a] = float64(coord[a]) * o.side
		}
		cells = append(cells, cell{origin: origin, top: idx})
	}
	return cells
}

func (g *ebeida[F]) startPhase() {
	g.throws = 0
	g.budget = int(math.Ceil(g.cfg.throwFactor * float64(len(g.active))))
	if g.budget < 1 {
		g.budget = 1
	}
}

// Restrict stores v as occupied; its level-0 cell stops taking darts.
func (g *ebeida[F]) Restrict(v geom.Vec[F]) {
	g.restrictPoint(v)
}

// Next returns the next sample or false once no uncovered cell is left or
// the refinement limit is reached.
func (g *ebeida[F]) Next() (geom.Vec[F], bool) {
	cand := make([]float64, g.dim)
	for !g.done {
		if len(g.active) == 0 {
			g.done = true
			break
		}
		if g.throws >= g.budget {
			g.refine()
			continue
		}
		g.throws++

		j := g.rng.IntN(len(g.active))
		c := g.active[j]
		if g.closed(c.top) {
			g.drop(j)
			continue
		}
		for a := range cand {
			cand[a] = c.origin[a] + g.rng.Float64()*g.side
		}
		if v, _, ok := g.accept(cand); ok {
			g.spent[c.top] = struct{}{}
			g.drop(j)
			return v, true
		}
	}
	return nil, false
}

// closed reports whether level-0 cell top can take no more samples.
func (g *ebeida[F]) closed(top int) bool {
	if _, ok := g.spent[top]; ok {
		return true
	}
	return g.occ.isOccupied(top)
}

func (g *ebeida[F]) drop(j int) {
	last := len(g.active) - 1
	g.active[j] = g.active[last]
	g.active = g.active[:last]
}

// refine halves every surviving cell and keeps the uncovered children.
func (g *ebeida[F]) refine() {
	g.level++
	if g.level > g.cfg.maxRefinement {
		g.active, g.done = nil, true
		return
	}
	half := g.side / 2
	children := 1 << g.dim
	next := make([]cell, 0, len(g.active))
	for _, c := range g.active {
		if g.closed(c.top) {
			continue
		}
		for mask := 0; mask < children; mask++ {
			origin := make([]float64, g.dim)
			outside := false
			for a := 0; a < g.dim; a++ {
				origin[a] = c.origin[a]
				if mask&(1<<a) != 0 {
					origin[a] += half
				}
				if origin[a] >= 1 {
					outside = true
				}
			}
			if outside || g.covered(origin, half) {
				continue
			}
			next = append(next, cell{origin: origin, top: c.top})
		}
		if len(next) > g.cfg.maxCells {
			g.active, g.done = nil, true
			return
		}
	}
	g.side = half
	g.active = next
	g.startPhase()
}

// covered reports whether some stored point lies within 2r of every point
// of the box [origin, origin+side]^d.
func (g *ebeida[F]) covered(origin []float64, side float64) bool {
	o := g.occ
	center := make([]float64, g.dim)
	for a := range center {
		center[a] = origin[a] + side/2
		if o.periodic {
			center[a] = wrap(center[a])
		}
	}
	halfDiag := side * math.Sqrt(float64(g.dim)) / 2
	hit := false
	o.forEachNear(center, o.minDist+halfDiag, func(id int) bool {
		p := o.points[id]
		var sum float64
		for a := range p {
			d := axisFar(p[a], origin[a], origin[a]+side, o.periodic)
			sum += d * d
		}
		if math.Sqrt(sum) <= o.minDist {
			hit = true
			return false
		}
		return true
	})
	return hit
}

// axisFar returns the largest distance from p to any x in [lo, hi] on one
// axis, with wraparound when periodic.
func axisFar(p, lo, hi float64, periodic bool) float64 {
	if !periodic {
		return math.Max(math.Abs(p-lo), math.Abs(p-hi))
	}
	antipode := p + 0.5
	for _, s := range [...]float64{antipode - 1, antipode, antipode + 1} {
		if s >= lo && s <= hi {
			return 0.5
		}
	}
	return math.Max(torusAxis(p, lo), torusAxis(p, hi))
}

// SizeHint returns (0, u) where u counts the distinct open level-0 cells that
// still have active descendants; each takes at most one sample.
func (g *ebeida[F]) SizeHint() poisson.Hint {
	if g.done {
		return poisson.Hint{Lower: 0, Upper: 0, HasUpper: true}
	}
	if g.seen == nil {
		g.seen = make(map[int]struct{})
	}
	clear(g.seen)
	for _, c := range g.active {
		if !g.closed(c.top) {
			g.seen[c.top] = struct{}{}
		}
	}
	return poisson.Hint{Lower: 0, Upper: len(g.seen), HasUpper: true}
}
