package harness_test

import (
	"errors"

	"github.com/katalvlaran/poisson"
	"github.com/katalvlaran/poisson/geom"
)

var errFakeNew = errors.New("fake: cannot build")

// script describes what a fake generator does.
type script struct {
	points  []geom.Vec[float64]
	hints   []poisson.Hint // per point; default is the exact remaining count
	radius  float64
	typ     poisson.Type
	legal   bool // StaysLegal answer
	endless bool // emit forever
	drift   bool // change the radius once exhausted
	newErr  error
}

// fakeCreator builds scripted generators.
type fakeCreator struct {
	name string
	s    script
	made []*fakeGen
}

func (c *fakeCreator) Name() string { return c.name }

func (c *fakeCreator) New(p poisson.Params, seed [32]byte) (poisson.Generator[float64], error) {
	if c.s.newErr != nil {
		return nil, c.s.newErr
	}
	g := &fakeGen{s: c.s, typ: c.s.typ, radius: c.s.radius}
	c.made = append(c.made, g)
	return g, nil
}

type fakeGen struct {
	s          script
	pos        int
	radius     float64
	typ        poisson.Type
	restricted []geom.Vec[float64]
}

func (g *fakeGen) Next() (geom.Vec[float64], bool) {
	if g.s.endless {
		g.pos++
		return geom.Of[float64](0.5, 0.5), true
	}
	if g.pos >= len(g.s.points) {
		if g.s.drift {
			g.radius *= 2
		}
		return nil, false
	}
	v := g.s.points[g.pos]
	g.pos++
	return v, true
}

func (g *fakeGen) SizeHint() poisson.Hint {
	if g.s.hints != nil && g.pos > 0 && g.pos <= len(g.s.hints) {
		return g.s.hints[g.pos-1]
	}
	rem := len(g.s.points) - g.pos
	if rem < 0 {
		rem = 0
	}
	return poisson.Hint{Lower: rem, Upper: rem, HasUpper: true}
}

func (g *fakeGen) Radius() float64                   { return g.radius }
func (g *fakeGen) Type() poisson.Type                { return g.typ }
func (g *fakeGen) StaysLegal(geom.Vec[float64]) bool { return g.s.legal }
func (g *fakeGen) Restrict(v geom.Vec[float64])      { g.restricted = append(g.restricted, v) }
