package poisson

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/poisson/geom"
)

// Type selects the sampling domain.
type Type int

const (
	// Bounded samples the unit hypercube [0,1)^d.
	Bounded Type = iota
	// Periodic samples the unit hypercube with toroidal wraparound: distances
	// are measured modulo 1 on every axis.
	Periodic
)

// String returns "bounded" or "periodic".
func (t Type) String() string {
	switch t {
	case Bounded:
		return "bounded"
	case Periodic:
		return "periodic"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType maps a case-insensitive name to a Type.
// "normal" is accepted as an alias of "bounded" and "torus" of "periodic".
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bounded", "normal":
		return Bounded, nil
	case "periodic", "torus":
		return Periodic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadType, s)
	}
}

// Hint is a forward size hint on the number of points a Sequence will still
// produce. Upper is meaningful only when HasUpper is true.
type Hint struct {
	Lower    int
	Upper    int
	HasUpper bool
}

// String renders the hint as "(lower, upper)" or "(lower, none)".
func (h Hint) String() string {
	if !h.HasUpper {
		return fmt.Sprintf("(%d, none)", h.Lower)
	}
	return fmt.Sprintf("(%d, %d)", h.Lower, h.Upper)
}

// Sequence is a lazy, finite, one-shot stream of points.
// After Next reports false it keeps reporting false.
type Sequence[F geom.Float] interface {
	// Next returns the next accepted point, or false when exhausted.
	Next() (geom.Vec[F], bool)
	// SizeHint bounds the number of points Next will still return.
	SizeHint() Hint
}

// Generator is the algorithm-under-test contract.
//
// Implementations are not safe for concurrent use; one run owns one
// Generator for its whole lifetime.
type Generator[F geom.Float] interface {
	Sequence[F]
	// Radius returns the radius in effect; the minimum allowed distance
	// between two accepted points is 2×Radius.
	Radius() F
	// Type echoes the domain type the generator was built with.
	Type() Type
	// StaysLegal reports whether v could be accepted right now against every
	// accepted or restricted point. It never changes generator state.
	StaysLegal(v geom.Vec[F]) bool
	// Restrict marks v as permanently occupied. v is not emitted by Next.
	Restrict(v geom.Vec[F])
}

// Creator builds generators of one algorithm family.
type Creator[F geom.Float] interface {
	// Name identifies the algorithm in reports and failure messages.
	Name() string
	// New builds a generator. Identical arguments yield identical runs.
	New(p Params, seed [32]byte) (Generator[F], error)
}
