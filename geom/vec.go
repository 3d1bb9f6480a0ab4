package geom

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Float is the scalar type of a Vec.
type Float interface {
	~float32 | ~float64
}

// Vec represents a point (or displacement) in R^d, d = len(v).
type Vec[F Float] []F

// Zero returns the origin of R^d.
func Zero[F Float](d int) Vec[F] {
	return make(Vec[F], d)
}

// Of builds a Vec from float64 coordinates, rounding each to F.
func Of[F Float](coords ...float64) Vec[F] {
	v := make(Vec[F], len(coords))
	for i, c := range coords {
		v[i] = F(c)
	}
	return v
}

// Dim returns the dimension of v.
func (v Vec[F]) Dim() int {
	return len(v)
}

// Clone returns an independent copy of v.
func (v Vec[F]) Clone() Vec[F] {
	out := make(Vec[F], len(v))
	copy(out, v)
	return out
}

// Add returns v + w.
func (v Vec[F]) Add(w Vec[F]) Vec[F] {
	mustSameDim(v, w)
	out := make(Vec[F], len(v))
	for i := range v {
		out[i] = v[i] + w[i]
	}
	return out
}

// Sub returns v - w.
func (v Vec[F]) Sub(w Vec[F]) Vec[F] {
	mustSameDim(v, w)
	out := make(Vec[F], len(v))
	for i := range v {
		out[i] = v[i] - w[i]
	}
	return out
}

// Scale returns v scaled by s.
func (v Vec[F]) Scale(s F) Vec[F] {
	out := make(Vec[F], len(v))
	for i := range v {
		out[i] = v[i] * s
	}
	return out
}

// Norm returns the Euclidean length of v, accumulated in float64.
func (v Vec[F]) Norm() float64 {
	var sum float64
	for _, c := range v {
		sum += float64(c) * float64(c)
	}
	return math.Sqrt(sum)
}

// Distance returns |v - w| without allocating.
func (v Vec[F]) Distance(w Vec[F]) float64 {
	mustSameDim(v, w)
	var sum float64
	for i := range v {
		d := float64(v[i]) - float64(w[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Equal reports whether v and w have identical coordinates.
func (v Vec[F]) Equal(w Vec[F]) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}
	return true
}

// InUnitBox reports whether every coordinate lies in [0, 1).
// The first offending axis is returned when it does not.
func (v Vec[F]) InUnitBox() (bool, int) {
	for i, c := range v {
		if c < 0 || c >= 1 {
			return false, i
		}
	}
	return true, -1
}

// Float64 returns the coordinates of v widened to float64.
func (v Vec[F]) Float64() []float64 {
	out := make([]float64, len(v))
	for i, c := range v {
		out[i] = float64(c)
	}
	return out
}

// String renders v as "(c0, c1, ..., c_{d-1})".
// Coordinates are printed as float64 in the shortest decimal form that
// round-trips, never in exponent notation.
func (v Vec[F]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(float64(c), 'f', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}

// RandomDirection returns a unit vector distributed uniformly on the
// (d-1)-sphere: a normalised vector of independent standard normals.
// A degenerate all-zero draw is retried.
func RandomDirection[F Float](rng *rand.Rand, d int) Vec[F] {
	buf := make([]float64, d)
	for {
		var sum float64
		for i := range buf {
			buf[i] = rng.NormFloat64()
			sum += buf[i] * buf[i]
		}
		if sum == 0 {
			continue
		}
		n := math.Sqrt(sum)
		out := make(Vec[F], d)
		for i := range buf {
			out[i] = F(buf[i] / n)
		}
		return out
	}
}

func mustSameDim[F Float](v, w Vec[F]) {
	if len(v) != len(w) {
		panic("geom: dimension mismatch " + strconv.Itoa(len(v)) + " != " + strconv.Itoa(len(w)))
	}
}
