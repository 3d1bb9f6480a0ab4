// SPDX-License-Identifier: MIT
// Package: poisson/harness
//
// tiler.go — periodic tiling and containment.
//
// Design:
//   • A periodic point set is validated by translating every point by every
//     vector in {-1,0,1}^d and checking the union with plain Euclidean
//     distances; pairs that only meet across the wraparound become ordinary
//     close pairs between neighbouring copies.
//   • Each tile remembers the index of the point it was copied from so the
//     validator can tell a point's own copies apart from a coincident sample.
//   • Tiles are widened to float64 before shifting: generators judge float32
//     coordinates in float64, and x+1 in float32 would round the copy.
//
// Complexity:
//   • Offsets: O(d·3^d). Tile: O(n·d·3^d).

package harness

import (
	"strconv"

	"github.com/katalvlaran/poisson"
	"github.com/katalvlaran/poisson/geom"
)

// Tiled is one copy of a validated point, in float64.
type Tiled struct {
	Point  geom.Vec[float64]
	Source int // index into the points passed to Tile
}

// Offsets enumerates the 3^d vectors of {-1,0,1}^d. Offset n decodes the
// base-3 digits of n axis by axis, axis 0 first, as digit-1. The zero vector
// is at index (3^d-1)/2.
func Offsets[F geom.Float](d int) []geom.Vec[F] {
	total := 1
	for i := 0; i < d; i++ {
		total *= 3
	}
	out := make([]geom.Vec[F], total)
	for n := range out {
		v := geom.Zero[F](d)
		rest := n
		for a := 0; a < d; a++ {
			v[a] = F(rest%3 - 1)
			rest /= 3
		}
		out[n] = v
	}
	return out
}

// Tile expands points for distance validation. Periodic point sets yield
// every point shifted by every offset; bounded sets are only widened.
func Tile[F geom.Float](points []geom.Vec[F], typ poisson.Type) []Tiled {
	if typ != poisson.Periodic || len(points) == 0 {
		out := make([]Tiled, len(points))
		for i, p := range points {
			out[i] = Tiled{Point: p.Float64(), Source: i}
		}
		return out
	}
	offsets := Offsets[float64](points[0].Dim())
	out := make([]Tiled, 0, len(points)*len(offsets))
	for i, p := range points {
		wide := geom.Vec[float64](p.Float64())
		for _, off := range offsets {
			out = append(out, Tiled{Point: wide.Add(off), Source: i})
		}
	}
	return out
}

// CheckContainment requires every coordinate of every point to lie in [0,1).
func CheckContainment[F geom.Float](algo string, points []geom.Vec[F]) error {
	for i, p := range points {
		if in, axis := p.InUnitBox(); !in {
			return violationf(KindDomain, algo, []string{p.String()},
				"point %d leaves [0, 1) on axis %d (value %s)", i, axis,
				strconv.FormatFloat(float64(p[axis]), 'f', -1, 64))
		}
	}
	return nil
}
