package harness

import (
	"strconv"

	"github.com/katalvlaran/poisson"
	"github.com/katalvlaran/poisson/geom"
)

// CheckSeparation requires every pair of tiles to be more than 2·radius
// apart. Copies of one source point are skipped when they coincide; two
// distinct sources at identical coordinates are a coincident-sample
// violation.
// Complexity: O(t²·d) for t tiles.
func CheckSeparation[F geom.Float](algo string, tiles []Tiled, radius F) error {
	threshold := 2 * float64(radius)
	for i := 0; i < len(tiles); i++ {
		a := tiles[i]
		for j := i + 1; j < len(tiles); j++ {
			b := tiles[j]
			if a.Point.Equal(b.Point) {
				if a.Source == b.Source {
					continue
				}
				return violationf(KindGeometric, algo, []string{a.Point.String(), b.Point.String()},
					"points %d and %d coincide", a.Source, b.Source)
			}
			if d := a.Point.Distance(b.Point); !(d > threshold) {
				return violationf(KindGeometric, algo, []string{a.Point.String(), b.Point.String()},
					"distance %s is not above %s (points %d and %d)",
					strconv.FormatFloat(d, 'g', -1, 64), strconv.FormatFloat(threshold, 'g', -1, 64),
					a.Source, b.Source)
			}
		}
	}
	return nil
}

// AssertLegal checks an untiled point set; identical points count as distinct
// samples.
func AssertLegal[F geom.Float](algo string, points []geom.Vec[F], radius F) error {
	return CheckSeparation(algo, Tile(points, poisson.Bounded), radius)
}
