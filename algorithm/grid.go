// SPDX-License-Identifier: MIT
// Package: poisson/algorithm
//
// grid.go — background occupancy grid shared by both generator families.
//
// Design:
//   • The unit cube is cut into n^d cells of side s < 2r/√d, so two points in
//     one cell are always closer than 2r: a cell holds at most one legal point.
//   • Cells are addressed row-major (axis 0 fastest); only non-empty cells are
//     stored, so memory follows the point count, not n^d.
//   • Periodic grids wrap cell coordinates; bounded grids clip them and keep
//     points injected outside [0,1)^d in a separate outlier list.
//   • Distances are measured in float64 on coordinates already rounded to the
//     generator's scalar type.

package algorithm

import "math"

// cellShrink keeps the cell diagonal strictly below 2r under rounding.
const cellShrink = 1 - 1e-9

// occupancy indexes accepted and restricted points for legality queries.
type occupancy struct {
	dim      int
	periodic bool
	minDist  float64 // 2r
	side     float64 // cell side
	n        int     // cells per axis
	strides  []int   // row-major strides, strides[0] == 1

	points   [][]float64
	cells    map[int][]int    // flat cell index → point ids
	occupied map[int]struct{} // cells holding at least one in-domain point
	outliers []int            // bounded only: ids of points outside [0,1)^d

	// scratch buffers reused by neighbour scans
	lo  []int
	hi  []int
	cur []int
}

// newOccupancy builds an empty grid for separation minDist in dim dimensions.
// Complexity: O(d).
func newOccupancy(dim int, minDist float64, periodic bool) *occupancy {
	side := minDist / math.Sqrt(float64(dim)) * cellShrink
	n := int(math.Ceil(1 / side))
	if n < 1 {
		n = 1
	}
	strides := make([]int, dim)
	stride := 1
	for i := 0; i < dim; i++ {
		strides[i] = stride
		stride *= n
	}

	return &occupancy{
		dim:      dim,
		periodic: periodic,
		minDist:  minDist,
		side:     side,
		n:        n,
		strides:  strides,
		cells:    make(map[int][]int),
		occupied: make(map[int]struct{}),
		lo:       make([]int, dim),
		hi:       make([]int, dim),
		cur:      make([]int, dim),
	}
}

// totalCells returns n^d.
func (o *occupancy) totalCells() int {
	return o.strides[o.dim-1] * o.n
}

// freeCells returns the number of cells without an in-domain point; it is an
// upper bound on how many more legal points the domain can take.
func (o *occupancy) freeCells() int {
	return o.totalCells() - len(o.occupied)
}

// isOccupied reports whether flat cell idx holds an in-domain point.
func (o *occupancy) isOccupied(idx int) bool {
	_, ok := o.occupied[idx]
	return ok
}

// inDomain reports whether p lies in [0,1)^d.
func inDomain(p []float64) bool {
	for _, c := range p {
		if c < 0 || c >= 1 {
			return false
		}
	}
	return true
}

// wrap maps x into [0,1).
func wrap(x float64) float64 {
	w := x - math.Floor(x)
	if w >= 1 {
		// x was a tiny negative number and 1-ε rounded up
		return 0
	}
	return w
}

// torusAxis returns the wraparound distance between a and b on one axis.
func torusAxis(a, b float64) float64 {
	d := math.Abs(a - b)
	d -= math.Floor(d)
	return math.Min(d, 1-d)
}

// normalize returns p as stored: wrapped for periodic grids, copied otherwise.
func (o *occupancy) normalize(p []float64) []float64 {
	q := make([]float64, len(p))
	for i, c := range p {
		if o.periodic {
			q[i] = wrap(c)
		} else {
			q[i] = c
		}
	}
	return q
}

// dist returns the domain distance between a and b.
func (o *occupancy) dist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		var d float64
		if o.periodic {
			d = torusAxis(a[i], b[i])
		} else {
			d = a[i] - b[i]
		}
		sum += d * d
	}
	return math.Sqrt(sum)
}

// cellCoord returns the (possibly out-of-range) cell coordinate of x.
// Coordinates far outside the cube are clamped; that only widens scans.
func (o *occupancy) cellCoord(x float64) int {
	f := math.Floor(x / o.side)
	switch {
	case f < -float64(o.n):
		return -o.n
	case f > 2*float64(o.n):
		return 2 * o.n
	}
	c := int(f)
	if c == o.n && x < 1 {
		// x/side rounded up on the last cell
		c = o.n - 1
	}
	return c
}

// cellIndex returns the flat index of an in-domain point.
func (o *occupancy) cellIndex(p []float64) int {
	idx := 0
	for i, c := range p {
		idx += o.cellCoord(c) * o.strides[i]
	}
	return idx
}

// insert stores p (already normalized) and returns its id.
// Complexity: O(d).
func (o *occupancy) insert(p []float64) int {
	id := len(o.points)
	o.points = append(o.points, p)
	if !o.periodic && !inDomain(p) {
		o.outliers = append(o.outliers, id)
		return id
	}
	idx := o.cellIndex(p)
	o.cells[idx] = append(o.cells[idx], id)
	o.occupied[idx] = struct{}{}
	return id
}

// legal reports whether p (already normalized) is farther than minDist from
// every stored point.
// Complexity: O((2k+1)^d + outliers), k = ⌈minDist/side⌉ (+1 when periodic).
func (o *occupancy) legal(p []float64) bool {
	ok := true
	o.forEachNear(p, o.minDist, func(id int) bool {
		if o.dist(p, o.points[id]) <= o.minDist {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// forEachNear calls fn for every stored point that may lie within reach of p,
// plus every outlier. fn returns false to stop the scan.
func (o *occupancy) forEachNear(p []float64, reach float64, fn func(id int) bool) {
	k := int(math.Ceil(reach / o.side))
	if o.periodic {
		// the last cell is partial, so a wrapped window needs one more cell
		k++
	}
	full := 2*k+1 >= o.n
	for i, c := range p {
		b := o.cellCoord(c)
		switch {
		case o.periodic && full:
			o.lo[i], o.hi[i] = 0, o.n-1
		case o.periodic:
			o.lo[i], o.hi[i] = b-k, b+k
		default:
			o.lo[i], o.hi[i] = max(b-k, 0), min(b+k, o.n-1)
		}
		if o.lo[i] > o.hi[i] {
			// bounded query far outside the cube: only outliers can be near
			o.scanOutliers(fn)
			return
		}
	}

	copy(o.cur, o.lo)
	for {
		idx := 0
		for i, c := range o.cur {
			if o.periodic {
				c = ((c % o.n) + o.n) % o.n
			}
			idx += c * o.strides[i]
		}
		for _, id := range o.cells[idx] {
			if !fn(id) {
				return
			}
		}
		// odometer step
		axis := 0
		for axis < o.dim {
			o.cur[axis]++
			if o.cur[axis] <= o.hi[axis] {
				break
			}
			o.cur[axis] = o.lo[axis]
			axis++
		}
		if axis == o.dim {
			break
		}
	}
	o.scanOutliers(fn)
}

func (o *occupancy) scanOutliers(fn func(id int) bool) {
	for _, id := range o.outliers {
		if !fn(id) {
			return
		}
	}
}
