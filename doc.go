// Package poisson defines the contract between Poisson-disk generators and
// the validity harness.
//
// A Poisson-disk distribution is a point set in a domain where no two points
// are closer than 2×radius. This package owns the vocabulary both sides use:
//
//   - Type: Bounded (the unit hypercube [0,1)^d) or Periodic (the same cube
//     wrapped into a torus).
//   - Params: dimension, target sample count or explicit radius, relative
//     radius factor and domain type; Params.Resolve derives the radius.
//   - Sequence: a one-shot cursor (Next, SizeHint) over generated points.
//   - Generator: a Sequence that also answers StaysLegal and accepts
//     Restrict, so out-of-band points can be injected between pulls.
//   - Creator: builds a Generator from Params and a 32-byte seed. Each
//     algorithm family implements Creator; see package algorithm.
//
// Radius derivation:
//
//	η_d  densest known packing density in d dimensions (2 ≤ d ≤ 8)
//	V_d  volume of the unit d-ball
//	q    = (η_d / (samples · V_d))^(1/d)
//	Periodic: r = q · relative
//	Bounded:  r = q / (1 − 2q) · relative   (disks overhang the box by r)
//
// Errors:
//
//   - ErrBadDimension: dimension outside [MinDim, MaxDim].
//   - ErrBadSamples: sample count < 1 and no explicit radius.
//   - ErrBadRelativeRadius: relative radius outside the allowed range.
//   - ErrBadRadius: explicit radius not positive or not finite.
//   - ErrBadType: unknown domain type.
package poisson
