package poisson

import (
	"math"
)

// Supported dimensions. Packing densities are tabulated for this range only.
const (
	MinDim = 2
	MaxDim = 8
)

// MethodResolve prefixes errors returned by Params.Resolve.
const MethodResolve = "Resolve"

// packingDensity[d-MinDim] is the densest known sphere packing density in d
// dimensions (proven optimal for d ∈ {2,3,8}, lattice-optimal otherwise).
var packingDensity = [...]float64{
	math.Pi / (2 * math.Sqrt(3)),                     // 2: hexagonal
	math.Pi / (3 * math.Sqrt(2)),                     // 3: fcc
	math.Pi * math.Pi / 16,                           // 4: D4
	math.Pi * math.Pi * math.Sqrt(2) / 30,            // 5: D5
	math.Pi * math.Pi * math.Pi * math.Sqrt(3) / 144, // 6: E6
	math.Pi * math.Pi * math.Pi / 105,                // 7: E7
	math.Pi * math.Pi * math.Pi * math.Pi / 384,      // 8: E8
}

// Params describes one generation run.
//
// Either Samples or Radius must be set. A positive Radius wins and Samples
// and RelativeRadius are then ignored.
type Params struct {
	Dim            int
	Samples        int
	RelativeRadius float64
	Radius         float64
	Type           Type
}

// WithSamples returns Params targeting roughly samples points with the
// radius scaled by relative (1 = densest packing).
func WithSamples(dim, samples int, relative float64, t Type) Params {
	return Params{Dim: dim, Samples: samples, RelativeRadius: relative, Type: t}
}

// WithRadius returns Params with an explicit radius.
func WithRadius(dim int, radius float64, t Type) Params {
	return Params{Dim: dim, Radius: radius, Type: t}
}

// Resolve validates p and returns the effective radius.
// Complexity: O(1).
func (p Params) Resolve() (float64, error) {
	if p.Dim < MinDim || p.Dim > MaxDim {
		return 0, paramErrorf(MethodResolve, ErrBadDimension, "got %d, want [%d,%d]", p.Dim, MinDim, MaxDim)
	}
	if p.Radius != 0 {
		if p.Type != Bounded && p.Type != Periodic {
			return 0, paramErrorf(MethodResolve, ErrBadType, "got %d", int(p.Type))
		}
		if p.Radius < 0 || math.IsNaN(p.Radius) || math.IsInf(p.Radius, 0) {
			return 0, paramErrorf(MethodResolve, ErrBadRadius, "got %g", p.Radius)
		}
		return p.Radius, nil
	}

	return RadiusFor(p.Samples, p.RelativeRadius, p.Dim, p.Type)
}

// RadiusFor derives the radius that packs roughly samples points into the
// domain, scaled by relative.
// Complexity: O(1).
func RadiusFor(samples int, relative float64, dim int, t Type) (float64, error) {
	if dim < MinDim || dim > MaxDim {
		return 0, paramErrorf(MethodResolve, ErrBadDimension, "got %d, want [%d,%d]", dim, MinDim, MaxDim)
	}
	if t != Bounded && t != Periodic {
		return 0, paramErrorf(MethodResolve, ErrBadType, "got %d", int(t))
	}
	if samples < 1 {
		return 0, paramErrorf(MethodResolve, ErrBadSamples, "got %d", samples)
	}
	if math.IsNaN(relative) || relative <= 0 || (t == Bounded && relative > 1) {
		return 0, paramErrorf(MethodResolve, ErrBadRelativeRadius, "got %g for %s domain", relative, t)
	}

	q := math.Pow(packingDensity[dim-MinDim]/(float64(samples)*unitBallVolume(dim)), 1/float64(dim))
	maxRadius := q
	if t == Bounded {
		// n·V·r^d = η·(1+2r)^d  ⇒  r/(1+2r) = q
		if 2*q >= 1 {
			return 0, paramErrorf(MethodResolve, ErrBadSamples, "%d samples cannot pack a bounded %d-cube", samples, dim)
		}
		maxRadius = q / (1 - 2*q)
	}

	return maxRadius * relative, nil
}

// unitBallVolume returns π^(d/2) / Γ(d/2 + 1).
func unitBallVolume(d int) float64 {
	half := float64(d) / 2
	return math.Pow(math.Pi, half) / math.Gamma(half+1)
}
