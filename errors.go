// SPDX-License-Identifier: MIT
// Package: poisson
//
// errors.go — sentinel errors for parameter validation.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (method name, offending value) is attached with %w wrapping.

package poisson

import (
	"errors"
	"fmt"
)

// ErrBadDimension indicates a dimension outside [MinDim, MaxDim].
var ErrBadDimension = errors.New("poisson: unsupported dimension")

// ErrBadSamples indicates a sample count < 1 when no explicit radius is set.
var ErrBadSamples = errors.New("poisson: sample count must be positive")

// ErrBadRelativeRadius indicates a relative radius outside (0,1] for Bounded
// domains, or not positive for Periodic domains.
var ErrBadRelativeRadius = errors.New("poisson: relative radius out of range")

// ErrBadRadius indicates an explicit radius that is not positive and finite.
var ErrBadRadius = errors.New("poisson: radius must be positive and finite")

// ErrBadType indicates an unknown domain type.
var ErrBadType = errors.New("poisson: unknown domain type")

// paramErrorf wraps a sentinel with the calling method and a formatted detail.
func paramErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w: %s", method, sentinel, fmt.Sprintf(format, args...))
}
