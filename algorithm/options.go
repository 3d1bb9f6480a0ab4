// SPDX-License-Identifier: MIT
// Package: poisson/algorithm
//
// options.go — functional options for the generator families.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Generators themselves never panic on user input.

package algorithm

// Option customizes a generator family before construction.
type Option func(*config)

// WithCandidates sets how many darts Bridson throws around an active sample
// before retiring it. Panics if k < 1.
func WithCandidates(k int) Option {
	if k < 1 {
		panic("algorithm: WithCandidates(k<1)")
	}
	return func(c *config) {
		c.candidates = k
	}
}

// WithInitialAttempts sets how many uniform darts Bridson throws to find its
// first sample when nothing has been restricted. Panics if n < 1.
func WithInitialAttempts(n int) Option {
	if n < 1 {
		panic("algorithm: WithInitialAttempts(n<1)")
	}
	return func(c *config) {
		c.initialAttempts = n
	}
}

// WithThrowFactor sets the Ebeida phase length as a multiple of the number of
// active cells. Panics if a <= 0.
func WithThrowFactor(a float64) Option {
	if !(a > 0) {
		panic("algorithm: WithThrowFactor(a<=0)")
	}
	return func(c *config) {
		c.throwFactor = a
	}
}

// WithMaxRefinement caps how many times Ebeida halves its cells.
// Panics if levels < 0.
func WithMaxRefinement(levels int) Option {
	if levels < 0 {
		panic("algorithm: WithMaxRefinement(levels<0)")
	}
	return func(c *config) {
		c.maxRefinement = levels
	}
}

// WithMaxCells caps the Ebeida active-cell list after a refinement; a larger
// list ends the run instead. Panics if n < 1.
func WithMaxCells(n int) Option {
	if n < 1 {
		panic("algorithm: WithMaxCells(n<1)")
	}
	return func(c *config) {
		c.maxCells = n
	}
}
