// SPDX-License-Identifier: MIT
// Package: poisson/algorithm
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • candidates      = 30        (Bridson: darts per active sample)
//   • initialAttempts = 1000      (Bridson: tries for the first sample)
//   • throwFactor     = 0.8       (Ebeida: darts per active cell per phase)
//   • maxRefinement   = 12        (Ebeida: cell halvings before giving up)
//   • maxCells        = 1 << 21   (Ebeida: active-cell cap after refinement)

package algorithm

// config aggregates the knobs of both families. Passed by value.
type config struct {
	candidates      int
	initialAttempts int
	throwFactor     float64
	maxRefinement   int
	maxCells        int
}

const (
	defaultCandidates      = 30
	defaultInitialAttempts = 1000
	defaultThrowFactor     = 0.8
	defaultMaxRefinement   = 12
	defaultMaxCells        = 1 << 21
)

// newConfig applies opts over the defaults; later options win.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		candidates:      defaultCandidates,
		initialAttempts: defaultInitialAttempts,
		throwFactor:     defaultThrowFactor,
		maxRefinement:   defaultMaxRefinement,
		maxCells:        defaultMaxCells,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
