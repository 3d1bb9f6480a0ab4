// SPDX-License-Identifier: MIT
// Package: poisson/harness
//
// options.go — driver configuration.
//
// Deterministic defaults:
//   • logger          = silent
//   • observer        = none
//   • pullBudget      = 1_000_000 points per run
//   • injectionBudget = 10_000 injections between two pulls
//
// Contract:
//   • Option constructors PANIC on meaningless inputs; nil logger/observer
//     restore the defaults.

package harness

import (
	"log/slog"

	"github.com/katalvlaran/poisson/internal/logging"
)

const (
	defaultPullBudget      = 1_000_000
	defaultInjectionBudget = 10_000
)

// Observer receives driver events. Implementations must be cheap; the driver
// calls them inline.
type Observer interface {
	// SeedStarted fires before the generator is built.
	SeedStarted(algo string, seed uint32)
	// PointEmitted fires after every successful pull.
	PointEmitted(algo string)
	// PointInjected fires for every prefilled point with its oracle answer.
	PointInjected(algo string, legal bool)
	// SeedFinished fires once per seed; err is nil on success.
	SeedFinished(algo string, seed uint32, points int, err error)
}

type nopObserver struct{}

func (nopObserver) SeedStarted(string, uint32)              {}
func (nopObserver) PointEmitted(string)                     {}
func (nopObserver) PointInjected(string, bool)              {}
func (nopObserver) SeedFinished(string, uint32, int, error) {}

type config struct {
	logger          *slog.Logger
	observer        Observer
	pullBudget      int
	injectionBudget int
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:          logging.Nop(),
		observer:        nopObserver{},
		pullBudget:      defaultPullBudget,
		injectionBudget: defaultInjectionBudget,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option customizes a driver run.
type Option func(*config)

// WithLogger routes driver logs to l. Per-seed results go to Debug,
// violations to Warn, case summaries to Info and injections to
// logging.LevelTrace. nil restores the silent logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l == nil {
			l = logging.Nop()
		}
		c.logger = l
	}
}

// WithObserver reports driver events to o. nil disables reporting.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o == nil {
			o = nopObserver{}
		}
		c.observer = o
	}
}

// WithPullBudget fails a seed with ErrBudgetExhausted once its generator
// emits more than n points. Panics if n < 1.
func WithPullBudget(n int) Option {
	if n < 1 {
		panic("harness: WithPullBudget(n<1)")
	}
	return func(c *config) {
		c.pullBudget = n
	}
}

// WithInjectionBudget fails a seed with ErrBudgetExhausted once its injector
// proposes more than n points in a row without a pull. Panics if n < 1.
func WithInjectionBudget(n int) Option {
	if n < 1 {
		panic("harness: WithInjectionBudget(n<1)")
	}
	return func(c *config) {
		c.injectionBudget = n
	}
}
