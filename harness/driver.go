// SPDX-License-Identifier: MIT
// Package: poisson/harness
//
// driver.go — seeded test-case driver.
//
// Flow per seed index i:
//   1. build the generator from DeriveSeed(i);
//   2. alternate prefill injections (checked against the expectation) with
//      single pulls, recording points and the size hint after every pull;
//   3. re-read radius and type, then audit hints, containment (bounded runs
//      without prefill) and separation over the tiled validation set.
//
// A failure aborts only its own seed; Run joins every seed failure.

package harness

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/poisson"
	"github.com/katalvlaran/poisson/geom"
	"github.com/katalvlaran/poisson/internal/logging"
)

// Expectation is the oracle applied to every prefilled point.
type Expectation int

const (
	// Unchecked records StaysLegal answers without asserting them.
	Unchecked Expectation = iota
	// AlwaysLegal requires every prefilled point to stay legal; prefilled
	// points then join the validation set.
	AlwaysLegal
	// AlwaysIllegal requires every prefilled point to be rejected.
	AlwaysIllegal
)

// String returns "unchecked", "legal" or "illegal".
func (e Expectation) String() string {
	switch e {
	case Unchecked:
		return "unchecked"
	case AlwaysLegal:
		return "legal"
	case AlwaysIllegal:
		return "illegal"
	default:
		return fmt.Sprintf("Expectation(%d)", int(e))
	}
}

// ErrBadExpectation indicates an unknown expectation name.
var ErrBadExpectation = errors.New("harness: unknown expectation")

// ParseExpectation maps a case-insensitive name onto an Expectation.
// "always", "never" and "sometimes" are accepted as aliases.
func ParseExpectation(s string) (Expectation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unchecked", "sometimes", "":
		return Unchecked, nil
	case "legal", "always":
		return AlwaysLegal, nil
	case "illegal", "never":
		return AlwaysIllegal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadExpectation, s)
}

// Case is one parameterized scenario. Seeds runs are made per family, with
// seed indices 0..Seeds-1. A nil Prefill injects nothing.
type Case[F geom.Float] struct {
	Name           string
	Dim            int
	Samples        int
	RelativeRadius float64
	Seeds          uint32
	Type           poisson.Type
	Prefill        Prefiller[F]
	Expect         Expectation
}

// Params returns the generator parameters of c.
func (c Case[F]) Params() poisson.Params {
	return poisson.WithSamples(c.Dim, c.Samples, c.RelativeRadius, c.Type)
}

// SeedResult is the trace of one seeded run.
type SeedResult[F geom.Float] struct {
	Index     uint32
	Seed      [32]byte
	Radius    F
	Points    []geom.Vec[F]
	Hints     []poisson.Hint
	Prefilled []Injection[F]
	Err       error
}

// Report collects every seed of one case against one family.
type Report[F geom.Float] struct {
	Case      string
	Algorithm string
	Seeds     []SeedResult[F]
}

// Failed returns the number of failed seeds.
func (r Report[F]) Failed() int {
	n := 0
	for _, s := range r.Seeds {
		if s.Err != nil {
			n++
		}
	}
	return n
}

// Err joins every seed failure; nil when all seeds passed.
func (r Report[F]) Err() error {
	var errs []error
	for _, s := range r.Seeds {
		if s.Err != nil {
			errs = append(errs, s.Err)
		}
	}
	return errors.Join(errs...)
}

// Run drives creator through every seed of c and validates each run.
// The returned error joins the per-seed failures.
func Run[F geom.Float](c Case[F], creator poisson.Creator[F], opts ...Option) (Report[F], error) {
	if creator == nil {
		return Report[F]{Case: c.Name}, ErrNoCreator
	}
	cfg := newConfig(opts...)
	algo := creator.Name()
	rep := Report[F]{Case: c.Name, Algorithm: algo, Seeds: make([]SeedResult[F], 0, c.Seeds)}

	for i := uint32(0); i < c.Seeds; i++ {
		cfg.observer.SeedStarted(algo, i)
		res := runSeed(c, creator, i, cfg)
		if res.Err != nil {
			var v *Violation
			if errors.As(res.Err, &v) {
				v.Seed = int(i)
			}
			cfg.logger.Warn("seed failed", "case", c.Name, "algorithm", algo, "seed", i, "error", res.Err)
		} else {
			cfg.logger.Debug("seed passed", "case", c.Name, "algorithm", algo, "seed", i,
				"radius", float64(res.Radius), "points", len(res.Points), "prefilled", len(res.Prefilled))
		}
		cfg.observer.SeedFinished(algo, i, len(res.Points), res.Err)
		rep.Seeds = append(rep.Seeds, res)
	}

	cfg.logger.Info("case finished", "case", c.Name, "algorithm", algo,
		"seeds", c.Seeds, "failed", rep.Failed())
	return rep, rep.Err()
}

// RunAll runs c against every creator in order.
func RunAll[F geom.Float](c Case[F], creators []poisson.Creator[F], opts ...Option) ([]Report[F], error) {
	reps := make([]Report[F], 0, len(creators))
	var errs []error
	for _, cr := range creators {
		rep, err := Run(c, cr, opts...)
		reps = append(reps, rep)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return reps, errors.Join(errs...)
}

func runSeed[F geom.Float](c Case[F], creator poisson.Creator[F], i uint32, cfg config) SeedResult[F] {
	algo := creator.Name()
	res := SeedResult[F]{Index: i, Seed: DeriveSeed(i)}

	gen, err := creator.New(c.Params(), res.Seed)
	if err != nil {
		res.Err = fmt.Errorf("%s: seed %d: %w", algo, i, err)
		return res
	}
	radius, typ := gen.Radius(), gen.Type()
	res.Radius = radius
	if r := float64(radius); !(r > 0) || math.IsInf(r, 0) {
		res.Err = violationf(KindProtocol, algo, nil, "radius %g is not a positive finite number", r)
		return res
	}
	if typ != c.Type {
		res.Err = violationf(KindProtocol, algo, nil, "type %s requested, generator reports %s", c.Type, typ)
		return res
	}

	var inject Injector[F]
	if c.Prefill != nil {
		inject = c.Prefill(radius)
	}

	var last geom.Vec[F]
	hasLast, doesPrefill := false, false
	for {
		if inject != nil {
			streak := 0
			for {
				cand, ok := inject(last, hasLast)
				if !ok {
					break
				}
				if streak++; streak > cfg.injectionBudget {
					res.Err = violationf(KindBudget, algo, lastPoint(last, hasLast),
						"more than %d injections without a pull", cfg.injectionBudget)
					return res
				}
				doesPrefill = true
				legal := gen.StaysLegal(cand)
				if err := checkInjection(c.Expect, algo, cand, legal, last, hasLast); err != nil {
					res.Err = err
					return res
				}
				res.Prefilled = append(res.Prefilled, Injection[F]{Point: cand.Clone(), Legal: legal})
				cfg.observer.PointInjected(algo, legal)
				cfg.logger.Log(context.Background(), logging.LevelTrace, "injected",
					"algorithm", algo, "seed", i, "point", cand.String(), "legal", legal)
				gen.Restrict(cand)
			}
		}

		v, ok := gen.Next()
		if !ok {
			break
		}
		if len(res.Points) >= cfg.pullBudget {
			res.Err = violationf(KindBudget, algo, nil, "more than %d points emitted", cfg.pullBudget)
			return res
		}
		res.Points = append(res.Points, v)
		res.Hints = append(res.Hints, gen.SizeHint())
		cfg.observer.PointEmitted(algo)
		last, hasLast = v, true
	}

	if r, t := gen.Radius(), gen.Type(); r != radius || t != typ {
		res.Err = violationf(KindProtocol, algo, nil,
			"radius/type changed during the run: %g/%s became %g/%s", float64(radius), typ, float64(r), t)
		return res
	}

	set := res.Points
	if c.Expect == AlwaysLegal && len(res.Prefilled) > 0 {
		set = make([]geom.Vec[F], 0, len(res.Points)+len(res.Prefilled))
		set = append(set, res.Points...)
		for _, in := range res.Prefilled {
			set = append(set, in.Point)
		}
	}

	if err := AuditHints(algo, res.Hints); err != nil {
		res.Err = err
		return res
	}
	if typ == poisson.Bounded && !doesPrefill {
		if err := CheckContainment(algo, res.Points); err != nil {
			res.Err = err
			return res
		}
	}
	if err := CheckSeparation(algo, Tile(set, typ), radius); err != nil {
		res.Err = err
	}
	return res
}

// checkInjection applies the oracle to one prefilled point.
func checkInjection[F geom.Float](e Expectation, algo string, cand geom.Vec[F], legal bool, last geom.Vec[F], hasLast bool) error {
	switch {
	case e == AlwaysLegal && !legal:
		return violationf(KindPrefill, algo, []string{cand.String()},
			"prefilled point was expected to stay legal")
	case e == AlwaysIllegal && legal:
		return violationf(KindPrefill, algo, append([]string{cand.String()}, lastPoint(last, hasLast)...),
			"prefilled point was expected to be illegal next to the last emitted point")
	}
	return nil
}

func lastPoint[F geom.Float](last geom.Vec[F], ok bool) []string {
	if !ok {
		return nil
	}
	return []string{last.String()}
}
