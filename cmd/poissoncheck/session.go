package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/poisson"
	"github.com/katalvlaran/poisson/algorithm"
	"github.com/katalvlaran/poisson/geom"
	"github.com/katalvlaran/poisson/harness"
	"github.com/katalvlaran/poisson/internal/config"
	"github.com/katalvlaran/poisson/internal/logging"
	"github.com/katalvlaran/poisson/internal/telemetry"
)

// errFailed marks a command whose runs found violations.
var errFailed = errors.New("validity check failed")

// session carries the per-invocation logger, metrics and budgets.
type session struct {
	id      string
	logger  *slog.Logger
	metrics *telemetry.Metrics // nil unless --metrics
	budgets config.BudgetConfig
	jsonOut bool
	out     io.Writer
}

// summary is the outcome of one scenario against one family.
type summary struct {
	Scenario  string   `json:"scenario"`
	Algorithm string   `json:"algorithm"`
	Precision string   `json:"precision"`
	Radius    float64  `json:"radius"`
	Seeds     int      `json:"seeds"`
	Failed    int      `json:"failed"`
	Points    int      `json:"points"`
	Errors    []string `json:"errors,omitempty"`
}

func newSession(cmd *cobra.Command, level string, budgets config.BudgetConfig) *session {
	jsonOut, _ := cmd.Flags().GetBool("json")
	withMetrics, _ := cmd.Flags().GetBool("metrics")

	s := &session{
		id:      uuid.New().String(),
		budgets: budgets,
		jsonOut: jsonOut,
		out:     cmd.OutOrStdout(),
	}
	if jsonOut {
		s.logger = logging.NewJSONLogger(level, cmd.ErrOrStderr())
	} else {
		s.logger = logging.NewLogger(level, cmd.ErrOrStderr())
	}
	s.logger = s.logger.With("session", s.id)
	if withMetrics {
		s.metrics = telemetry.New(nil, s.id)
	}
	return s
}

func (s *session) options() []harness.Option {
	opts := []harness.Option{
		harness.WithLogger(s.logger),
		harness.WithPullBudget(s.budgets.Pulls),
		harness.WithInjectionBudget(s.budgets.Injections),
	}
	if s.metrics != nil {
		opts = append(opts, harness.WithObserver(s.metrics))
	}
	return opts
}

// runScenarios runs every scenario and prints the summaries. It returns
// errFailed when any seed of any scenario failed.
func (s *session) runScenarios(scenarios []config.Scenario) error {
	var all []summary
	for _, sc := range scenarios {
		s.logger.Debug("scenario started", "scenario", sc.Name, "dim", sc.Dim,
			"samples", sc.Samples, "type", sc.Type, "prefill", sc.Prefill)
		sums, err := runScenario(s, sc)
		if err != nil {
			return fmt.Errorf("scenario %s: %w", sc.Name, err)
		}
		all = append(all, sums...)
	}

	if err := s.print(all); err != nil {
		return err
	}
	if s.metrics != nil {
		if err := s.metrics.WriteText(s.out); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	failed := 0
	for _, sum := range all {
		if sum.Failed > 0 {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d runs", errFailed, failed, len(all))
	}
	return nil
}

func (s *session) print(all []summary) error {
	if s.jsonOut {
		return json.NewEncoder(s.out).Encode(map[string]interface{}{
			"session": s.id,
			"results": all,
		})
	}
	for _, sum := range all {
		status := "ok"
		if sum.Failed > 0 {
			status = "FAIL"
		}
		fmt.Fprintf(s.out, "%-4s %-20s %-8s %-7s seeds=%d failed=%d points=%d radius=%g\n",
			status, sum.Scenario, sum.Algorithm, sum.Precision,
			sum.Seeds, sum.Failed, sum.Points, sum.Radius)
		for _, e := range sum.Errors {
			fmt.Fprintf(s.out, "     %s\n", e)
		}
	}
	return nil
}

// runScenario dispatches on the scenario's scalar precision.
func runScenario(s *session, sc config.Scenario) ([]summary, error) {
	kinds, err := sc.Kinds()
	if err != nil {
		return nil, err
	}
	if sc.Precision == config.Float32 {
		return runCase[float32](s, sc, kinds)
	}
	return runCase[float64](s, sc, kinds)
}

func runCase[F geom.Float](s *session, sc config.Scenario, kinds []algorithm.Kind) ([]summary, error) {
	c, err := buildCase[F](sc)
	if err != nil {
		return nil, err
	}
	creators := make([]poisson.Creator[F], 0, len(kinds))
	for _, k := range kinds {
		cr, err := algorithm.New[F](k)
		if err != nil {
			return nil, err
		}
		creators = append(creators, cr)
	}

	// per-seed failures are carried by the reports
	reps, _ := harness.RunAll(c, creators, s.options()...)

	sums := make([]summary, 0, len(reps))
	for _, rep := range reps {
		sum := summary{
			Scenario:  rep.Case,
			Algorithm: rep.Algorithm,
			Precision: sc.Precision,
			Seeds:     len(rep.Seeds),
			Failed:    rep.Failed(),
		}
		for _, seed := range rep.Seeds {
			if sum.Radius == 0 {
				sum.Radius = float64(seed.Radius)
			}
			sum.Points += len(seed.Points)
			if seed.Err != nil {
				sum.Errors = append(sum.Errors, seed.Err.Error())
			}
		}
		sums = append(sums, sum)
	}
	return sums, nil
}

// buildCase turns a validated scenario into a harness case.
func buildCase[F geom.Float](sc config.Scenario) (harness.Case[F], error) {
	typ, err := poisson.ParseType(sc.Type)
	if err != nil {
		return harness.Case[F]{}, err
	}
	expect, err := harness.ParseExpectation(sc.Expect)
	if err != nil {
		return harness.Case[F]{}, err
	}
	pre, err := prefiller[F](sc.Prefill, sc.Dim)
	if err != nil {
		return harness.Case[F]{}, err
	}
	return harness.Case[F]{
		Name:           sc.Name,
		Dim:            sc.Dim,
		Samples:        sc.Samples,
		RelativeRadius: sc.RelativeRadius,
		Seeds:          sc.Seeds,
		Type:           typ,
		Prefill:        pre,
		Expect:         expect,
	}, nil
}

// prefiller maps a prefill policy name to its injector factory.
//
//	none      no injection
//	near-last one point within r of every emitted point
//	center    the cube's center, before the first pull
//	outside   one point r beyond the cube's lower face, before the first pull
func prefiller[F geom.Float](name string, dim int) (harness.Prefiller[F], error) {
	center := func() geom.Vec[F] {
		v := make(geom.Vec[F], dim)
		for i := range v {
			v[i] = 0.5
		}
		return v
	}
	switch name {
	case config.PrefillNone, "":
		return harness.NoPrefill[F](), nil
	case config.PrefillNearLast:
		return harness.NearLast[F](harness.SequentialSeed()), nil
	case config.PrefillCenter:
		return harness.AtStart(center()), nil
	case config.PrefillOutside:
		return func(radius F) harness.Injector[F] {
			p := center()
			p[0] = -radius
			return harness.AtStart(p)(radius)
		}, nil
	}
	return nil, fmt.Errorf("%w: prefill %q", config.ErrInvalid, name)
}
