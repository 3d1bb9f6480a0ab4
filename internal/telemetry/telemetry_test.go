package telemetry

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poisson"
	"github.com/katalvlaran/poisson/algorithm"
	"github.com/katalvlaran/poisson/harness"
)

func TestMetrics_Counters(t *testing.T) {
	m := New(nil, "")

	m.SeedStarted("Bridson", 0)
	m.PointEmitted("Bridson")
	m.PointEmitted("Bridson")
	m.PointInjected("Bridson", false)
	m.SeedFinished("Bridson", 0, 2, nil)

	geometric := &harness.Violation{Kind: harness.KindGeometric, Algorithm: "Ebeida", Seed: 1}
	m.SeedFinished("Ebeida", 1, 5, fmt.Errorf("wrapped: %w", geometric))
	m.SeedFinished("Ebeida", 2, 0, errors.New("cannot build"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.emitted.WithLabelValues("Bridson")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.injected.WithLabelValues("Bridson", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.seeds.WithLabelValues("Bridson", "pass")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.seeds.WithLabelValues("Ebeida", "fail")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.violations.WithLabelValues("Ebeida", "geometric")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.violations.WithLabelValues("Ebeida", "construction")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.perSeed))
}

func TestMetrics_DriverRun(t *testing.T) {
	m := New(nil, "")
	c := harness.Case[float64]{
		Name: "metrics", Dim: 2, Samples: 101, RelativeRadius: 0.8, Seeds: 2,
		Type:    poisson.Bounded,
		Prefill: harness.NearLast[float64](harness.SequentialSeed()),
		Expect:  harness.AlwaysIllegal,
	}
	reps, err := harness.RunAll(c, algorithm.Families[float64](), harness.WithObserver(m))
	require.NoError(t, err)

	for _, rep := range reps {
		points := 0
		for _, sr := range rep.Seeds {
			points += len(sr.Points)
		}
		assert.Equal(t, float64(points), testutil.ToFloat64(m.emitted.WithLabelValues(rep.Algorithm)))
		assert.Equal(t, float64(points), testutil.ToFloat64(m.injected.WithLabelValues(rep.Algorithm, "false")))
		assert.Equal(t, 2.0, testutil.ToFloat64(m.seeds.WithLabelValues(rep.Algorithm, "pass")))
	}
}

func TestMetrics_WriteText(t *testing.T) {
	m := New(nil, "3f0c")
	m.PointEmitted("Ebeida")
	m.SeedFinished("Ebeida", 0, 1, nil)

	var b strings.Builder
	require.NoError(t, m.WriteText(&b))
	out := b.String()
	assert.Contains(t, out, "# TYPE poisson_points_emitted_total counter")
	assert.Contains(t, out, `poisson_points_emitted_total{algorithm="Ebeida",session="3f0c"} 1`)
	assert.Contains(t, out, "poisson_points_per_seed_bucket")

	err := testutil.GatherAndCompare(m.Registry(), strings.NewReader(`
# HELP poisson_seeds_total Finished seeded runs by result
# TYPE poisson_seeds_total counter
poisson_seeds_total{algorithm="Ebeida",result="pass",session="3f0c"} 1
`), "poisson_seeds_total")
	assert.NoError(t, err)
}
