// Package telemetry exports harness driver events as Prometheus metrics.
//
// Metrics:
//   - poisson_seeds_total{algorithm,result}: finished seeds, result pass|fail
//   - poisson_violations_total{algorithm,kind}: failed seeds by violation class
//   - poisson_points_emitted_total{algorithm}: successful pulls
//   - poisson_points_injected_total{algorithm,legal}: prefilled points
//   - poisson_points_per_seed{algorithm}: emitted points per seed
//
// Every metric carries a constant session label when one is given.
package telemetry

import (
	"errors"
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/poisson/harness"
)

// Metrics implements harness.Observer on a private registry.
type Metrics struct {
	reg *prometheus.Registry

	seeds      *prometheus.CounterVec
	violations *prometheus.CounterVec
	emitted    *prometheus.CounterVec
	injected   *prometheus.CounterVec
	perSeed    *prometheus.HistogramVec
}

var _ harness.Observer = (*Metrics)(nil)

// New registers the harness metrics on reg (a fresh registry when nil).
// A non-empty session becomes a constant "session" label.
func New(reg *prometheus.Registry, session string) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	var r prometheus.Registerer = reg
	if session != "" {
		r = prometheus.WrapRegistererWith(prometheus.Labels{"session": session}, reg)
	}
	f := promauto.With(r)

	return &Metrics{
		reg: reg,
		seeds: f.NewCounterVec(prometheus.CounterOpts{
			Name: "poisson_seeds_total",
			Help: "Finished seeded runs by result",
		}, []string{"algorithm", "result"}),
		violations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "poisson_violations_total",
			Help: "Failed seeded runs by violation class",
		}, []string{"algorithm", "kind"}),
		emitted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "poisson_points_emitted_total",
			Help: "Points pulled from generators",
		}, []string{"algorithm"}),
		injected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "poisson_points_injected_total",
			Help: "Prefilled points by oracle answer",
		}, []string{"algorithm", "legal"}),
		perSeed: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "poisson_points_per_seed",
			Help:    "Points emitted per seeded run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
		}, []string{"algorithm"}),
	}
}

// Registry returns the registry the metrics live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// SeedStarted is a no-op; seeds are counted when they finish.
func (m *Metrics) SeedStarted(string, uint32) {}

// PointEmitted counts one pull.
func (m *Metrics) PointEmitted(algo string) {
	m.emitted.WithLabelValues(algo).Inc()
}

// PointInjected counts one prefilled point.
func (m *Metrics) PointInjected(algo string, legal bool) {
	m.injected.WithLabelValues(algo, strconv.FormatBool(legal)).Inc()
}

// SeedFinished records the result and size of one seeded run.
func (m *Metrics) SeedFinished(algo string, _ uint32, points int, err error) {
	m.perSeed.WithLabelValues(algo).Observe(float64(points))
	if err == nil {
		m.seeds.WithLabelValues(algo, "pass").Inc()
		return
	}
	m.seeds.WithLabelValues(algo, "fail").Inc()
	m.violations.WithLabelValues(algo, violationKind(err)).Inc()
}

// violationKind names the class of err; errors that are not violations come
// from generator construction.
func violationKind(err error) string {
	var v *harness.Violation
	if errors.As(err, &v) {
		return v.Kind.String()
	}
	return "construction"
}

// WriteText dumps every metric family in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
