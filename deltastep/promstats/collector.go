// Package promstats exports delta-stepping run metrics to Prometheus.
//
// A Collector implements deltastep.Observer; install it with
// deltastep.WithObserver and register it once on a prometheus.Registerer.
package promstats

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/deltastep/deltastep"
)

const namespace = "deltastep"

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Relaxation kind label values.
const (
	KindLight = "light"
	KindHeavy = "heavy"
)

// Collector turns RunInfo reports into Prometheus series:
//   - deltastep_runs_total{mode,outcome}
//   - deltastep_relaxations_total{mode,kind}
//   - deltastep_improvements_total{mode}
//   - deltastep_run_duration_seconds{mode}
//   - deltastep_buckets_processed{mode}
type Collector struct {
	runs         *prometheus.CounterVec
	relaxations  *prometheus.CounterVec
	improvements *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	buckets      *prometheus.HistogramVec
}

var _ deltastep.Observer = (*Collector)(nil)

// New builds a Collector and registers its metrics on reg.
// A nil reg leaves the metrics unregistered.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Shortest-path runs by engine mode and outcome.",
		}, []string{"mode", "outcome"}),
		relaxations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relaxations_total",
			Help:      "Edges scanned, by edge class.",
		}, []string{"mode", "kind"}),
		improvements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "improvements_total",
			Help:      "Relaxations that lowered a tentative distance.",
		}, []string{"mode"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of successful runs.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"mode"}),
		buckets: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "buckets_processed",
			Help:      "Buckets processed per successful run.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"mode"}),
	}
	if reg == nil {
		return c, nil
	}
	for _, col := range c.collectors() {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// MustNew is New that panics on registration failure.
func MustNew(reg prometheus.Registerer) *Collector {
	c, err := New(reg)
	if err != nil {
		panic(err)
	}

	return c
}

// Runs returns the deltastep_runs_total vector.
func (c *Collector) Runs() *prometheus.CounterVec { return c.runs }

// Relaxations returns the deltastep_relaxations_total vector.
func (c *Collector) Relaxations() *prometheus.CounterVec { return c.relaxations }

// Improvements returns the deltastep_improvements_total vector.
func (c *Collector) Improvements() *prometheus.CounterVec { return c.improvements }

func (c *Collector) collectors() []prometheus.Collector {
	return []prometheus.Collector{c.runs, c.relaxations, c.improvements, c.duration, c.buckets}
}

// RecordRun implements deltastep.Observer.
func (c *Collector) RecordRun(info deltastep.RunInfo) {
	mode := info.Mode.String()
	if info.Err != nil {
		c.runs.WithLabelValues(mode, OutcomeError).Inc()
		return
	}
	c.runs.WithLabelValues(mode, OutcomeOK).Inc()
	c.relaxations.WithLabelValues(mode, KindLight).Add(float64(info.Stats.LightRelaxations))
	c.relaxations.WithLabelValues(mode, KindHeavy).Add(float64(info.Stats.HeavyRelaxations))
	c.improvements.WithLabelValues(mode).Add(float64(info.Stats.Improvements))
	c.duration.WithLabelValues(mode).Observe(info.Duration.Seconds())
	c.buckets.WithLabelValues(mode).Observe(float64(info.Stats.Buckets))
}
