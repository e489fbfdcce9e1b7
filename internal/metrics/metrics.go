// Package metrics exposes Prometheus collectors for scoring activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	scored     *prometheus.CounterVec
	skipped    *prometheus.CounterVec
	incomplete *prometheus.CounterVec
	gatherer   prometheus.Gatherer
}

// New registers the collectors on reg. A nil reg gets a private registry,
// which keeps tests from colliding on the global one.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		scored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "psychotest",
			Name:      "scored_total",
			Help:      "Answer sheets scored, by instrument.",
		}, []string{"instrument"}),
		skipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "psychotest",
			Name:      "skipped_answers_total",
			Help:      "Answer entries dropped during tallying because they did not map to a dimension.",
		}, []string{"instrument"}),
		incomplete: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "psychotest",
			Name:      "incomplete_total",
			Help:      "Analyses that could not be fully classified.",
		}, []string{"instrument"}),
		gatherer: reg,
	}
	reg.MustRegister(m.scored, m.skipped, m.incomplete)
	return m
}

// Observe records one scoring run.
func (m *Metrics) Observe(instrument string, skipped int, complete bool) {
	if m == nil {
		return
	}
	m.scored.WithLabelValues(instrument).Inc()
	if skipped > 0 {
		m.skipped.WithLabelValues(instrument).Add(float64(skipped))
	}
	if !complete {
		m.incomplete.WithLabelValues(instrument).Inc()
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
