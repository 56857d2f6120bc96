// Package metrics holds the prometheus collectors of the portal.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "portal"

// Metrics owns a private registry so several instances can coexist in tests.
type Metrics struct {
	Registry *prometheus.Registry

	AttemptsStarted  *prometheus.CounterVec
	AttemptsFinished *prometheus.CounterVec
	AttemptScores    prometheus.Histogram
	AttemptsReaped   prometheus.Counter
	EventCache       *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		AttemptsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "attempts",
			Name:      "started_total",
			Help:      "Attempt starts by outcome (created, resumed, already_completed, not_available).",
		}, []string{"outcome"}),
		AttemptsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "attempts",
			Name:      "finished_total",
			Help:      "Attempts that reached a terminal status.",
		}, []string{"status"}),
		AttemptScores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "attempts",
			Name:      "score_percent",
			Help:      "Score of completed attempts in percent.",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		}),
		AttemptsReaped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "attempts",
			Name:      "reaped_total",
			Help:      "In-progress attempts failed after their time limit ran out.",
		}),
		EventCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "cache_lookups_total",
			Help:      "Event listing cache lookups by result (hit, miss).",
		}, []string{"result"}),
	}
	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.AttemptsStarted,
		m.AttemptsFinished,
		m.AttemptScores,
		m.AttemptsReaped,
		m.EventCache,
	)
	return m
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
