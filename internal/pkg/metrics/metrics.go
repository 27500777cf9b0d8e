// Package metrics holds the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsTotal counts completed model evaluations.
	RunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nzeb_runs_total",
		Help: "Total number of completed model evaluations.",
	})

	// RunErrorsTotal counts failed evaluations by error kind.
	RunErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nzeb_run_errors_total",
		Help: "Total number of failed model evaluations.",
	}, []string{"kind"})

	// RunDuration observes wall time per evaluation.
	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nzeb_run_duration_seconds",
		Help:    "Model evaluation duration.",
		Buckets: prometheus.DefBuckets,
	})
)
