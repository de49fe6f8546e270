// Package metrics provides Prometheus instrumentation for the store.
//
// Every façade operation records a counter and a latency observation,
// broken down by collection and operation. The collectors live on a
// dedicated registry so embedders can expose or gather them however
// they like:
//
//	metrics.Registry.Gather()
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// OpsTotal counts store operations by collection and operation.
	OpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "familycar",
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Total store operations.",
		},
		[]string{"collection", "operation"},
	)

	// ErrorsTotal counts failed store operations.
	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "familycar",
			Subsystem: "store",
			Name:      "errors_total",
			Help:      "Total store operations that returned an error.",
		},
		[]string{"collection", "operation"},
	)

	// OpDuration tracks how long each store operation takes, including the
	// full read-modify-write cycle against the medium.
	OpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "familycar",
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Duration of store operations in seconds.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .5, 1},
		},
		[]string{"collection", "operation"},
	)
)

// Registry holds all store collectors plus the standard Go runtime ones.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		OpsTotal,
		ErrorsTotal,
		OpDuration,
		collectors.NewGoCollector(),
	)
}

// Observe records one completed operation. err may be nil.
func Observe(collection, operation string, start time.Time, err error) {
	OpsTotal.WithLabelValues(collection, operation).Inc()
	OpDuration.WithLabelValues(collection, operation).Observe(time.Since(start).Seconds())
	if err != nil {
		ErrorsTotal.WithLabelValues(collection, operation).Inc()
	}
}
