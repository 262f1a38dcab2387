// Package metrics exposes the Prometheus instrumentation surface.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "preciosa_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "preciosa_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	simulationsSaved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "preciosa_simulations_saved_total",
		Help: "Count of simulation records persisted, by record type and backend",
	}, []string{"type", "backend"})

	storeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "preciosa_store_failures_total",
		Help: "Count of failed store operations, by operation and backend",
	}, []string{"op", "backend"})
)

// ObserveHTTPRequest records an HTTP request metric.
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveSimulationSaved increments the saved-record counter.
func ObserveSimulationSaved(simType, backend string) {
	simulationsSaved.WithLabelValues(simType, backend).Inc()
}

// ObserveStoreFailure increments the store-failure counter.
func ObserveStoreFailure(op, backend string) {
	storeFailures.WithLabelValues(op, backend).Inc()
}
