// Package metrics holds the Prometheus collectors of the service.
//
// Metrics:
//   - wellness_http_requests_total{method,route,status}
//   - wellness_http_request_duration_seconds{method,route}
//   - wellness_analytics_computations_total{kind}
//   - wellness_analytics_cache_total{result}
//   - wellness_companion_requests_total{outcome}
//   - wellness_events_published_total{type,outcome}
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for the service
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	AnalyticsComputations *prometheus.CounterVec
	AnalyticsCache        *prometheus.CounterVec

	CompanionRequests *prometheus.CounterVec
	EventsPublished   *prometheus.CounterVec
}

// Get returns the process-wide metrics, registering them on first use
func Get() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "wellness_http_requests_total",
					Help: "Total number of HTTP requests served",
				},
				[]string{"method", "route", "status"},
			),
			HTTPRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "wellness_http_request_duration_seconds",
					Help:    "Duration of HTTP requests in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"method", "route"},
			),
			AnalyticsComputations: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "wellness_analytics_computations_total",
					Help: "Total number of analytics results computed from storage",
				},
				[]string{"kind"}, // dashboard, streaks, trends, weekly, calendar, digest
			),
			AnalyticsCache: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "wellness_analytics_cache_total",
					Help: "Analytics cache lookups",
				},
				[]string{"result"}, // hit, miss, error
			),
			CompanionRequests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "wellness_companion_requests_total",
					Help: "Journal companion requests",
				},
				[]string{"outcome"}, // ok, fallback, unavailable
			),
			EventsPublished: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "wellness_events_published_total",
					Help: "Domain events published",
				},
				[]string{"type", "outcome"},
			),
		}
	})
	return globalMetrics
}
