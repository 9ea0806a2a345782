// Package metrics provides Prometheus metrics collection for varmsg.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds all Prometheus metrics for varmsg.
type Collector struct {
	// Resolution metrics
	ResolutionsTotal    *prometheus.CounterVec
	ResolutionErrors    *prometheus.CounterVec
	ResolutionDuration  prometheus.Histogram
	DependenciesInlined prometheus.Histogram

	// Schema store metrics
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates a new metrics collector with all metrics registered on the
// default registerer.
func New() *Collector {
	return &Collector{
		ResolutionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "varmsg",
				Name:      "resolutions_total",
				Help:      "Total number of schema resolutions",
			},
			[]string{"package"},
		),
		ResolutionErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "varmsg",
				Name:      "resolution_errors_total",
				Help:      "Total number of failed schema resolutions",
			},
			[]string{"kind"},
		),
		ResolutionDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "varmsg",
				Name:      "resolution_duration_seconds",
				Help:      "Schema resolution duration in seconds",
				Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
		),
		DependenciesInlined: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "varmsg",
				Name:      "dependencies_inlined",
				Help:      "Number of dependency schemas inlined per resolution",
				Buckets:   []float64{0, 1, 2, 4, 8, 16, 32, 64},
			},
		),
		CacheHits: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "varmsg",
				Name:      "schema_cache_hits_total",
				Help:      "Resolutions served from the schema store",
			},
		),
		CacheMisses: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "varmsg",
				Name:      "schema_cache_misses_total",
				Help:      "Resolutions that had to expand schema files",
			},
		),
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "varmsg",
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "varmsg",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"method", "path"},
		),
	}
}

// ObserveError counts a failed resolution under its taxonomy kind so
// dashboards can break failures down by cause.
func (c *Collector) ObserveError(kind string) {
	c.ResolutionErrors.WithLabelValues(kind).Inc()
}
