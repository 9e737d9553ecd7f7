// Package metrics provides Prometheus metrics for the explorer service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "explorer"

// Manager manages all Prometheus metrics for the explorer service.
type Manager struct {
	registry prometheus.Registerer

	// Upstream API traffic
	upstreamRequests        *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec

	// Memoization
	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec

	// Evolution chains and stat aggregation
	chainWalks             prometheus.Counter
	chainTruncations       prometheus.Counter
	chainDiscardedBranches prometheus.Counter
	chainLength            prometheus.Histogram
	aggregationRows        prometheus.Histogram
	aggregationSkips       prometheus.Counter

	// Sessions
	sessionsOpened prometheus.Counter

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error tracking
	errorRateByComponent *prometheus.CounterVec
	errorRateByType      *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec
	errorLatency         *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{registry: prometheus.NewRegistry()}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	auto := promauto.With(m.registry)
	latencyBuckets := []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000}

	m.upstreamRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Total number of upstream API requests by api, endpoint and outcome",
		},
		[]string{"api", "endpoint", "outcome"},
	)

	m.upstreamRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_milliseconds",
			Help:      "Upstream API request duration in milliseconds",
			Buckets:   latencyBuckets,
		},
		[]string{"api", "endpoint"},
	)

	m.cacheHits = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Memoized lookups answered without a network request",
		},
		[]string{"resource"},
	)

	m.cacheMisses = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Memoized lookups that issued a network request",
		},
		[]string{"resource"},
	)

	m.chainWalks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chain_walks_total",
		Help:      "Total number of evolution chains walked",
	})

	m.chainTruncations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chain_truncations_total",
		Help:      "Evolution chain walks stopped by the depth bound",
	})

	m.chainDiscardedBranches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chain_discarded_branches_total",
		Help:      "Alternate evolution branches not followed by the first-branch walk",
	})

	m.chainLength = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "chain_length",
		Help:      "Number of species in walked evolution chains",
		Buckets:   []float64{1, 2, 3, 4, 5, 10, 25, 50},
	})

	m.aggregationRows = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "aggregation_rows",
		Help:      "Rows produced per stat aggregation",
		Buckets:   []float64{0, 1, 2, 3, 4, 5, 10},
	})

	m.aggregationSkips = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "aggregation_skips_total",
		Help:      "Species skipped during stat aggregation because their fetch failed",
	})

	m.sessionsOpened = auto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_opened_total",
		Help:      "Total number of query sessions opened",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   latencyBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_by_component_total",
			Help:      "Total number of errors by component",
		},
		[]string{"component", "error_type"},
	)

	m.errorRateByType = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_by_type_total",
			Help:      "Total number of errors by type and severity",
		},
		[]string{"error_type", "severity"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of errors by HTTP endpoint",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.errorLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "error_latency_milliseconds",
			Help:      "Latency of failed operations in milliseconds",
			Buckets:   latencyBuckets,
		},
		[]string{"component", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
}

// RecordUpstreamRequest counts one upstream request and its latency.
func RecordUpstreamRequest(api, endpoint, outcome string, latencyMs float64) {
	globalManager.upstreamRequests.WithLabelValues(api, endpoint, outcome).Inc()
	globalManager.upstreamRequestDuration.WithLabelValues(api, endpoint).Observe(latencyMs)
}

// RecordCacheHit counts a memoized lookup served from the session cache.
func RecordCacheHit(resource string) {
	globalManager.cacheHits.WithLabelValues(resource).Inc()
}

// RecordCacheMiss counts a memoized lookup that went to the network.
func RecordCacheMiss(resource string) {
	globalManager.cacheMisses.WithLabelValues(resource).Inc()
}

// RecordChainWalk records a completed evolution chain walk.
func RecordChainWalk(length int, truncated bool, discardedBranches int) {
	globalManager.chainWalks.Inc()
	globalManager.chainLength.Observe(float64(length))
	if truncated {
		globalManager.chainTruncations.Inc()
	}
	if discardedBranches > 0 {
		globalManager.chainDiscardedBranches.Add(float64(discardedBranches))
	}
}

// RecordAggregation records the outcome of a stat aggregation.
func RecordAggregation(rows, skipped int) {
	globalManager.aggregationRows.Observe(float64(rows))
	if skipped > 0 {
		globalManager.aggregationSkips.Add(float64(skipped))
	}
}

// RecordSessionOpened counts a new query session.
func RecordSessionOpened() {
	globalManager.sessionsOpened.Inc()
}

// RecordHTTPRequest increments the HTTP requests counter.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByComponent records errors by component.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByType records errors by type and severity.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records errors by HTTP endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of failed operations.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// UpdateSystemMemoryUsage updates the system memory usage gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount updates the goroutine count gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom registry backing the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
