// Package metrics provides Prometheus metrics for the centum derivation
// service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Derivation metrics - the core business of this service
	derivations       *prometheus.CounterVec
	derivationLatency *prometheus.HistogramVec

	// Feed metrics - payload loading and fallback behavior
	feedLoads     *prometheus.CounterVec
	feedFallbacks prometheus.Counter

	// Snapshot metrics - installed record set
	snapshotInstalls     prometheus.Counter
	snapshotDays         prometheus.Gauge
	snapshotParticipants prometheus.Gauge
	snapshotChallenges   prometheus.Gauge
	snapshotLoadedAtUnix prometheus.Gauge

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// System metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "centum",
		subsystem:        "derive",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.derivations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "derivations_total",
			Help:      "Total number of derivation computations by kind",
		},
		[]string{"kind"},
	)

	m.derivationLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "derivation_latency_milliseconds",
			Help:      "Histogram of derivation latency in milliseconds by kind",
			Buckets:   m.histogramBuckets,
		},
		[]string{"kind"},
	)

	m.feedLoads = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "feed_loads_total",
			Help:      "Total number of feed load attempts by source and outcome",
		},
		[]string{"source", "outcome"},
	)

	m.feedFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "feed_fallbacks_total",
		Help:      "Total number of loads that fell back to the built-in payload",
	})

	m.snapshotInstalls = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_installs_total",
		Help:      "Total number of snapshot replacements",
	})

	m.snapshotDays = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_days",
		Help:      "Number of recorded calendar days in the current snapshot",
	})

	m.snapshotParticipants = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_participants",
		Help:      "Number of participants in the current snapshot",
	})

	m.snapshotChallenges = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_challenges",
		Help:      "Number of challenges in the current snapshot",
	})

	m.snapshotLoadedAtUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_loaded_at_unix",
		Help:      "Unix timestamp of the last snapshot installation",
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "Histogram of HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.errorsByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of errors by endpoint",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})
}

// GetRegistry returns the custom Prometheus registry used by the global
// manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordDerivation increments the derivation counter for kind.
func RecordDerivation(kind string) {
	globalManager.derivations.WithLabelValues(kind).Inc()
}

// RecordDerivationLatency records derivation latency in milliseconds.
func RecordDerivationLatency(kind string, latencyMs float64) {
	globalManager.derivationLatency.WithLabelValues(kind).Observe(latencyMs)
}

// RecordFeedLoad records a feed load attempt.
func RecordFeedLoad(source, outcome string) {
	globalManager.feedLoads.WithLabelValues(source, outcome).Inc()
}

// RecordFeedFallback increments the fallback payload counter.
func RecordFeedFallback() {
	globalManager.feedFallbacks.Inc()
}

// RecordSnapshotInstalled increments the snapshot install counter.
func RecordSnapshotInstalled() {
	globalManager.snapshotInstalls.Inc()
}

// UpdateSnapshotCounts sets the record-set size gauges.
func UpdateSnapshotCounts(days, participants, challenges int) {
	globalManager.snapshotDays.Set(float64(days))
	globalManager.snapshotParticipants.Set(float64(participants))
	globalManager.snapshotChallenges.Set(float64(challenges))
}

// UpdateSnapshotLoadedAt sets the last snapshot installation time.
func UpdateSnapshotLoadedAt(t time.Time) {
	globalManager.snapshotLoadedAtUnix.Set(float64(t.Unix()))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByEndpoint increments the error counter for an endpoint.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the system memory usage gauge.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the goroutine count gauge.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}
