package service

import (
	"net/http"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Quinhas/sgpg-api/internal/models"
)

const metricsNamespace = "sgpg"

// Logo upload outcomes.
const (
	LogoStored   = "stored"
	LogoRejected = "rejected"
	LogoFailed   = "failed"
)

// MetricsService owns the Prometheus registry of the API. It also keeps the
// running totals behind GET /metrics/summary.
type MetricsService struct {
	registry *prometheus.Registry
	handler  http.Handler

	requests     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	cacheLookups *prometheus.CounterVec
	cacheSeconds *prometheus.HistogramVec
	querySeconds *prometheus.HistogramVec
	operations   *prometheus.CounterVec
	exportRows   *prometheus.HistogramVec
	exportBytes  *prometheus.HistogramVec
	logoUploads  *prometheus.CounterVec
	logoBytes    prometheus.Histogram

	requestCount atomic.Uint64
	requestNanos atomic.Uint64
	cacheHits    atomic.Uint64
	cacheMisses  atomic.Uint64
	queryCount   atomic.Uint64
	queryNanos   atomic.Uint64
}

// NewMetricsService builds a private registry holding the Go runtime and
// process collectors next to the school API collectors.
func NewMetricsService() *MetricsService {
	m := &MetricsService{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route template and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route template.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Record cache lookups by result.",
		}, []string{"result"}),
		cacheSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "cache",
			Name:      "operation_seconds",
			Help:      "Redis round trips by operation.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"op"}),
		querySeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "store",
			Name:      "query_seconds",
			Help:      "Database statements issued by the lifecycle engine.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}, []string{"resource", "query"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "lifecycle",
			Name:      "operations_total",
			Help:      "Entity operations by resource and outcome.",
		}, []string{"resource", "operation", "outcome"}),
		exportRows: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "export",
			Name:      "rows",
			Help:      "Rows per rendered export.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}, []string{"resource", "format"}),
		exportBytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "export",
			Name:      "bytes",
			Help:      "Size of rendered exports.",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 8),
		}, []string{"format"}),
		logoUploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "logo",
			Name:      "uploads_total",
			Help:      "Instrument brand logo uploads by outcome.",
		}, []string{"outcome"}),
		logoBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "logo",
			Name:      "bytes",
			Help:      "Size of stored logos.",
			Buckets:   prometheus.ExponentialBuckets(1024, 2, 12),
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests, m.latency,
		m.cacheLookups, m.cacheSeconds,
		m.querySeconds, m.operations,
		m.exportRows, m.exportBytes,
		m.logoUploads, m.logoBytes,
	)
	m.handler = promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records one served request. route must be a template
// such as "/roles/:id", never a raw path.
func (m *MetricsService) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.latency.WithLabelValues(method, route).Observe(d.Seconds())
	m.requestCount.Add(1)
	m.requestNanos.Add(uint64(d))
}

// RecordCacheLookup counts a cache read.
func (m *MetricsService) RecordCacheLookup(hit bool, d time.Duration) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
		m.cacheHits.Add(1)
	} else {
		m.cacheMisses.Add(1)
	}
	m.cacheLookups.WithLabelValues(result).Inc()
	m.cacheSeconds.WithLabelValues("get").Observe(d.Seconds())
}

// ObserveCacheWrite times a cache write.
func (m *MetricsService) ObserveCacheWrite(d time.Duration) {
	if m == nil {
		return
	}
	m.cacheSeconds.WithLabelValues("set").Observe(d.Seconds())
}

// ObserveQuery times one statement the engine ran for resource.
func (m *MetricsService) ObserveQuery(resource, query string, d time.Duration) {
	if m == nil {
		return
	}
	m.querySeconds.WithLabelValues(resource, query).Observe(d.Seconds())
	m.queryCount.Add(1)
	m.queryNanos.Add(uint64(d))
}

// RecordOperation counts an operation outcome such as "ok", "not_found" or
// "conflict".
func (m *MetricsService) RecordOperation(resource, operation, outcome string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(resource, operation, outcome).Inc()
}

// RecordExport tracks a successfully rendered export.
func (m *MetricsService) RecordExport(resource string, format ExportFormat, rows, size int) {
	if m == nil {
		return
	}
	m.exportRows.WithLabelValues(resource, string(format)).Observe(float64(rows))
	m.exportBytes.WithLabelValues(string(format)).Observe(float64(size))
}

// RecordLogoUpload counts a logo upload; size is only observed for stored
// logos.
func (m *MetricsService) RecordLogoUpload(outcome string, size int) {
	if m == nil {
		return
	}
	m.logoUploads.WithLabelValues(outcome).Inc()
	if outcome == LogoStored {
		m.logoBytes.Observe(float64(size))
	}
}

// Snapshot summarises the running totals.
func (m *MetricsService) Snapshot() models.SystemMetrics {
	if m == nil {
		return models.SystemMetrics{}
	}
	hits, misses := m.cacheHits.Load(), m.cacheMisses.Load()
	requests, queries := m.requestCount.Load(), m.queryCount.Load()

	return models.SystemMetrics{
		CacheHitRatio:            ratio(float64(hits), float64(hits+misses)),
		CacheHits:                hits,
		CacheMisses:              misses,
		RequestsTotal:            requests,
		AverageRequestDurationMs: ratio(float64(m.requestNanos.Load()), float64(requests)) / float64(time.Millisecond),
		DBQueryCount:             queries,
		AverageDBQueryDurationMs: ratio(float64(m.queryNanos.Load()), float64(queries)) / float64(time.Millisecond),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}

func ratio(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole
}
