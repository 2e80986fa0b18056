package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the application metrics registry exposed at /api/metrics.
// A private registry keeps default Go collector noise out of dashboards.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// Custom histogram buckets optimized for API response times ranging from milliseconds to 30+ seconds
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	// HTTP Metrics
	HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Database Metrics
	DBRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_client_operation_duration_seconds",
			Help:    "Database client operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	DBRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_client_operation_total",
			Help: "Total number of database client operations",
		},
		[]string{"operation", "status"},
	)

	// Cache Metrics
	CacheHits = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_name"},
	)

	CacheMisses = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_name"},
	)

	CacheSize = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_entries",
			Help: "Number of entries in cache",
		},
		[]string{"cache_name"},
	)

	// Storage Client Metrics
	StorageRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storage_client_operation_duration_seconds",
			Help:    "Storage client operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	StorageRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_client_operation_total",
			Help: "Total number of storage client operations",
		},
		[]string{"operation", "status"},
	)

	// Business Metrics
	MatchSessionsStarted = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerbrew_match_sessions_started_total",
			Help: "Total number of matching sessions started",
		},
		[]string{"status"},
	)

	MatchCandidatesScored = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "careerbrew_match_candidates_scored",
			Help:    "Number of candidates scored per matching session",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 20},
		},
	)

	MatchScoringDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "careerbrew_match_scoring_duration_seconds",
			Help:    "Duration of scoring and ranking one candidate snapshot",
			Buckets: prometheus.DefBuckets,
		},
	)

	RequestSubmissions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerbrew_mentorship_request_submissions_total",
			Help: "Total mentorship request submissions by dedup advisory outcome",
		},
		[]string{"advisory", "status"},
	)

	RequestStatusUpdates = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerbrew_mentorship_request_status_updates_total",
			Help: "Total mentorship request status transitions",
		},
		[]string{"status"},
	)

	TestimonialSubmissions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerbrew_testimonial_submissions_total",
			Help: "Total testimonial submission attempts",
		},
		[]string{"status"},
	)

	ProfileUpdates = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerbrew_profile_updates_total",
			Help: "Total number of mentee profile updates",
		},
		[]string{"status"},
	)

	AvatarUploads = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerbrew_avatar_uploads_total",
			Help: "Total number of avatar uploads",
		},
		[]string{"status"},
	)

	// Infrastructure Metrics
	GoRoutines = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)
)

// RecordInfrastructureMetrics collects infrastructure metrics periodically
func RecordInfrastructureMetrics() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		for range ticker.C {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			GoRoutines.Set(float64(runtime.NumGoroutine()))
			HeapAlloc.Set(float64(m.HeapAlloc))
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
