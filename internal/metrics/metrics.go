package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts API requests by route and status code
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refi_http_requests_total",
			Help: "HTTP requests handled by the refinance API",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPDuration observes request latency by route
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "refi_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Analyses counts engine runs by outcome
	Analyses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refi_analyses_total",
			Help: "Refinance analyses computed",
		},
		[]string{"status"},
	)

	// CacheEvents counts analysis cache lookups
	CacheEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refi_cache_events_total",
			Help: "Analysis cache hits, misses and errors",
		},
		[]string{"event"},
	)

	// StoredScenarios counts saved loan inputs by outcome
	StoredScenarios = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refi_stored_scenarios_total",
			Help: "Loan input sets saved and fetched",
		},
		[]string{"operation", "status"},
	)
)

// Cache event labels
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)
