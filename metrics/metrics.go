// Package metrics exposes Prometheus instrumentation for meeting queries,
// the query cache and calendar writes.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query outcomes.
const (
	OutcomeHonored  = "honored"
	OutcomeFallback = "fallback"
	OutcomeEmpty    = "empty"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

var (
	MeetingQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "huddle_meeting_queries_total",
			Help: "Total number of meeting availability queries by outcome",
		},
		[]string{"outcome"},
	)

	MeetingQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "huddle_meeting_query_duration_seconds",
			Help:    "Duration of meeting availability queries including event loading",
			Buckets: prometheus.DefBuckets,
		},
	)

	QueryCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "huddle_query_cache_requests_total",
			Help: "Query cache lookups by result",
		},
		[]string{"result"}, // "hit", "miss", "error"
	)

	CalendarEventWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "huddle_calendar_event_writes_total",
			Help: "Calendar event writes by operation",
		},
		[]string{"op"}, // "create", "import", "delete", "purge"
	)
)

// RecordMeetingQuery records the outcome and latency of one query.
func RecordMeetingQuery(outcome string, started time.Time) {
	MeetingQueries.WithLabelValues(outcome).Inc()
	MeetingQueryDuration.Observe(time.Since(started).Seconds())
}

// RecordCacheLookup records one query cache lookup.
func RecordCacheLookup(result string) {
	QueryCacheRequests.WithLabelValues(result).Inc()
}

// RecordEventWrites records n written or removed events.
func RecordEventWrites(op string, n int) {
	if n <= 0 {
		return
	}
	CalendarEventWrites.WithLabelValues(op).Add(float64(n))
}
