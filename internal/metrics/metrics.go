package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	calls            int
	errors           int
	rateLimitHits    int
	lastRetryAfter   time.Duration
	lastFetchLatency time.Duration
}

// Recorder captures in-memory counters about upstream fetches and dropped
// records, mirroring them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu         sync.Mutex
	stats      map[string]*sourceStats
	extraction map[string]int
	otel       *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:      make(map[string]*sourceStats),
		extraction: make(map[string]int),
		otel:       otel,
	}
}

// RecordFetch counts one page fetch against source and stores its latency.
func (r *Recorder) RecordFetch(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(source)
	stats.calls++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetch(source, duration, err)
	}
}

// RecordRateLimit tracks that source answered 429 and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(source string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(source)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(source, retryAfter)
	}
}

// RecordExtractionErrors counts n listing items of kind that were dropped.
func (r *Recorder) RecordExtractionErrors(kind string, n int) {
	if r == nil || n <= 0 {
		return
	}

	r.mu.Lock()
	r.extraction[kind] += n
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordExtractionErrors(kind, n)
	}
}

// ExtractionErrors returns the dropped item count for kind.
func (r *Recorder) ExtractionErrors(kind string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.extraction[kind]
}

// Snapshot is a copy of the fetch stats recorded for one source.
type Snapshot struct {
	Calls            int
	Errors           int
	RateLimitHits    int
	LastRetryAfter   time.Duration
	LastFetchLatency time.Duration
}

func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[source]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:            stats.calls,
		Errors:           stats.errors,
		RateLimitHits:    stats.rateLimitHits,
		LastRetryAfter:   stats.lastRetryAfter,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ensureStats must be called with mu held.
func (r *Recorder) ensureStats(source string) *sourceStats {
	stats, ok := r.stats[source]
	if !ok {
		stats = &sourceStats{}
		r.stats[source] = stats
	}
	return stats
}
