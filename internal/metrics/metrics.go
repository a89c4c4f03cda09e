package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	fetches          int
	fetchErrors      int
	lastFetchLatency time.Duration
	cacheLookups     map[string]int
}

// Recorder captures lightweight, in-memory metrics about source fetches and
// cache lookups, mirroring them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*sourceStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*sourceStats),
		otel:  otel,
	}
}

// RecordSourceFetch increments counters for an upstream fetch and stores the last observed latency.
func (r *Recorder) RecordSourceFetch(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(source)
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.fetchErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordSourceFetch(source, duration, err)
	}
}

// RecordCacheLookup counts a cache lookup outcome (hit, miss, expired, unreadable) for a source.
func (r *Recorder) RecordCacheLookup(source, outcome string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(source)
	stats.cacheLookups[outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(source, outcome)
	}
}

// SourceFetches returns the total upstream fetches recorded for a source.
func (r *Recorder) SourceFetches(source string) int {
	return r.Snapshot(source).Fetches
}

// SourceErrors returns the failed upstream fetches recorded for a source.
func (r *Recorder) SourceErrors(source string) int {
	return r.Snapshot(source).FetchErrors
}

// CacheLookups returns how many lookups for source ended with outcome.
func (r *Recorder) CacheLookups(source, outcome string) int {
	return r.Snapshot(source).CacheLookups[outcome]
}

// Snapshot is a copy of the current stats for a source.
type Snapshot struct {
	Fetches          int
	FetchErrors      int
	LastFetchLatency time.Duration
	CacheLookups     map[string]int
}

func (r *Recorder) Snapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{CacheLookups: map[string]int{}}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{CacheLookups: map[string]int{}}
	stats, ok := r.stats[source]
	if !ok || stats == nil {
		return snap
	}
	snap.Fetches = stats.fetches
	snap.FetchErrors = stats.fetchErrors
	snap.LastFetchLatency = stats.lastFetchLatency
	for k, v := range stats.cacheLookups {
		snap.CacheLookups[k] = v
	}
	return snap
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ensureStats must be called with r.mu held.
func (r *Recorder) ensureStats(source string) *sourceStats {
	stats, ok := r.stats[source]
	if !ok {
		stats = &sourceStats{cacheLookups: make(map[string]int)}
		r.stats[source] = stats
	}
	return stats
}
