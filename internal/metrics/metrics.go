package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type cycleStats struct {
	runs         int
	errors       int
	lastDuration time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// tracker cycles. It is intentionally simple so it can be swapped for a real
// backend later.
type Recorder struct {
	mu        sync.Mutex
	providers map[string]*providerStats
	cycles    map[string]*cycleStats

	fixturesDiscovered int
	fixturesPostponed  int
	resultsPublished   int

	otel *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers: make(map[string]*providerStats),
		cycles:    make(map[string]*cycleStats),
		otel:      otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.providers[provider]
	if !ok {
		stats = &providerStats{}
		r.providers[provider] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordCycle tracks one discovery or resolution cycle.
func (r *Recorder) RecordCycle(kind string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.cycles[kind]
	if !ok {
		stats = &cycleStats{}
		r.cycles[kind] = stats
	}
	stats.runs++
	stats.lastDuration = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCycle(kind, duration, err)
	}
}

// RecordDiscovered counts fixtures newly published for tracking.
func (r *Recorder) RecordDiscovered(count int) {
	if r == nil {
		return
	}
	r.addCount(&r.fixturesDiscovered, count, func(o *otelInstruments) {
		o.recordDiscovered(count)
	})
}

// RecordPostponed counts tracked fixtures removed as postponed/abandoned.
func (r *Recorder) RecordPostponed(count int) {
	if r == nil {
		return
	}
	r.addCount(&r.fixturesPostponed, count, func(o *otelInstruments) {
		o.recordPostponed(count)
	})
}

// RecordResultsPublished counts finished fixtures emitted downstream.
func (r *Recorder) RecordResultsPublished(count int) {
	if r == nil {
		return
	}
	r.addCount(&r.resultsPublished, count, func(o *otelInstruments) {
		o.recordResultsPublished(count)
	})
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

func (r *Recorder) addCount(field *int, count int, record func(*otelInstruments)) {
	if r == nil || count <= 0 {
		return
	}
	r.mu.Lock()
	*field += count
	r.mu.Unlock()
	if r.otel != nil {
		record(r.otel)
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.providerSnapshot(provider).calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.providerSnapshot(provider).errors
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.providerSnapshot(provider).lastCallLatency
}

// CycleRuns returns the number of cycles recorded for a kind.
func (r *Recorder) CycleRuns(kind string) int {
	return r.cycleSnapshot(kind).runs
}

// CycleErrors returns the number of failed cycles recorded for a kind.
func (r *Recorder) CycleErrors(kind string) int {
	return r.cycleSnapshot(kind).errors
}

// FixturesDiscovered returns the running count of discovered fixtures.
func (r *Recorder) FixturesDiscovered() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fixturesDiscovered
}

// FixturesPostponed returns the running count of postponed removals.
func (r *Recorder) FixturesPostponed() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fixturesPostponed
}

// ResultsPublished returns the running count of emitted results.
func (r *Recorder) ResultsPublished() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resultsPublished
}

func (r *Recorder) providerSnapshot(provider string) providerStats {
	if r == nil {
		return providerStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.providers[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}

func (r *Recorder) cycleSnapshot(kind string) cycleStats {
	if r == nil {
		return cycleStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.cycles[kind]; ok && stats != nil {
		return *stats
	}
	return cycleStats{}
}
