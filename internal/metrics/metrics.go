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

// Recorder captures lightweight, in-memory metrics about provider calls
// and export runs, mirroring what is exported through OpenTelemetry so
// the ops endpoints can answer without a metrics backend.
type Recorder struct {
	mu          sync.Mutex
	stats       map[string]*providerStats
	runs        int
	runErrors   int
	rowsWritten int
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
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

// RecordExportRun tracks one fetch-and-export cycle and the rows it wrote.
func (r *Recorder) RecordExportRun(duration time.Duration, rows int, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.runs++
	if err != nil {
		r.runErrors++
	} else {
		r.rowsWritten += rows
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordExportRun(duration, rows, err)
	}
}

// Snapshot is a copy of the current stats for a provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return Snapshot{
			Calls:           stats.calls,
			Errors:          stats.errors,
			LastCallLatency: stats.lastCallLatency,
		}
	}
	return Snapshot{}
}

// ExportRuns returns the total export cycles recorded.
func (r *Recorder) ExportRuns() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs
}

// ExportErrors returns the total failed export cycles recorded.
func (r *Recorder) ExportErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runErrors
}

// RowsWritten returns the total rows written across successful runs.
func (r *Recorder) RowsWritten() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rowsWritten
}

func (r *Recorder) ensureStatsLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
