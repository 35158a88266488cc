package runner

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domainfixtures "fixtures-exporter/internal/domain/fixtures"
	"fixtures-exporter/internal/export"
	"fixtures-exporter/internal/logging"
	"fixtures-exporter/internal/metrics"
	"fixtures-exporter/internal/providers"
	"fixtures-exporter/internal/store"
)

const defaultInterval = 24 * time.Hour

// ExportWriter persists an export result to disk.
type ExportWriter interface {
	WriteFixtures(result domainfixtures.ExportResult) (export.Summary, error)
}

// Runner executes the fetch-and-export pipeline, either once per
// invocation or on an interval when no external scheduler drives it.
type Runner struct {
	provider providers.FixtureProvider
	writer   ExportWriter
	results  *store.Store
	logger   *slog.Logger
	metrics  *metrics.Recorder
	clubID   string
	interval time.Duration
	now      func() time.Time

	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the runner.
type Status struct {
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastAttempt         time.Time `json:"lastAttempt"`
	LastSuccess         time.Time `json:"lastSuccess"`
	LastRows            int       `json:"lastRows"`
}

// IsReady reports whether the runner has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Runner with sane defaults.
func New(provider providers.FixtureProvider, writer ExportWriter, results *store.Store, logger *slog.Logger, recorder *metrics.Recorder, clubID string, interval time.Duration) *Runner {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Runner{
		provider: provider,
		writer:   writer,
		results:  results,
		logger:   logger,
		metrics:  recorder,
		clubID:   clubID,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// RunOnce performs a single fetch-and-export cycle. One attempt only;
// the scheduling layer provides the retry cadence.
func (r *Runner) RunOnce(ctx context.Context) error {
	start := r.now()
	r.recordAttempt(start)

	list, err := r.provider.FetchFixtures(ctx, r.clubID)
	if r.metrics != nil {
		r.metrics.RecordProviderAttempt(providerName(list, err), time.Since(start), err)
	}
	if err != nil {
		r.finishRun(start, 0, err)
		logging.Error(r.logger, "fixture fetch failed", err,
			slog.String(logging.FieldClubID, r.clubID),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		return err
	}

	result := domainfixtures.NewExportResult(r.clubID, start.UTC(), list)
	summary, err := r.writer.WriteFixtures(result)
	if err != nil {
		r.finishRun(start, 0, err)
		logging.Error(r.logger, "csv export failed", err,
			slog.String(logging.FieldClubID, r.clubID),
		)
		return err
	}

	if r.results != nil {
		r.results.SetResult(result)
	}
	r.finishRun(start, summary.Rows, nil)
	logging.Info(r.logger, "fixtures exported",
		slog.String(logging.FieldClubID, r.clubID),
		slog.Int(logging.FieldRows, summary.Rows),
		slog.String(logging.FieldPath, summary.LatestPath),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return nil
}

// Start begins interval runs until the context is cancelled or Stop is called.
func (r *Runner) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	go func() {
		// The goroutine owns the ticker so Start and Stop never share it.
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		logging.Info(r.logger, "runner started", slog.Int64(logging.FieldDurationMS, r.interval.Milliseconds()))
		// Initial run on boot rather than waiting a full interval.
		_ = r.RunOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				logging.Info(r.logger, "runner stopped")
				return
			case <-r.done:
				logging.Info(r.logger, "runner stopped")
				return
			case <-ticker.C:
				_ = r.RunOnce(ctx)
			}
		}
	}()
}

// Stop halts the interval loop.
func (r *Runner) Stop(ctx context.Context) error {
	_ = ctx
	r.stopOnce.Do(func() {
		close(r.done)
	})
	return nil
}

// Status returns a snapshot of the runner's recent health.
func (r *Runner) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}

func (r *Runner) recordAttempt(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.LastAttempt = at
}

func (r *Runner) finishRun(start time.Time, rows int, err error) {
	if r.metrics != nil {
		r.metrics.RecordExportRun(time.Since(start), rows, err)
	}

	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	if err != nil {
		r.status.ConsecutiveFailures++
		r.status.LastError = err.Error()
		return
	}
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = start
	r.status.LastRows = rows
}

func providerName(list []domainfixtures.Fixture, err error) string {
	if len(list) > 0 {
		return list[0].Provider
	}
	if netErr, ok := providers.AsNetworkError(err); ok {
		return netErr.Provider
	}
	if parseErr, ok := providers.AsParseError(err); ok {
		return parseErr.Provider
	}
	return "unknown"
}
