package runner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	domainfixtures "fixtures-exporter/internal/domain/fixtures"
	"fixtures-exporter/internal/export"
	"fixtures-exporter/internal/metrics"
	"fixtures-exporter/internal/providers"
	"fixtures-exporter/internal/store"
)

type stubProvider struct {
	mu       sync.Mutex
	calls    int
	fixtures []domainfixtures.Fixture
	err      error
}

func (s *stubProvider) FetchFixtures(ctx context.Context, clubID string) ([]domainfixtures.Fixture, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return s.fixtures, nil
}

func (s *stubProvider) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type stubWriter struct {
	mu      sync.Mutex
	calls   int
	lastRes domainfixtures.ExportResult
	err     error
}

func (s *stubWriter) WriteFixtures(result domainfixtures.ExportResult) (export.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.lastRes = result
	if s.err != nil {
		return export.Summary{}, s.err
	}
	return export.Summary{Rows: len(result.Fixtures), LatestPath: "data/latest_fixtures.csv"}, nil
}

func (s *stubWriter) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

const clubID = "e9ba26d3-7e18-4772-abb0-584e887c9d38"

func sampleFixtures() []domainfixtures.Fixture {
	return []domainfixtures.Fixture{
		{ID: "gmsfeed-1", Provider: "gmsfeed", HomeTeam: "Town FC", AwayTeam: "City FC"},
	}
}

func TestRunOnceExportsAndRecordsStatus(t *testing.T) {
	provider := &stubProvider{fixtures: sampleFixtures()}
	writer := &stubWriter{}
	results := store.New()
	recorder := metrics.NewRecorder()

	r := New(provider, writer, results, nil, recorder, clubID, time.Hour)

	if err := r.RunOnce(context.Background()); err != nil {
		t.Fatalf("expected run to succeed, got %v", err)
	}

	if writer.callCount() != 1 {
		t.Fatalf("expected one write, got %d", writer.callCount())
	}
	if writer.lastRes.ClubID != clubID {
		t.Fatalf("expected club id in result, got %s", writer.lastRes.ClubID)
	}

	status := r.Status()
	if !status.IsReady() {
		t.Fatalf("expected ready status after success, got %+v", status)
	}
	if status.LastRows != 1 {
		t.Fatalf("expected 1 row recorded, got %d", status.LastRows)
	}

	if _, ok := results.LastResult(); !ok {
		t.Fatalf("expected result stored after success")
	}
	if recorder.ExportRuns() != 1 || recorder.RowsWritten() != 1 {
		t.Fatalf("expected metrics recorded, runs=%d rows=%d", recorder.ExportRuns(), recorder.RowsWritten())
	}
}

func TestRunOnceFetchFailureSkipsWrite(t *testing.T) {
	fetchErr := &providers.NetworkError{Provider: "gmsfeed", Message: "request failed", Err: errors.New("timeout")}
	provider := &stubProvider{err: fetchErr}
	writer := &stubWriter{}
	results := store.New()

	r := New(provider, writer, results, nil, metrics.NewRecorder(), clubID, time.Hour)

	err := r.RunOnce(context.Background())
	if _, ok := providers.AsNetworkError(err); !ok {
		t.Fatalf("expected network error to propagate, got %v", err)
	}

	if writer.callCount() != 0 {
		t.Fatalf("expected no write after fetch failure, got %d", writer.callCount())
	}
	if _, ok := results.LastResult(); ok {
		t.Fatalf("expected no stored result after failure")
	}

	status := r.Status()
	if status.ConsecutiveFailures != 1 || status.LastError == "" {
		t.Fatalf("expected failure recorded, got %+v", status)
	}
}

func TestRunOnceWriteFailurePropagates(t *testing.T) {
	provider := &stubProvider{fixtures: sampleFixtures()}
	writer := &stubWriter{err: &export.IOError{Path: "data/latest_fixtures.csv.tmp", Err: errors.New("disk full")}}
	results := store.New()

	r := New(provider, writer, results, nil, nil, clubID, time.Hour)

	err := r.RunOnce(context.Background())
	if _, ok := export.AsIOError(err); !ok {
		t.Fatalf("expected IO error to propagate, got %v", err)
	}
	if _, ok := results.LastResult(); ok {
		t.Fatalf("expected no stored result after write failure")
	}
}

func TestStatusRecoversAfterSuccess(t *testing.T) {
	provider := &stubProvider{err: &providers.NetworkError{Provider: "gmsfeed"}}
	writer := &stubWriter{}

	r := New(provider, writer, nil, nil, nil, clubID, time.Hour)

	_ = r.RunOnce(context.Background())
	_ = r.RunOnce(context.Background())
	if got := r.Status().ConsecutiveFailures; got != 2 {
		t.Fatalf("expected 2 consecutive failures, got %d", got)
	}

	provider.err = nil
	provider.fixtures = sampleFixtures()
	if err := r.RunOnce(context.Background()); err != nil {
		t.Fatalf("expected run to succeed, got %v", err)
	}
	if got := r.Status().ConsecutiveFailures; got != 0 {
		t.Fatalf("expected failure count reset, got %d", got)
	}
}

func TestStartRunsImmediatelyAndStops(t *testing.T) {
	provider := &stubProvider{fixtures: sampleFixtures()}
	writer := &stubWriter{}

	r := New(provider, writer, nil, nil, nil, clubID, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r.Start(ctx)

	deadline := time.After(2 * time.Second)
	for provider.callCount() == 0 {
		select {
		case <-deadline:
			t.Fatalf("expected initial run shortly after start")
		case <-time.After(10 * time.Millisecond):
		}
	}

	if err := r.Stop(context.Background()); err != nil {
		t.Fatalf("expected stop to succeed, got %v", err)
	}
}

func TestConcurrentStartAndStop(t *testing.T) {
	provider := &stubProvider{fixtures: sampleFixtures()}
	writer := &stubWriter{}

	r := New(provider, writer, nil, nil, nil, clubID, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Start(ctx)
		}()
		go func() {
			defer wg.Done()
			_ = r.Stop(context.Background())
		}()
	}
	wg.Wait()

	if err := r.Stop(context.Background()); err != nil {
		t.Fatalf("expected repeated stop to succeed, got %v", err)
	}
}
