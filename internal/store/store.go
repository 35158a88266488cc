package store

import (
	"sync"

	domainfixtures "fixtures-exporter/internal/domain/fixtures"
)

// Store keeps a thread-safe copy of the most recent export result in
// memory for the ops endpoints. It is replaced wholesale each run.
type Store struct {
	mu     sync.RWMutex
	result domainfixtures.ExportResult
	has    bool
}

// New constructs an empty Store.
func New() *Store {
	return &Store{}
}

// SetResult replaces the stored result with the latest run's payload.
func (s *Store) SetResult(result domainfixtures.ExportResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.result = result
	s.has = true
}

// LastResult returns a copy of the most recent result, if any run has
// completed successfully.
func (s *Store) LastResult() (domainfixtures.ExportResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.has {
		return domainfixtures.ExportResult{}, false
	}
	out := s.result
	out.Fixtures = make([]domainfixtures.Fixture, len(s.result.Fixtures))
	copy(out.Fixtures, s.result.Fixtures)
	return out, true
}
