package server

import (
	"encoding/json"
	"net/http"
	"time"

	"fixtures-exporter/internal/runner"
	"fixtures-exporter/internal/store"
)

// statusPayload is the /status response body.
type statusPayload struct {
	Ready     bool          `json:"ready"`
	Runner    runner.Status `json:"runner"`
	LastRun   *lastRunInfo  `json:"lastRun,omitempty"`
	CheckedAt time.Time     `json:"checkedAt"`
}

type lastRunInfo struct {
	ClubID    string    `json:"clubId"`
	FetchedAt time.Time `json:"fetchedAt"`
	Fixtures  int       `json:"fixtures"`
}

// newOpsMux builds the ops surface served in loop mode: liveness,
// runner status, and the prometheus scrape handler when configured.
func newOpsMux(statusFn func() runner.Status, results *store.Store, metricsHandler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		payload := statusPayload{CheckedAt: time.Now().UTC()}
		if statusFn != nil {
			payload.Runner = statusFn()
			payload.Ready = payload.Runner.IsReady()
		}
		if results != nil {
			if last, ok := results.LastResult(); ok {
				payload.LastRun = &lastRunInfo{
					ClubID:    last.ClubID,
					FetchedAt: last.FetchedAt,
					Fixtures:  len(last.Fixtures),
				}
			}
		}

		w.Header().Set("Content-Type", "application/json")
		if !payload.Ready {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(payload)
	})

	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}

	return mux
}
