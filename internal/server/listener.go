package server

import (
	"context"
	"net/http"
	"time"
)

// The ops listener only serves health probes, status reads, and metrics
// scrapes, so request windows can stay tight. Idle is long enough to keep
// a scrape connection alive between Prometheus intervals.
const (
	opsReadTimeout  = 5 * time.Second
	opsWriteTimeout = 15 * time.Second
	opsIdleTimeout  = 2 * time.Minute
)

// shutdownTimeout is a var so tests can shorten the drain window.
var shutdownTimeout = 5 * time.Second

// opsListener is the slice of *http.Server the ops endpoints need, kept
// behind an interface so shutdown paths are testable without binding a port.
type opsListener interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

type boundListener struct {
	srv *http.Server
}

func newBoundListener(port string, handler http.Handler) boundListener {
	return boundListener{
		srv: &http.Server{
			Addr:         ":" + port,
			Handler:      handler,
			ReadTimeout:  opsReadTimeout,
			WriteTimeout: opsWriteTimeout,
			IdleTimeout:  opsIdleTimeout,
		},
	}
}

func (l boundListener) ListenAndServe() error              { return l.srv.ListenAndServe() }
func (l boundListener) Shutdown(ctx context.Context) error { return l.srv.Shutdown(ctx) }
func (l boundListener) Addr() string                       { return l.srv.Addr }
func (l boundListener) Handler() http.Handler              { return l.srv.Handler }
