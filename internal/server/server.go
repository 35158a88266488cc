package server

import (
	"context"
	"log/slog"
	"net/http"

	"fixtures-exporter/internal/config"
	"fixtures-exporter/internal/export"
	"fixtures-exporter/internal/logging"
	"fixtures-exporter/internal/metrics"
	"fixtures-exporter/internal/providers"
	"fixtures-exporter/internal/runner"
	"fixtures-exporter/internal/store"
)

var metricsSetup = metrics.Setup

// Runner defines the minimal runner behavior needed by the server.
type Runner interface {
	RunOnce(ctx context.Context) error
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() runner.Status
}

// Server wires the provider, writer, runner, and ops endpoints together.
type Server struct {
	cfg         config.Config
	logger      *slog.Logger
	metrics     *metrics.Recorder
	results     *store.Store
	runner      Runner
	opsServer   opsListener
	metricsStop func(context.Context) error
}

// New constructs a server with default provider and runner wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, selectProvider(cfg))
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.FixtureProvider) *Server {
	recorder, metricsHandler, metricsShutdown := buildMetrics(cfg, logger)

	results := store.New()
	writer := export.NewWriter(export.Options{
		Dir:               cfg.Export.OutputDir,
		TimestampedCopies: cfg.Export.TimestampedCopies,
		RetentionDays:     cfg.Export.RetentionDays,
	})
	run := runner.New(provider, writer, results, logger, recorder, cfg.ClubID, cfg.RunInterval)

	return &Server{
		cfg:         cfg,
		logger:      logger,
		metrics:     recorder,
		results:     results,
		runner:      run,
		opsServer:   buildOpsServer(cfg, run.Status, results, metricsHandler),
		metricsStop: metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, run Runner, ops opsListener) *Server {
	return &Server{
		cfg:       cfg,
		logger:    logger,
		runner:    run,
		opsServer: ops,
	}
}

func buildOpsServer(cfg config.Config, statusFn func() runner.Status, results *store.Store, metricsHandler http.Handler) opsListener {
	if cfg.RunMode != config.RunModeLoop || !cfg.Metrics.Enabled {
		return nil
	}
	return newBoundListener(cfg.Metrics.Port, newOpsMux(statusFn, results, metricsHandler))
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, http.Handler, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}
	return rec, handler, shutdown
}

// RunOnce executes a single fetch-and-export cycle and flushes telemetry.
func (s *Server) RunOnce(ctx context.Context) error {
	runErr := s.runner.RunOnce(ctx)
	s.stopMetrics()
	return runErr
}

// Run starts the interval runner and ops server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startOpsServer(stop)
	s.runner.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startOpsServer(stop context.CancelFunc) {
	if s.opsServer == nil {
		return
	}
	logging.Info(s.logger, "ops server starting", slog.String("addr", s.opsServer.Addr()))
	go func() {
		if err := s.opsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(s.logger, "ops server failed", "error", err)
			if stop != nil {
				stop()
			}
		}
	}()
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.runner.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop runner", err)
	}

	if s.opsServer != nil {
		if err := s.opsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "ops server shutdown failed", "error", err)
		}
	}

	s.stopMetrics()
	logging.Info(s.logger, "shutdown complete")
}

func (s *Server) stopMetrics() {
	if s.metricsStop == nil {
		return
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.metricsStop(shutdownCtx); err != nil {
		logging.Warn(s.logger, "metrics shutdown failed", "error", err)
	}
	s.metricsStop = nil
}

// Handler exposes the ops HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	if s.opsServer == nil {
		return nil
	}
	return s.opsServer.Handler()
}
