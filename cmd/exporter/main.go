package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"fixtures-exporter/internal/config"
	"fixtures-exporter/internal/export"
	"fixtures-exporter/internal/logging"
	"fixtures-exporter/internal/providers"
	"fixtures-exporter/internal/server"
)

const appVersion = "dev"

// Exit codes let the scheduling layer distinguish failure causes while
// keeping the "non-zero on failure" contract.
const (
	exitOK      = 0
	exitNetwork = 1
	exitParse   = 2
	exitIO      = 3
	exitConfig  = 4
)

func main() {
	os.Exit(run())
}

func run() int {
	// Local runs keep secrets in a .env file; absence is fine.
	_ = godotenv.Load()

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "fixtures-exporter",
		Version: appVersion,
	})

	cfg, err := config.Load()
	if err != nil {
		logging.Error(logger, "invalid configuration", err)
		return exitConfig
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)

	if cfg.RunMode == config.RunModeLoop {
		srv.Run(ctx, stop)
		return exitOK
	}

	if err := srv.RunOnce(ctx); err != nil {
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	if _, ok := providers.AsNetworkError(err); ok {
		return exitNetwork
	}
	if _, ok := providers.AsParseError(err); ok {
		return exitParse
	}
	if _, ok := export.AsIOError(err); ok {
		return exitIO
	}
	return exitIO
}
