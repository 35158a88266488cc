package config

import "time"

const (
	envConfigFile   = "CONFIG_FILE"
	envClubID       = "CLUB_ID"
	envRunMode      = "RUN_MODE"
	envRunInterval  = "RUN_INTERVAL"
	envProvider     = "PROVIDER"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	// The example club from the upstream docs; override per deployment.
	defaultClubID      = "e9ba26d3-7e18-4772-abb0-584e887c9d38"
	defaultRunMode     = RunModeOnce
	defaultProvider    = "gmsfeed"
	defaultMetricsPort = "9090"
	// Loop mode cadence when no external scheduler drives the runs.
	defaultRunInterval = 24 * time.Hour
)

// Run modes.
const (
	RunModeOnce = "once"
	RunModeLoop = "loop"
)
