package config

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Config holds runtime configuration for the exporter.
type Config struct {
	ClubID      string
	RunMode     string
	RunInterval time.Duration
	Provider    string
	Gmsfeed     GmsfeedConfig
	Export      ExportConfig
	Metrics     MetricsConfig
}

// Load builds configuration from built-in defaults, an optional YAML
// file (CONFIG_FILE), and environment variable overrides, in that order.
func Load() (Config, error) {
	file, err := loadFile(envOrDefault(envConfigFile, ""))
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Config{
		ClubID:      envOrDefault(envClubID, stringOr(file.ClubID, defaultClubID)),
		RunMode:     envOrDefault(envRunMode, stringOr(file.RunMode, defaultRunMode)),
		RunInterval: durationEnvOrDefault(envRunInterval, durationOr(file.RunInterval, defaultRunInterval)),
		Provider:    envOrDefault(envProvider, stringOr(file.Provider, defaultProvider)),
		Gmsfeed:     loadGmsfeed(file.Gmsfeed),
		Export:      loadExport(file.Export),
		Metrics:     loadMetrics(file.Metrics),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the invariants the rest of the pipeline relies on.
func (c Config) Validate() error {
	if _, err := uuid.Parse(c.ClubID); err != nil {
		return fmt.Errorf("club id %q is not a UUID: %w", c.ClubID, err)
	}
	if c.RunMode != RunModeOnce && c.RunMode != RunModeLoop {
		return fmt.Errorf("run mode %q must be %q or %q", c.RunMode, RunModeOnce, RunModeLoop)
	}
	if c.Provider != "gmsfeed" && c.Provider != "sample" {
		return fmt.Errorf("provider %q must be gmsfeed or sample", c.Provider)
	}
	if c.Export.OutputDir == "" {
		return fmt.Errorf("output dir must not be empty")
	}
	return nil
}

func stringOr(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func intOr(value, fallback int) int {
	if value > 0 {
		return value
	}
	return fallback
}

func durationOr(value, fallback time.Duration) time.Duration {
	if value > 0 {
		return value
	}
	return fallback
}

func boolOr(value *bool, fallback bool) bool {
	if value != nil {
		return *value
	}
	return fallback
}
