package server

import (
	"fixtures-exporter/internal/config"
	"fixtures-exporter/internal/providers"
	"fixtures-exporter/internal/providers/gmsfeed"
	"fixtures-exporter/internal/providers/sample"
)

// selectProvider picks the configured fixture source. The sample
// provider is an explicit choice, never a fallback: a failed fetch
// must fail the run.
func selectProvider(cfg config.Config) providers.FixtureProvider {
	switch cfg.Provider {
	case "sample":
		return sample.New()
	default:
		return gmsfeed.NewClient(gmsfeed.Config{
			BaseURL: cfg.Gmsfeed.BaseURL,
			APIKey:  cfg.Gmsfeed.APIKey,
			Timeout: cfg.Gmsfeed.Timeout,
			SortBy:  cfg.Gmsfeed.SortBy,
			Show:    cfg.Gmsfeed.Show,
		})
	}
}
