package config

import "time"

const (
	envGmsBaseURL   = "GMSFEED_BASE_URL"
	envGmsAPIKey    = "SPORTS_API_KEY"
	envGmsAPIKeyAlt = "API_KEY"
	envGmsSortBy    = "GMSFEED_SORT_BY"
	envGmsShow      = "GMSFEED_SHOW"
	envGmsTimeout   = "HTTP_TIMEOUT"

	defaultGmsBaseURL = "https://gmsfeed.co.uk/api"
	defaultGmsTimeout = 30 * time.Second
)

// GmsfeedConfig controls how we talk to the gmsfeed API.
type GmsfeedConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	SortBy  string        `yaml:"sort_by"`
	Show    string        `yaml:"show"`
	Timeout time.Duration `yaml:"timeout"`
}

func loadGmsfeed(file *GmsfeedConfig) GmsfeedConfig {
	base := GmsfeedConfig{
		BaseURL: defaultGmsBaseURL,
		Timeout: defaultGmsTimeout,
	}
	if file != nil {
		base.BaseURL = stringOr(file.BaseURL, base.BaseURL)
		base.APIKey = file.APIKey
		base.SortBy = file.SortBy
		base.Show = file.Show
		base.Timeout = durationOr(file.Timeout, base.Timeout)
	}

	apiKey := envOrDefault(envGmsAPIKey, base.APIKey)
	if apiKey == "" {
		// Legacy name kept for older deployments.
		apiKey = envOrDefault(envGmsAPIKeyAlt, "")
	}
	return GmsfeedConfig{
		BaseURL: envOrDefault(envGmsBaseURL, base.BaseURL),
		APIKey:  apiKey,
		SortBy:  envOrDefault(envGmsSortBy, base.SortBy),
		Show:    envOrDefault(envGmsShow, base.Show),
		Timeout: durationEnvOrDefault(envGmsTimeout, base.Timeout),
	}
}
