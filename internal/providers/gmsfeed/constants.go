package gmsfeed

import "time"

const (
	providerName       = "gmsfeed"
	defaultBaseURL     = "https://gmsfeed.co.uk/api"
	defaultHTTPTimeout = 30 * time.Second
	defaultSortBy      = "fixtureTime"
	defaultShow        = "results"

	// Headers the upstream feed expects from non-browser clients.
	userAgent    = "Mozilla/5.0 (compatible; fixtures-exporter/1.0)"
	acceptHeader = "application/json, text/html, */*"

	maxErrorBodySample = 512
)
