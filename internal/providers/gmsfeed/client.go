package gmsfeed

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	domainfixtures "fixtures-exporter/internal/domain/fixtures"
	"fixtures-exporter/internal/providers"
)

// Config controls how the gmsfeed client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
	SortBy     string
	Show       string
}

// Client fetches fixtures from the gmsfeed API and maps them to domain models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	sortBy     string
	show       string
}

// NewClient constructs a gmsfeed client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		sortBy:     resolveSortBy(cfg.SortBy),
		show:       resolveShow(cfg.Show),
	}
}

// FetchFixtures retrieves the club's fixtures with a single request.
// Failures are classified as NetworkError (request level) or ParseError
// (response body level); there is no retry here, the scheduler provides
// the retry cadence.
func (c *Client) FetchFixtures(ctx context.Context, clubID string) ([]domainfixtures.Fixture, error) {
	req, err := c.buildRequest(ctx, clubID)
	if err != nil {
		return nil, &providers.NetworkError{Provider: providerName, Message: "building request", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.NetworkError{Provider: providerName, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySample))
		return nil, &providers.NetworkError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Message:    "unexpected status: " + strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &providers.NetworkError{Provider: providerName, Message: "reading response body", Err: err}
	}

	payload, err := unwrapPayload(body)
	if err != nil {
		return nil, &providers.ParseError{Provider: providerName, Message: "decoding response", Err: err}
	}

	result := make([]domainfixtures.Fixture, 0, len(payload))
	for _, raw := range payload {
		fixture, mapErr := mapFixture(raw)
		if mapErr != nil {
			return nil, mapErr
		}
		result = append(result, fixture)
	}

	return result, nil
}

func (c *Client) buildRequest(ctx context.Context, clubID string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/fixtures", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("club_id", clubID)
	q.Set("sort_by", c.sortBy)
	q.Set("show", c.show)
	req.URL.RawQuery = q.Encode()

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)
	if c.apiKey != "" {
		// The feed accepts either header; send both like the upstream docs suggest.
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("X-API-Key", c.apiKey)
	}

	return req, nil
}
