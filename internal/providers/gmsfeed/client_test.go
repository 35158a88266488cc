package gmsfeed

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"fixtures-exporter/internal/providers"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

const clubID = "e9ba26d3-7e18-4772-abb0-584e887c9d38"

func TestFetchFixturesHitsAPIAndMapsResponse(t *testing.T) {
	var capturedQuery string
	var capturedAuth string
	var capturedKey string

	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/api/fixtures" {
			t.Fatalf("expected /api/fixtures path, got %s", req.URL.Path)
		}
		capturedQuery = req.URL.RawQuery
		capturedAuth = req.Header.Get("Authorization")
		capturedKey = req.Header.Get("X-API-Key")

		body := `{
			"fixtures": [
				{
					"fixture_id": "10",
					"date": "2024-05-01",
					"time": "15:00",
					"home_team": "Town FC",
					"away_team": "City FC",
					"home_score": 2,
					"away_score": 1,
					"competition": "League Cup",
					"venue": "Main Ground",
					"status": "Full Time"
				},
				{
					"date": "2024-05-08",
					"time": "19:45",
					"home_team": "Town FC",
					"away_team": "Rovers",
					"home_score": null,
					"away_score": null,
					"competition": "League Cup",
					"venue": "Main Ground",
					"status": "Scheduled"
				}
			]
		}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "https://gmsfeed.co.uk/api/",
		APIKey:     "secret-key",
		HTTPClient: &http.Client{Transport: rt},
	})

	list, err := client.FetchFixtures(context.Background(), clubID)
	if err != nil {
		t.Fatalf("expected fetch to succeed, got %v", err)
	}

	if len(list) != 2 {
		t.Fatalf("expected 2 fixtures, got %d", len(list))
	}
	if list[0].ID != "gmsfeed-10" || list[0].Score == nil {
		t.Fatalf("unexpected first fixture %+v", list[0])
	}
	if list[1].Score != nil {
		t.Fatalf("expected scheduled fixture to have nil score, got %+v", list[1].Score)
	}

	if !strings.Contains(capturedQuery, "club_id="+clubID) {
		t.Fatalf("expected club_id in query, got %s", capturedQuery)
	}
	if !strings.Contains(capturedQuery, "sort_by=fixtureTime") || !strings.Contains(capturedQuery, "show=results") {
		t.Fatalf("expected default sort/show params, got %s", capturedQuery)
	}
	if capturedAuth != "Bearer secret-key" || capturedKey != "secret-key" {
		t.Fatalf("expected both auth headers, got auth=%q key=%q", capturedAuth, capturedKey)
	}
}

func TestFetchFixturesTransportFailureIsNetworkError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: i/o timeout")
	})

	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchFixtures(context.Background(), clubID)
	if _, ok := providers.AsNetworkError(err); !ok {
		t.Fatalf("expected network error, got %v", err)
	}
}

func TestFetchFixturesBadStatusIsNetworkError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusServiceUnavailable,
			Body:       io.NopCloser(strings.NewReader("upstream down")),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchFixtures(context.Background(), clubID)
	netErr, ok := providers.AsNetworkError(err)
	if !ok {
		t.Fatalf("expected network error, got %v", err)
	}
	if netErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", netErr.StatusCode)
	}
}

func TestFetchFixturesMalformedBodyIsParseError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("<html>login page</html>")),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchFixtures(context.Background(), clubID)
	if _, ok := providers.AsParseError(err); !ok {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestFetchFixturesMissingFieldIsParseError(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		body := `[{"time": "15:00", "home_team": "Town FC", "away_team": "City FC"}]`
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{HTTPClient: &http.Client{Transport: rt}})

	_, err := client.FetchFixtures(context.Background(), clubID)
	parseErr, ok := providers.AsParseError(err)
	if !ok {
		t.Fatalf("expected parse error, got %v", err)
	}
	if parseErr.Field != "date" {
		t.Fatalf("expected date field, got %s", parseErr.Field)
	}
}
