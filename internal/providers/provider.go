package providers

import (
	"context"

	domainfixtures "fixtures-exporter/internal/domain/fixtures"
)

// FixtureProvider defines how upstream fixture data is fetched and normalized.
// clubID is the UUID identifying the club whose fixtures are requested.
type FixtureProvider interface {
	FetchFixtures(ctx context.Context, clubID string) ([]domainfixtures.Fixture, error)
}
