package sample

import (
	"context"
	"time"

	domainfixtures "fixtures-exporter/internal/domain/fixtures"
)

// Provider returns a static set of fixtures useful for local runs and
// bootstrapping without hitting the upstream feed. It is selected
// explicitly via configuration; fetch failures never fall back to it.
type Provider struct {
	now func() time.Time
}

// New creates a sample provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchFixtures returns a deterministic set of example fixtures: one
// completed match with a score and one upcoming match without.
func (p *Provider) FetchFixtures(ctx context.Context, clubID string) ([]domainfixtures.Fixture, error) {
	_ = ctx
	_ = clubID

	today := p.now().UTC().Truncate(24 * time.Hour)

	return []domainfixtures.Fixture{
		{
			ID:          "sample-1",
			Provider:    "sample",
			Kickoff:     today.Add(15 * time.Hour),
			HomeTeam:    "Home Team FC",
			AwayTeam:    "Away Team United",
			Score:       &domainfixtures.Score{Home: 2, Away: 1},
			Competition: "League Championship",
			Venue:       "Home Stadium",
			Status:      domainfixtures.StatusCompleted,
		},
		{
			ID:          "sample-2",
			Provider:    "sample",
			Kickoff:     today.Add(7*24*time.Hour + 17*time.Hour + 30*time.Minute),
			HomeTeam:    "Another Team FC",
			AwayTeam:    "Visitors United",
			Competition: "League Championship",
			Venue:       "Away Stadium",
			Status:      domainfixtures.StatusScheduled,
		},
	}, nil
}
