package fixtures

import "time"

// Status mirrors the lifecycle states a fixture can be in.
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
	StatusPostponed Status = "POSTPONED"
	StatusCanceled  Status = "CANCELED"
)

// Score captures home and away goals for a completed fixture.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Fixture is the canonical fixture shape produced by providers.
// Score is nil for fixtures that have not been played; upstream score
// data is carried verbatim and never fabricated.
type Fixture struct {
	ID          string    `json:"id"`
	Provider    string    `json:"provider"`
	Kickoff     time.Time `json:"kickoff"`
	HomeTeam    string    `json:"homeTeam"`
	AwayTeam    string    `json:"awayTeam"`
	Score       *Score    `json:"score,omitempty"`
	Competition string    `json:"competition"`
	Venue       string    `json:"venue"`
	Status      Status    `json:"status"`
}

// Completed reports whether the fixture has a final score.
func (f Fixture) Completed() bool {
	return f.Score != nil
}

// ExportResult is the payload produced by one fetch, handed to the
// CSV writer and retained for the ops endpoints.
type ExportResult struct {
	ClubID    string    `json:"clubId"`
	FetchedAt time.Time `json:"fetchedAt"`
	Fixtures  []Fixture `json:"fixtures"`
}

// NewExportResult builds an ExportResult payload.
func NewExportResult(clubID string, fetchedAt time.Time, list []Fixture) ExportResult {
	return ExportResult{
		ClubID:    clubID,
		FetchedAt: fetchedAt,
		Fixtures:  list,
	}
}
