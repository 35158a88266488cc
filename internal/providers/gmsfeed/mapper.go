package gmsfeed

import (
	"fmt"
	"strings"
	"time"

	domainfixtures "fixtures-exporter/internal/domain/fixtures"
	"fixtures-exporter/internal/providers"
	"fixtures-exporter/internal/timeutil"
)

func mapFixture(raw fixtureResponse) (domainfixtures.Fixture, error) {
	kickoff, err := parseKickoff(raw.Date, raw.Time)
	if err != nil {
		return domainfixtures.Fixture{}, &providers.ParseError{
			Provider: providerName,
			Field:    "date",
			Message:  "missing or unparseable kickoff",
			Err:      err,
		}
	}

	home := strings.TrimSpace(raw.HomeTeam)
	if home == "" {
		return domainfixtures.Fixture{}, &providers.ParseError{
			Provider: providerName,
			Field:    "home_team",
			Message:  "missing required field",
		}
	}
	away := strings.TrimSpace(raw.AwayTeam)
	if away == "" {
		return domainfixtures.Fixture{}, &providers.ParseError{
			Provider: providerName,
			Field:    "away_team",
			Message:  "missing required field",
		}
	}

	score, err := mapScore(raw.HomeScore, raw.AwayScore)
	if err != nil {
		return domainfixtures.Fixture{}, err
	}

	return domainfixtures.Fixture{
		ID:          mapID(raw, kickoff, home),
		Provider:    providerName,
		Kickoff:     kickoff,
		HomeTeam:    home,
		AwayTeam:    away,
		Score:       score,
		Competition: strings.TrimSpace(raw.Competition),
		Venue:       strings.TrimSpace(raw.Venue),
		Status:      mapStatus(raw.Status, score),
	}, nil
}

// mapScore carries upstream scores verbatim: both present yields a score,
// both absent yields nil. A one-sided score is an inconsistent record.
func mapScore(home, away *int) (*domainfixtures.Score, error) {
	if home == nil && away == nil {
		return nil, nil
	}
	if home == nil || away == nil {
		return nil, &providers.ParseError{
			Provider: providerName,
			Field:    "score",
			Message:  "one-sided score",
		}
	}
	return &domainfixtures.Score{Home: *home, Away: *away}, nil
}

func mapStatus(status string, score *domainfixtures.Score) domainfixtures.Status {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "full time", "result", "played", "completed", "ft":
		return domainfixtures.StatusCompleted
	case "postponed":
		return domainfixtures.StatusPostponed
	case "canceled", "cancelled":
		return domainfixtures.StatusCanceled
	case "scheduled", "fixture", "upcoming":
		return domainfixtures.StatusScheduled
	}
	// Feed variants omit status; fall back to score presence.
	if score != nil {
		return domainfixtures.StatusCompleted
	}
	return domainfixtures.StatusScheduled
}

func mapID(raw fixtureResponse, kickoff time.Time, home string) string {
	if id := strings.TrimSpace(raw.ID); id != "" {
		return fmt.Sprintf("%s-%s", providerName, id)
	}
	return fmt.Sprintf("%s-%s-%s", providerName, timeutil.FormatDate(kickoff), strings.ToLower(strings.ReplaceAll(home, " ", "-")))
}

// parseKickoff combines the feed's separate date and time fields.
// Some endpoint variants send a full RFC 3339 timestamp in date instead.
func parseKickoff(date, clock string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if ts, err := time.Parse(time.RFC3339, date); err == nil {
		return ts, nil
	}

	day, err := timeutil.ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}

	clock = strings.TrimSpace(clock)
	if clock == "" {
		return day, nil
	}
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, clock); err == nil {
			return day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable time %q", clock)
}
