package gmsfeed

import "encoding/json"

// fixtureResponse mirrors one fixture object as the feed returns it.
// Scores are pointers: the feed sends null for unplayed matches.
type fixtureResponse struct {
	ID          string `json:"fixture_id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	HomeTeam    string `json:"home_team"`
	AwayTeam    string `json:"away_team"`
	HomeScore   *int   `json:"home_score"`
	AwayScore   *int   `json:"away_score"`
	Competition string `json:"competition"`
	Venue       string `json:"venue"`
	Status      string `json:"status"`
}

// The feed returns either a bare array of fixtures or an object wrapping
// the array under one of these keys, depending on the endpoint variant.
var envelopeKeys = []string{"fixtures", "results", "matches", "data", "items", "games"}

// unwrapPayload decodes a response body into the fixture list, handling
// both the bare-array and enveloped shapes.
func unwrapPayload(body []byte) ([]fixtureResponse, error) {
	var list []fixtureResponse
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}

	for _, key := range envelopeKeys {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	// An object with none of the known keys is treated as a single fixture.
	var single fixtureResponse
	if err := json.Unmarshal(body, &single); err != nil {
		return nil, err
	}
	return []fixtureResponse{single}, nil
}
