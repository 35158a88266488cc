package gmsfeed

import "testing"

func TestUnwrapPayloadBareArray(t *testing.T) {
	body := `[{"date": "2024-05-01", "home_team": "Town FC", "away_team": "City FC"}]`

	list, err := unwrapPayload([]byte(body))
	if err != nil {
		t.Fatalf("expected unwrap to succeed, got %v", err)
	}
	if len(list) != 1 || list[0].HomeTeam != "Town FC" {
		t.Fatalf("unexpected payload %+v", list)
	}
}

func TestUnwrapPayloadEnvelopeKeys(t *testing.T) {
	for _, key := range []string{"fixtures", "results", "matches"} {
		body := `{"` + key + `": [{"date": "2024-05-01"}, {"date": "2024-05-08"}]}`

		list, err := unwrapPayload([]byte(body))
		if err != nil {
			t.Fatalf("key %s: expected unwrap to succeed, got %v", key, err)
		}
		if len(list) != 2 {
			t.Fatalf("key %s: expected 2 fixtures, got %d", key, len(list))
		}
	}
}

func TestUnwrapPayloadSingleObject(t *testing.T) {
	body := `{"date": "2024-05-01", "home_team": "Town FC", "away_team": "City FC"}`

	list, err := unwrapPayload([]byte(body))
	if err != nil {
		t.Fatalf("expected unwrap to succeed, got %v", err)
	}
	if len(list) != 1 || list[0].AwayTeam != "City FC" {
		t.Fatalf("unexpected payload %+v", list)
	}
}

func TestUnwrapPayloadRejectsNonJSON(t *testing.T) {
	if _, err := unwrapPayload([]byte("<html>not json</html>")); err == nil {
		t.Fatalf("expected error for non-JSON body")
	}
}

func TestUnwrapPayloadRejectsNonArrayEnvelope(t *testing.T) {
	if _, err := unwrapPayload([]byte(`{"fixtures": "soon"}`)); err == nil {
		t.Fatalf("expected error for non-array envelope value")
	}
}
