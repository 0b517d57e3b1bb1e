package espn

import (
	"encoding/json"
	"testing"
	"time"
)

func TestMapScoreboardSkipsEventMissingRole(t *testing.T) {
	payload := scoreboardResponse{
		Events: []eventResponse{
			{
				ID: "1",
				Competitions: []competitionResponse{{
					Date: "2024-08-17T14:00Z",
					Competitors: []competitorResponse{
						{HomeAway: "home", Team: teamResponse{DisplayName: "Arsenal"}},
					},
				}},
			},
			{
				ID: "2",
				Competitions: []competitionResponse{{
					Date: "2024-08-17T14:00Z",
					Competitors: []competitorResponse{
						{HomeAway: "home", Team: teamResponse{DisplayName: "Fulham"}},
						{HomeAway: "away", Team: teamResponse{DisplayName: "Everton"}},
					},
				}},
			},
		},
	}

	fixtures := mapScoreboard(payload, "eng.1", time.UTC, nil)
	if len(fixtures) != 1 {
		t.Fatalf("expected only the well-formed event, got %d fixtures", len(fixtures))
	}
	if fixtures[0].ID != "2" {
		t.Fatalf("expected fixture 2 to survive, got %s", fixtures[0].ID)
	}
}

func TestMapScoreboardSkipsEventWithoutCompetition(t *testing.T) {
	payload := scoreboardResponse{
		Events: []eventResponse{{ID: "1"}},
	}
	if fixtures := mapScoreboard(payload, "eng.1", time.UTC, nil); len(fixtures) != 0 {
		t.Fatalf("expected no fixtures, got %d", len(fixtures))
	}
}

func TestMapScoreboardDefaultsLeagueName(t *testing.T) {
	payload := scoreboardResponse{
		Events: []eventResponse{{
			ID: "1",
			Competitions: []competitionResponse{{
				Date: "2024-08-17T14:00Z",
				Competitors: []competitorResponse{
					{HomeAway: "home", Team: teamResponse{DisplayName: "A"}},
					{HomeAway: "away", Team: teamResponse{DisplayName: "B"}},
				},
			}},
		}},
	}

	fixtures := mapScoreboard(payload, "eng.1", time.UTC, nil)
	if len(fixtures) != 1 {
		t.Fatalf("expected 1 fixture, got %d", len(fixtures))
	}
	if fixtures[0].League != "Unknown League" {
		t.Fatalf("expected default league name, got %s", fixtures[0].League)
	}
}

func TestMapEventNormalizesStatusCase(t *testing.T) {
	event := eventResponse{
		ID:     "1",
		Status: statusResponse{Type: statusTypeResponse{Name: "status_final"}},
		Competitions: []competitionResponse{{
			Date: "2024-08-17T14:00Z",
			Competitors: []competitorResponse{
				{HomeAway: "HOME", Team: teamResponse{DisplayName: "A"}},
				{HomeAway: "AWAY", Team: teamResponse{DisplayName: "B"}},
			},
		}},
	}

	fixture, ok := mapEvent(event, "League", "eng.1", time.UTC, nil)
	if !ok {
		t.Fatal("expected event to map")
	}
	if !fixture.Status.IsFinal() {
		t.Fatalf("expected upper-cased final status, got %s", fixture.Status)
	}
}

func TestMapEventUnparseableDateYieldsZeroKickoff(t *testing.T) {
	event := eventResponse{
		ID: "1",
		Competitions: []competitionResponse{{
			Date: "garbage",
			Competitors: []competitorResponse{
				{HomeAway: "home", Team: teamResponse{DisplayName: "A"}},
				{HomeAway: "away", Team: teamResponse{DisplayName: "B"}},
			},
		}},
	}

	fixture, ok := mapEvent(event, "League", "eng.1", time.UTC, nil)
	if !ok {
		t.Fatal("expected event to map despite bad date")
	}
	if !fixture.Kickoff.IsZero() {
		t.Fatalf("expected zero kickoff, got %v", fixture.Kickoff)
	}
	if fixture.LocalTime != "Unknown" || fixture.UTCTime != "Unknown" {
		t.Fatalf("expected Unknown display times, got %q/%q", fixture.LocalTime, fixture.UTCTime)
	}
}

func TestFlexScoreParsing(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{`"3"`, 3},
		{`2`, 2},
		{`null`, 0},
		{`""`, 0},
		{`"abc"`, 0},
		{`-1`, 0},
	}

	for _, tc := range cases {
		var s flexScore
		if err := json.Unmarshal([]byte(tc.raw), &s); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		if int(s) != tc.want {
			t.Fatalf("expected %s to parse as %d, got %d", tc.raw, tc.want, int(s))
		}
	}
}
