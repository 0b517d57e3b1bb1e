package domain

import (
	"testing"
	"time"
)

func TestStatusIsScheduled(t *testing.T) {
	if !StatusScheduled.IsScheduled() {
		t.Fatal("expected STATUS_SCHEDULED to be scheduled")
	}
	if !FixtureStatus("SCHEDULED").IsScheduled() {
		t.Fatal("expected bare SCHEDULED to be scheduled")
	}
	if StatusFinal.IsScheduled() {
		t.Fatal("expected STATUS_FINAL to not be scheduled")
	}
}

func TestFixtureFinished(t *testing.T) {
	cases := []struct {
		name string
		f    Fixture
		want bool
	}{
		{"final status", Fixture{Status: StatusFinal}, true},
		{"bare final", Fixture{Status: "FINAL"}, true},
		{"completed flag", Fixture{Status: "STATUS_FULL_TIME", Completed: true}, true},
		{"scheduled", Fixture{Status: StatusScheduled}, false},
		{"in progress", Fixture{Status: "STATUS_IN_PROGRESS"}, false},
	}

	for _, tc := range cases {
		if got := tc.f.Finished(); got != tc.want {
			t.Fatalf("%s: expected Finished()=%v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestTrackedProjection(t *testing.T) {
	kickoff := time.Date(2024, 8, 17, 14, 0, 0, 0, time.UTC)
	f := Fixture{
		ID:         "400001",
		League:     "English Premier League",
		LeagueCode: "eng.1",
		Home:       "Arsenal",
		Away:       "Wolves",
		Kickoff:    kickoff,
		Status:     StatusScheduled,
	}

	tracked := f.Tracked()
	if tracked.MatchID != "400001" || tracked.LeagueCode != "eng.1" {
		t.Fatalf("unexpected projection %+v", tracked)
	}
	if !tracked.Kickoff.Equal(kickoff) {
		t.Fatalf("expected kickoff preserved, got %v", tracked.Kickoff)
	}
	if tracked.Incomplete() {
		t.Fatal("expected complete record")
	}
}

func TestTrackedIncomplete(t *testing.T) {
	kickoff := time.Date(2024, 8, 17, 14, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		rec  TrackedFixture
		want bool
	}{
		{"complete", TrackedFixture{MatchID: "1", LeagueCode: "eng.1", Kickoff: kickoff}, false},
		{"missing id", TrackedFixture{LeagueCode: "eng.1", Kickoff: kickoff}, true},
		{"missing league", TrackedFixture{MatchID: "1", Kickoff: kickoff}, true},
		{"missing kickoff", TrackedFixture{MatchID: "1", LeagueCode: "eng.1"}, true},
	}

	for _, tc := range cases {
		if got := tc.rec.Incomplete(); got != tc.want {
			t.Fatalf("%s: expected Incomplete()=%v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestDedupeKeepsLastOccurrence(t *testing.T) {
	batch := []Fixture{
		{ID: "400001", Score: Score{Home: 0, Away: 0}},
		{ID: "400002"},
		{ID: "400001", Score: Score{Home: 2, Away: 1}},
	}

	out := Dedupe(batch)
	if len(out) != 2 {
		t.Fatalf("expected 2 fixtures, got %d", len(out))
	}
	if out[0].ID != "400001" || out[1].ID != "400002" {
		t.Fatalf("expected order preserved, got %+v", out)
	}
	if out[0].Score.Home != 2 || out[0].Score.Away != 1 {
		t.Fatalf("expected last duplicate to win, got %+v", out[0].Score)
	}
}

func TestDedupeSmallBatches(t *testing.T) {
	if got := Dedupe(nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
	single := []Fixture{{ID: "1"}}
	if got := Dedupe(single); len(got) != 1 {
		t.Fatalf("expected single fixture, got %+v", got)
	}
}
