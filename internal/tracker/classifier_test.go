package tracker

import (
	"testing"
	"time"
)

var testThresholds = Thresholds{
	Grace:       15 * time.Minute,
	ResultDelay: 110 * time.Minute,
}

func TestClassify(t *testing.T) {
	kickoff := time.Date(2024, 8, 17, 14, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		elapsed time.Duration
		want    State
	}{
		{"before kickoff", -time.Hour, StateNotDue},
		{"one second before", -time.Second, StateNotDue},
		{"at kickoff", 0, StateGrace},
		{"mid grace", 10 * time.Minute, StateGrace},
		{"grace boundary", 15 * time.Minute, StatePostponementCheck},
		{"mid match", time.Hour, StatePostponementCheck},
		{"just before full time check", 110*time.Minute - time.Second, StatePostponementCheck},
		{"full time boundary", 110 * time.Minute, StateResolve},
		{"long after", 200 * time.Minute, StateResolve},
	}

	for _, tc := range cases {
		got := Classify(kickoff, kickoff.Add(tc.elapsed), testThresholds)
		if got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestStateString(t *testing.T) {
	names := map[State]string{
		StateNotDue:            "not_due",
		StateGrace:             "grace",
		StatePostponementCheck: "postponement_check",
		StateResolve:           "resolve",
		State(42):              "unknown",
	}
	for state, want := range names {
		if got := state.String(); got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	}
}
