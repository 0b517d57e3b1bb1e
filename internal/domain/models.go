package domain

import "time"

// FixtureStatus is the upstream status token, case-normalized to upper case.
// The full token vocabulary belongs to the feed; only the tokens below carry
// meaning for lifecycle decisions.
type FixtureStatus string

const (
	StatusScheduled FixtureStatus = "STATUS_SCHEDULED"
	StatusFinal     FixtureStatus = "STATUS_FINAL"
	StatusPostponed FixtureStatus = "STATUS_POSTPONED"
	StatusCanceled  FixtureStatus = "STATUS_CANCELED"
)

// IsScheduled reports whether the token still marks a not-yet-started fixture.
func (s FixtureStatus) IsScheduled() bool {
	return s == StatusScheduled || s == "SCHEDULED"
}

// IsFinal reports whether the token marks a completed fixture.
func (s FixtureStatus) IsFinal() bool {
	return s == StatusFinal || s == "FINAL"
}

// Score captures home and away goals.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Fixture is the canonical match shape produced by a provider fetch.
// Kickoff is the absolute UTC instant; its zero value means the upstream
// start time could not be parsed and the fixture cannot be window-filtered
// or tracked.
type Fixture struct {
	ID         string        `json:"id"`
	League     string        `json:"league"`
	LeagueCode string        `json:"leagueCode"`
	Home       string        `json:"home"`
	Away       string        `json:"away"`
	Kickoff    time.Time     `json:"kickoff"`
	LocalTime  string        `json:"localTime"`
	UTCTime    string        `json:"utcTime"`
	Status     FixtureStatus `json:"status"`
	Completed  bool          `json:"completed"`
	Score      Score         `json:"score"`
}

// Finished reports whether upstream considers the fixture over, either via
// an explicit final status token or the generic completed flag.
func (f Fixture) Finished() bool {
	return f.Status.IsFinal() || f.Completed
}

// Tracked projects the fixture onto the durable tracking record.
func (f Fixture) Tracked() TrackedFixture {
	return TrackedFixture{
		MatchID:    f.ID,
		LeagueCode: f.LeagueCode,
		Home:       f.Home,
		Away:       f.Away,
		Kickoff:    f.Kickoff,
	}
}

// TrackedFixture is the minimal durable record kept until a fixture's
// outcome is resolved: enough to re-derive the query date and re-match the
// fixture upstream by ID.
type TrackedFixture struct {
	MatchID    string    `json:"match_id" db:"match_id"`
	LeagueCode string    `json:"league_code" db:"league_code"`
	Home       string    `json:"home" db:"home"`
	Away       string    `json:"away" db:"away"`
	Kickoff    time.Time `json:"utc_datetime" db:"kickoff_at"`
}

// Incomplete reports whether the record is missing a field required for
// resolution. Incomplete records are skipped with a warning and left in the
// store for manual inspection.
func (t TrackedFixture) Incomplete() bool {
	return t.MatchID == "" || t.LeagueCode == "" || t.Kickoff.IsZero()
}

// Dedupe collapses a fetch batch to at most one fixture per ID, keeping the
// last occurrence. Upstream occasionally repeats an event within a single
// response; duplicates are not expected to conflict.
func Dedupe(fixtures []Fixture) []Fixture {
	if len(fixtures) < 2 {
		return fixtures
	}

	index := make(map[string]int, len(fixtures))
	out := make([]Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		if i, seen := index[f.ID]; seen {
			out[i] = f
			continue
		}
		index[f.ID] = len(out)
		out = append(out, f)
	}
	return out
}
