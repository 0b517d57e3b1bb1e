package tracker

import "time"

// State is a tracked fixture's lifecycle phase, derived purely from elapsed
// time since kickoff. The engine keeps no transition history: presence in the
// store is the only durable state, so classification is repeatable and safe
// under overlapping cycles.
type State int

const (
	// StateNotDue: kickoff is still in the future; never touch upstream.
	StateNotDue State = iota
	// StateGrace: recently kicked off; too early to tell a postponement
	// from a delayed start.
	StateGrace
	// StatePostponementCheck: far enough past kickoff that a fixture still
	// reported "scheduled" (or missing entirely) is presumed postponed.
	StatePostponementCheck
	// StateResolve: past full time; upstream is asked for the final result.
	StateResolve
)

func (s State) String() string {
	switch s {
	case StateNotDue:
		return "not_due"
	case StateGrace:
		return "grace"
	case StatePostponementCheck:
		return "postponement_check"
	case StateResolve:
		return "resolve"
	default:
		return "unknown"
	}
}

// Thresholds bound the lifecycle windows. Grace is how long after kickoff a
// fixture is left alone; ResultDelay is when the final-result check begins.
type Thresholds struct {
	Grace       time.Duration
	ResultDelay time.Duration
}

// Classify maps elapsed time since kickoff onto a lifecycle state.
func Classify(kickoff, now time.Time, th Thresholds) State {
	delta := now.Sub(kickoff)
	switch {
	case delta < 0:
		return StateNotDue
	case delta < th.Grace:
		return StateGrace
	case delta < th.ResultDelay:
		return StatePostponementCheck
	default:
		return StateResolve
	}
}
