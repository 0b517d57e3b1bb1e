package timeutil

import "time"

// UnknownTime is the display sentinel for an unparseable kickoff.
const UnknownTime = "Unknown"

// ClockLayout renders an instant as a wall-clock display string.
const ClockLayout = "15:04"

// QueryDateLayout is the compact date format the scoreboard feed accepts.
const QueryDateLayout = "20060102"

// Strict layout first, then progressively lenient fallbacks. The feed
// normally emits RFC 3339 without seconds ("2006-01-02T15:04Z") but has been
// observed drifting across all of these.
var kickoffLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseKickoff converts a feed-supplied timestamp into a local display time
// and an absolute UTC instant. On total failure it returns the UnknownTime
// sentinel and a zero instant; callers must treat a zero instant as
// unschedulable.
func ParseKickoff(raw string, loc *time.Location) (string, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range kickoffLayouts {
		parsed, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		utc := parsed.UTC()
		return utc.In(loc).Format(ClockLayout), utc
	}
	return UnknownTime, time.Time{}
}

// QueryDate formats an instant as the YYYYMMDD date the feed is queried with.
func QueryDate(t time.Time) string {
	return t.UTC().Format(QueryDateLayout)
}
