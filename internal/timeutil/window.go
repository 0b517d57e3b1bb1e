package timeutil

import "time"

// Window is the rolling 24-hour publishing period anchored at a fixed local
// hour. With the default 22:00 anchor, fixtures kicking off between tonight
// 22:00 and tomorrow 21:59 local are "tomorrow's matches, published tonight".
type Window struct {
	AnchorHour int
	Loc        *time.Location
}

// NewWindow builds a window, clamping the anchor to a valid hour and
// defaulting the location to UTC.
func NewWindow(anchorHour int, loc *time.Location) Window {
	if anchorHour < 0 || anchorHour > 23 {
		anchorHour = 22
	}
	if loc == nil {
		loc = time.UTC
	}
	return Window{AnchorHour: anchorHour, Loc: loc}
}

// Bounds returns the inclusive [start, end] of the window containing now.
// The start is today's anchor hour if now has passed it, else yesterday's.
func (w Window) Bounds(now time.Time) (time.Time, time.Time) {
	local := now.In(w.Loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), w.AnchorHour, 0, 0, 0, w.Loc)
	if local.Hour() < w.AnchorHour {
		start = start.AddDate(0, 0, -1)
	}
	end := start.Add(24*time.Hour - time.Minute)
	return start, end
}

// Contains reports whether the instant falls inside the window current at
// now. A zero instant is never inside the window.
func (w Window) Contains(now, instant time.Time) bool {
	if instant.IsZero() {
		return false
	}
	start, end := w.Bounds(now)
	local := instant.In(w.Loc)
	return !local.Before(start) && !local.After(end)
}
