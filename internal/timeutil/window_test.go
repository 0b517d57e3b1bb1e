package timeutil

import (
	"testing"
	"time"
)

func mustLoc(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("failed to load location %s: %v", name, err)
	}
	return loc
}

func TestWindowBoundsAfterAnchor(t *testing.T) {
	loc := mustLoc(t, "Asia/Kolkata")
	w := NewWindow(22, loc)

	now := time.Date(2024, 8, 17, 23, 30, 0, 0, loc)
	start, end := w.Bounds(now)

	wantStart := time.Date(2024, 8, 17, 22, 0, 0, 0, loc)
	if !start.Equal(wantStart) {
		t.Fatalf("expected start %v, got %v", wantStart, start)
	}
	wantEnd := time.Date(2024, 8, 18, 21, 59, 0, 0, loc)
	if !end.Equal(wantEnd) {
		t.Fatalf("expected end %v, got %v", wantEnd, end)
	}
}

func TestWindowBoundsBeforeAnchor(t *testing.T) {
	loc := mustLoc(t, "Asia/Kolkata")
	w := NewWindow(22, loc)

	now := time.Date(2024, 8, 17, 10, 0, 0, 0, loc)
	start, _ := w.Bounds(now)

	wantStart := time.Date(2024, 8, 16, 22, 0, 0, 0, loc)
	if !start.Equal(wantStart) {
		t.Fatalf("expected start %v, got %v", wantStart, start)
	}
}

func TestWindowContainsAnchorBoundary(t *testing.T) {
	loc := mustLoc(t, "Asia/Kolkata")
	w := NewWindow(22, loc)
	now := time.Date(2024, 8, 17, 23, 0, 0, 0, loc)

	atAnchor := time.Date(2024, 8, 17, 22, 0, 0, 0, loc)
	if !w.Contains(now, atAnchor) {
		t.Fatal("expected instant exactly at anchor to be inside the window")
	}

	minuteBefore := atAnchor.Add(-time.Minute)
	if w.Contains(now, minuteBefore) {
		t.Fatal("expected instant one minute before anchor to be outside the window")
	}
}

func TestWindowContainsEndBoundary(t *testing.T) {
	loc := mustLoc(t, "Asia/Kolkata")
	w := NewWindow(22, loc)
	now := time.Date(2024, 8, 17, 23, 0, 0, 0, loc)

	end := time.Date(2024, 8, 18, 21, 59, 0, 0, loc)
	if !w.Contains(now, end) {
		t.Fatal("expected window end to be inclusive")
	}
	if w.Contains(now, end.Add(time.Minute)) {
		t.Fatal("expected instant past window end to be outside")
	}
}

func TestWindowContainsUTCInstant(t *testing.T) {
	loc := mustLoc(t, "Asia/Kolkata")
	w := NewWindow(22, loc)
	now := time.Date(2024, 8, 17, 23, 0, 0, 0, loc)

	// 2024-08-18 14:00 UTC is 19:30 IST on the 18th, inside the window
	// that opened at 22:00 IST on the 17th.
	kickoff := time.Date(2024, 8, 18, 14, 0, 0, 0, time.UTC)
	if !w.Contains(now, kickoff) {
		t.Fatal("expected UTC kickoff inside window after local conversion")
	}
}

func TestWindowContainsZeroInstant(t *testing.T) {
	w := NewWindow(22, time.UTC)
	if w.Contains(time.Now(), time.Time{}) {
		t.Fatal("expected zero instant to be outside any window")
	}
}

func TestNewWindowClampsInvalidAnchor(t *testing.T) {
	w := NewWindow(-3, nil)
	if w.AnchorHour != 22 {
		t.Fatalf("expected anchor to clamp to 22, got %d", w.AnchorHour)
	}
	if w.Loc != time.UTC {
		t.Fatal("expected location to default to UTC")
	}
}
