package helpers

import (
	"testing"
	"time"
)

func TestDayWindow(t *testing.T) {
	at := time.Date(2025, time.March, 14, 15, 9, 26, 0, time.UTC)

	start, end := DayWindow(at)

	wantStart := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !start.Equal(wantStart) {
		t.Fatalf("expected start %v, got %v", wantStart, start)
	}
	if !end.Equal(wantEnd) {
		t.Fatalf("expected end %v, got %v", wantEnd, end)
	}
}

func TestDayWindowIsHalfOpen(t *testing.T) {
	at := time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC)
	start, end := DayWindow(at)

	// Midnight belongs to the day, the next midnight does not.
	lastInstant := end.Add(-time.Nanosecond)
	if lastInstant.Before(start) || !lastInstant.Before(end) {
		t.Fatalf("expected %v inside [%v, %v)", lastInstant, start, end)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Fatalf("expected a 24h window, got %v", end.Sub(start))
	}
}

func TestIsPastDate(t *testing.T) {
	now := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)

	if !IsPastDate(now.Add(-time.Minute), now) {
		t.Fatal("expected a date one minute ago to be past")
	}
	if IsPastDate(now.Add(time.Minute), now) {
		t.Fatal("expected a date one minute ahead not to be past")
	}
	// Strictly before: the exact instant is not past.
	if IsPastDate(now, now) {
		t.Fatal("expected the current instant not to be past")
	}
}

func TestIsOwner(t *testing.T) {
	if !IsOwner(7, 7) {
		t.Fatal("expected owner to match")
	}
	if IsOwner(7, 8) {
		t.Fatal("expected non-owner not to match")
	}
}
