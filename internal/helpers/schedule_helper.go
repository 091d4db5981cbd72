package helpers

import (
	"time"
)

// DayWindow returns the [start, end) bounds of t's calendar day, in t's
// location. End is the first instant of the following day and is excluded.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

func IsPastDate(date, now time.Time) bool {
	return date.Before(now)
}

// IsOwner is the single ownership rule: a resource may only be modified by
// the user it belongs to.
func IsOwner(ownerID, userID uint) bool {
	return ownerID == userID
}
