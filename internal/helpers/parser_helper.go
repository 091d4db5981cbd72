package helpers

import (
	"strconv"
	"time"
)

func StringToInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// ParseDay accepts either a bare calendar day (2006-01-02) or a full
// RFC3339 timestamp; listings only care about which day it lands on.
func ParseDay(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
