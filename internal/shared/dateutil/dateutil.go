package dateutil

import (
	"time"
)

const Layout = "2006-01-02"

// Parse reads a calendar date as midnight UTC.
func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.UTC)
}

func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Truncate drops the clock part, keeping the calendar day in UTC.
func Truncate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween is end.dayNumber - start.dayNumber; a single-day range is 0.
func DaysBetween(start, end time.Time) int {
	return int(Truncate(end).Sub(Truncate(start)).Hours() / 24)
}
