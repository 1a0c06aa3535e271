package db

import "time"

// startOfDay truncates t to midnight in its own location
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayInterval returns the half-open [start, end) interval covering the
// calendar day of t. Completion timestamps can carry a time-of-day
// component, so every day comparison goes through an interval like this,
// never through timestamp equality.
func dayInterval(t time.Time) (time.Time, time.Time) {
	start := startOfDay(t)
	return start, start.AddDate(0, 0, 1)
}
