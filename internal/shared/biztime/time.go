// Package biztime provides utilities for business date calculations.
// All storage and transport use UTC; expiry comparisons operate on calendar
// dates truncated to midnight UTC.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Today returns the current calendar date at midnight UTC.
func Today() time.Time {
	return DateOf(NowUTC())
}

// DateOf truncates a time to its calendar date at midnight UTC.
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after t.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// StartOfMonth returns the first day of t's month at midnight UTC.
func StartOfMonth(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthKey formats a date as the "YYYY-MM" bucket key used by statistics.
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}
