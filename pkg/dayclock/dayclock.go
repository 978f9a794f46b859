// Package dayclock fixes the reference frame for everything date-related:
// all day truncation and weekday derivation goes through these functions,
// always in UTC. Mixing frames makes day equality and weekday counts drift.
package dayclock

import "time"

// DayBoundary returns t's calendar date at 00:00:00 UTC.
func DayBoundary(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// WeekdayIndex returns the day-of-week of t's UTC date, Sunday = 0.
func WeekdayIndex(t time.Time) int {
	return int(t.UTC().Weekday())
}
