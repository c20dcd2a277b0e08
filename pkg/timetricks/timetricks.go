package timetricks

import (
	"time"
)

const (
	dayFormat = "20060102"

	// RangeDays is the number of days covered by a Range. The tide table
	// does not serve more than this at once.
	RangeDays = 31
)

func SameDay(t time.Time, t2 time.Time) bool {
	return t.Format(dayFormat) == t2.Format(dayFormat)
}

// TrimClock returns midnight of t's calendar day in t's location.
func TrimClock(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func SetClock(t time.Time, hour, minute time.Duration) time.Time {
	return TrimClock(t).Add(hour*time.Hour + minute*time.Minute)
}

// FirstOfNextMonth returns the first day of the month after t.
func FirstOfNextMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	// time.Date normalizes month 13 into January of the next year.
	return time.Date(y, m+1, 1, 0, 0, 0, 0, t.Location())
}

// UniqueDay returns a string representation of t that is unique by the day.
// For instance, two seperate times on the same calendar day return identical
// strings.
func UniqueDay(t time.Time) string {
	return t.Format(dayFormat)
}
