package timetricks

import (
	"fmt"
	"time"
)

// MonthMode selects which stretch of days a Range covers.
type MonthMode int

const (
	// Current covers the RangeDays days starting today.
	Current MonthMode = iota
	// Next covers the RangeDays days starting on the first of next month.
	Next
)

func ParseMonthMode(s string) (MonthMode, error) {
	switch s {
	case "", "current":
		return Current, nil
	case "next":
		return Next, nil
	default:
		return Current, fmt.Errorf("month mode %q is not one of current, next", s)
	}
}

func (m MonthMode) String() string {
	switch m {
	case Current:
		return "current"
	case Next:
		return "next"
	default:
		return "invalid"
	}
}

// Range is a span of calendar days to fetch tides for. End is always exactly
// RangeDays days after Start.
type Range struct {
	Start, End time.Time
}

// Resolve computes the Range to check given today's date. If forceDecember is
// set the start is moved to December 1 of today's year before the mode is
// applied, which exercises the year rollover.
func Resolve(today time.Time, mode MonthMode, forceDecember bool) Range {
	start := TrimClock(today)

	if forceDecember {
		start = time.Date(start.Year(), time.December, 1, 0, 0, 0, 0, start.Location())
	}

	if mode == Next {
		start = FirstOfNextMonth(start)
	}

	return Range{
		Start: start,
		End:   start.AddDate(0, 0, RangeDays),
	}
}

// Header is the first line of every report.
func (r Range) Header() string {
	return fmt.Sprintf("Note: Checking dates from %s to %s",
		UniqueDay(r.Start),
		UniqueDay(r.End))
}
