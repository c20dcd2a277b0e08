// Package ride picks out low tides that are good for riding on the beach and
// words them into a report.
package ride

import (
	"fmt"
	"time"

	"github.com/spencer-p/beachride/pkg/noaa"
	"github.com/spencer-p/beachride/pkg/timetricks"
)

const goodTimeFmt = "2006/01/02 15:04 Mon"

// LowTides keeps the low tides at or below thresh, in order.
func LowTides(preds noaa.Predictions, thresh noaa.Height) noaa.Predictions {
	result := noaa.Predictions{}
	for _, tide := range preds {
		// High tide is not interesting
		if tide.Type != noaa.LowTide {
			continue
		}

		// If the low tide is still pretty high, not interested
		if tide.Height > thresh {
			continue
		}

		result = append(result, tide)
	}
	return result
}

// Window is the part of each day worth riding in. Both ends are inclusive.
type Window struct {
	Early, Late timetricks.Clock
}

// Contains reports whether t falls within the window on t's own day.
func (w Window) Contains(t time.Time) bool {
	early := w.Early.On(t)
	late := w.Late.On(t)
	return !t.Before(early) && !t.After(late)
}

// GoodTime is a low tide that falls in the window.
type GoodTime struct {
	Time   time.Time
	Height noaa.Height
}

func (gt GoodTime) String() string {
	return fmt.Sprintf("Time to ride! %s with low tide of %s",
		gt.Time.Format(goodTimeFmt),
		gt.Height)
}

// Filter is an extra condition a good time must meet.
type Filter func(time.Time) bool

// GoodTimes returns the tides inside the window that pass every filter, in
// the order given.
func (w Window) GoodTimes(tides noaa.Predictions, filters ...Filter) []GoodTime {
	result := []GoodTime{}
tides:
	for _, tide := range tides {
		t := tide.T()
		if !w.Contains(t) {
			continue
		}
		for _, f := range filters {
			if !f(t) {
				continue tides
			}
		}
		result = append(result, GoodTime{
			Time:   t,
			Height: tide.Height,
		})
	}
	return result
}
