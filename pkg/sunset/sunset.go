package sunset

import (
	"time"

	"github.com/keep94/sunrise"

	"github.com/spencer-p/beachride/pkg/timetricks"
)

// GetSunEvents returns a list of ordered sun events for numDays days starting
// on start's calendar day at place. Events alternate sunrise, sunset.
func GetSunEvents(start time.Time, numDays int, place Place) SunEvents {
	// Anchor at local noon so the sunrise package picks the right day.
	y, m, d := start.Date()
	noon := time.Date(y, m, d, 12, 0, 0, 0, place.Location)

	var s sunrise.Sunrise
	s.Around(place.Lat, place.Long, noon)

	ret := make(SunEvents, 0, numDays*2)
	for i := 0; i < numDays; i++ {
		ret = append(ret,
			SunEvent{s.Sunrise(), Sunrise},
			SunEvent{s.Sunset(), Sunset})
		s.AddDays(1)
	}
	return ret
}

// InDaylight reports whether the wall clock time t, read as a time at place,
// falls between a sunrise and the following sunset. Days not covered by
// events are never in daylight.
func (evs SunEvents) InDaylight(t time.Time, place Place) bool {
	y, m, d := t.Date()
	h, min, sec := t.Clock()
	local := time.Date(y, m, d, h, min, sec, 0, place.Location)

	for i := 0; i+1 < len(evs); i++ {
		rise, set := evs[i], evs[i+1]
		if rise.Event != Sunrise || set.Event != Sunset {
			continue
		}
		if !timetricks.SameDay(rise.Time.In(place.Location), local) {
			continue
		}
		return !local.Before(rise.Time) && !local.After(set.Time)
	}
	return false
}
