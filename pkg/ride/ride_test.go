package ride

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/spencer-p/beachride/pkg/noaa"
	"github.com/spencer-p/beachride/pkg/timetricks"
)

func mustClock(t *testing.T, s string) timetricks.Clock {
	t.Helper()
	c, err := timetricks.ParseClock(s)
	if err != nil {
		t.Fatalf("bad clock %q: %v", s, err)
	}
	return c
}

func tide(day, hour, minute int, height noaa.Height, kind noaa.Tide) noaa.Prediction {
	return noaa.Prediction{
		Time:   noaa.Time(time.Date(2021, time.January, day, hour, minute, 0, 0, noaa.Zone)),
		Height: height,
		Type:   kind,
	}
}

func lines(gts []GoodTime) []string {
	out := []string{}
	for _, gt := range gts {
		out = append(out, gt.String())
	}
	return out
}

func TestLowTides(t *testing.T) {
	preds := noaa.Predictions{
		tide(1, 4, 54, -0.2, noaa.HighTide), // high tides never count
		tide(1, 11, 0, 0, noaa.LowTide),     // exactly at the threshold
		tide(1, 17, 0, 0.01, noaa.LowTide),  // just above
		tide(2, 5, 0, -1.3, noaa.LowTide),
		tide(2, 12, 0, 4, noaa.HighTide),
	}

	got := LowTides(preds, 0)
	want := noaa.Predictions{preds[1], preds[3]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong low tides (-want,+got):\n%s", diff)
	}
}

func TestLowTidesThreshold(t *testing.T) {
	preds := noaa.Predictions{
		tide(1, 4, 54, 1.5, noaa.LowTide),
		tide(1, 18, 30, 2.5, noaa.LowTide),
	}
	if got := LowTides(preds, 2); len(got) != 1 || got[0].Height != 1.5 {
		t.Errorf("got %v", got)
	}
	if got := LowTides(preds, -1); len(got) != 0 {
		t.Errorf("got %v, want nothing", got)
	}
}

func TestWindowContainsBoundaries(t *testing.T) {
	w := Window{Early: mustClock(t, "10:00 AM"), Late: mustClock(t, "4:00 PM")}
	day := time.Date(2021, time.January, 6, 0, 0, 0, 0, noaa.Zone)

	table := []struct {
		hour, min int
		want      bool
	}{
		{9, 59, false},
		{10, 0, true},
		{12, 0, true},
		{16, 0, true},
		{16, 1, false},
		{0, 0, false},
	}
	for _, tc := range table {
		at := timetricks.SetClock(day, time.Duration(tc.hour), time.Duration(tc.min))
		if got := w.Contains(at); got != tc.want {
			t.Errorf("%02d:%02d: got %v, want %v", tc.hour, tc.min, got, tc.want)
		}
	}
}

func TestWindowInverted(t *testing.T) {
	w := Window{Early: mustClock(t, "4:00 PM"), Late: mustClock(t, "10:00 AM")}
	if got := w.GoodTimes(noaa.FixturePredictions()); len(got) != 0 {
		t.Errorf("inverted window matched %v", lines(got))
	}
}

func TestGoodTimesFixture(t *testing.T) {
	table := []struct {
		name        string
		early, late string
		want        []string
	}{{
		name:  "default window",
		early: "10:00 AM",
		late:  "4:00 PM",
		want: []string{
			"Time to ride! 2021/01/06 10:56 Wed with low tide of 1.54",
		},
	}, {
		name:  "whole day",
		early: "4:00 AM",
		late:  "11:00 PM",
		want: []string{
			"Time to ride! 2021/01/01 04:54 Fri with low tide of 2.74",
			"Time to ride! 2021/01/01 18:30 Fri with low tide of -0.74",
			"Time to ride! 2021/01/02 05:46 Sat with low tide of 2.72",
			"Time to ride! 2021/01/02 19:09 Sat with low tide of -0.56",
			"Time to ride! 2021/01/03 06:49 Sun with low tide of 2.65",
			"Time to ride! 2021/01/03 19:50 Sun with low tide of -0.27",
			"Time to ride! 2021/01/04 08:05 Mon with low tide of 2.47",
			"Time to ride! 2021/01/04 20:33 Mon with low tide of 0.14",
			"Time to ride! 2021/01/05 09:31 Tue with low tide of 2.11",
			"Time to ride! 2021/01/05 21:18 Tue with low tide of 0.62",
			"Time to ride! 2021/01/06 10:56 Wed with low tide of 1.54",
			"Time to ride! 2021/01/06 22:06 Wed with low tide of 1.12",
		},
	}, {
		name:  "evenings only",
		early: "6:30 PM",
		late:  "7:09 PM",
		want: []string{
			"Time to ride! 2021/01/01 18:30 Fri with low tide of -0.74",
			"Time to ride! 2021/01/02 19:09 Sat with low tide of -0.56",
		},
	}, {
		name:  "nothing",
		early: "11:00 PM",
		late:  "11:59 PM",
		want:  []string{},
	}}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			w := Window{Early: mustClock(t, tc.early), Late: mustClock(t, tc.late)}
			got := lines(w.GoodTimes(noaa.FixturePredictions()))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("wrong good times (-want,+got):\n%s", diff)
			}
		})
	}
}

func TestGoodTimesFilters(t *testing.T) {
	w := Window{Early: mustClock(t, "4:00 AM"), Late: mustClock(t, "11:00 PM")}
	evenings := func(t time.Time) bool { return t.Hour() >= 12 }
	negative := func(t time.Time) bool { return t.Day() < 3 }

	got := lines(w.GoodTimes(noaa.FixturePredictions(), evenings, negative))
	want := []string{
		"Time to ride! 2021/01/01 18:30 Fri with low tide of -0.74",
		"Time to ride! 2021/01/02 19:09 Sat with low tide of -0.56",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("wrong good times (-want,+got):\n%s", diff)
	}
}

func TestGoodTimeRoundTrip(t *testing.T) {
	w := Window{Early: mustClock(t, "12:00 AM"), Late: mustClock(t, "11:59 PM")}
	for _, gt := range w.GoodTimes(noaa.FixturePredictions()) {
		formatted := gt.Time.Format(goodTimeFmt)
		parsed, err := time.ParseInLocation(goodTimeFmt, formatted, noaa.Zone)
		if err != nil {
			t.Fatalf("failed to parse %q: %v", formatted, err)
		}
		if !parsed.Equal(gt.Time.Truncate(time.Minute)) {
			t.Errorf("round trip of %s gave %s", gt.Time, parsed)
		}
	}
}
