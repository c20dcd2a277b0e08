package timetricks

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	table := []struct {
		name          string
		today         time.Time
		mode          MonthMode
		forceDecember bool
		want          Range
	}{{
		name:  "current",
		today: time.Date(2021, time.January, 27, 15, 4, 0, 0, time.UTC),
		mode:  Current,
		want:  Range{date(2021, time.January, 27), date(2021, time.February, 27)},
	}, {
		name:  "current across february",
		today: date(2021, time.February, 10),
		mode:  Current,
		want:  Range{date(2021, time.February, 10), date(2021, time.March, 13)},
	}, {
		name:  "next from mid month",
		today: date(2021, time.April, 18),
		mode:  Next,
		want:  Range{date(2021, time.May, 1), date(2021, time.June, 1)},
	}, {
		name:  "next from january 31",
		today: date(2021, time.January, 31),
		mode:  Next,
		want:  Range{date(2021, time.February, 1), date(2021, time.March, 4)},
	}, {
		name:  "next from december",
		today: date(2021, time.December, 24),
		mode:  Next,
		want:  Range{date(2022, time.January, 1), date(2022, time.February, 1)},
	}, {
		name:          "forced december",
		today:         date(2021, time.June, 3),
		mode:          Current,
		forceDecember: true,
		want:          Range{date(2021, time.December, 1), date(2022, time.January, 1)},
	}, {
		name:          "forced december next",
		today:         date(2021, time.June, 3),
		mode:          Next,
		forceDecember: true,
		want:          Range{date(2022, time.January, 1), date(2022, time.February, 1)},
	}}

	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(tc.today, tc.mode, tc.forceDecember)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("wrong range (-want,+got):\n%s", diff)
			}
		})
	}
}

func TestResolveEveryDecemberDay(t *testing.T) {
	for d := 1; d <= 31; d++ {
		got := Resolve(date(2023, time.December, d), Next, false)
		if want := date(2024, time.January, 1); !got.Start.Equal(want) {
			t.Errorf("december %d: got start %s, want %s", d, got.Start, want)
		}
	}
}

func TestResolveNonDecemberMonths(t *testing.T) {
	for m := time.January; m < time.December; m++ {
		for _, d := range []int{1, 15, 28} {
			got := Resolve(date(2024, m, d), Next, false)
			if want := date(2024, m+1, 1); !got.Start.Equal(want) {
				t.Errorf("%s %d: got start %s, want %s", m, d, got.Start, want)
			}
		}
	}
}

func TestResolveEndIsAlwaysRangeDaysLater(t *testing.T) {
	start := date(2020, time.January, 1)
	for i := 0; i < 366*2; i++ {
		today := start.AddDate(0, 0, i)
		for _, mode := range []MonthMode{Current, Next} {
			for _, force := range []bool{false, true} {
				r := Resolve(today, mode, force)
				if want := r.Start.AddDate(0, 0, RangeDays); !r.End.Equal(want) {
					t.Fatalf("%s %s force=%v: end %s, want %s", today, mode, force, r.End, want)
				}
				if days := r.End.Sub(r.Start).Hours() / 24; days != RangeDays {
					t.Fatalf("%s %s force=%v: range spans %v days", today, mode, force, days)
				}
			}
		}
	}
}

func TestParseMonthMode(t *testing.T) {
	for in, want := range map[string]MonthMode{"": Current, "current": Current, "next": Next} {
		got, err := ParseMonthMode(in)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("%q: got %s, want %s", in, got, want)
		}
	}
	if _, err := ParseMonthMode("previous"); err == nil {
		t.Errorf("expected error for unknown mode")
	}
}

func ExampleRange_Header() {
	r := Resolve(date(2021, time.January, 1), Current, false)
	fmt.Println(r.Header())
	// Output:
	// Note: Checking dates from 20210101 to 20210201
}
