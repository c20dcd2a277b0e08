package timetricks

import (
	"fmt"
	"time"
)

// ClockFormat is the 12 hour layout used by the tide table and the command
// line. The hour may or may not be zero padded.
const ClockFormat = "3:04 PM"

// Clock is a wall clock time of day with minute precision.
type Clock struct {
	Hour, Minute int
}

func ParseClock(s string) (Clock, error) {
	t, err := time.Parse(ClockFormat, s)
	if err != nil {
		return Clock{}, fmt.Errorf("clock time %q not in fmt %q: %w", s, ClockFormat, err)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// On places the clock time on t's calendar day.
func (c Clock) On(t time.Time) time.Time {
	return SetClock(t, time.Duration(c.Hour), time.Duration(c.Minute))
}

func (c Clock) String() string {
	return c.On(time.Time{}).Format(ClockFormat)
}

// Set implements pflag.Value so clocks can be parsed straight from flags.
func (c *Clock) Set(s string) error {
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c *Clock) Type() string {
	return "clock"
}

// UnmarshalText allows clocks in config files and the environment.
func (c *Clock) UnmarshalText(text []byte) error {
	return c.Set(string(text))
}
