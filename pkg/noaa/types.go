package noaa

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

const (
	predTimeFormat  = "2006-01-02 15:04"
	tableTimeFormat = "2006/01/02 3:04 PM"
	weekdayFormat   = "Mon"
)

// Zone is the location all prediction times are expressed in.
var Zone = time.UTC

// Prediction holds a single tide event prediction.
type Prediction struct {
	// Wall clock time of tide prediction
	Time Time `json:"t"`
	// Short weekday name as printed by the source
	Weekday string `json:"-"`
	// Height in feet
	Height Height `json:"v"`
	// High or Low tide, "H" or "L" when encoded
	Type Tide `json:"type"`
}

// Verify the custom types can be unmarshaled
var _ json.Unmarshaler = &Time{}
var _ json.Unmarshaler = new(Height)
var _ json.Unmarshaler = new(Tide)

// Predictions is a time series of Prediction.
type Predictions []Prediction

// NOAAResult is the data type returned by the NOAA API.
type NOAAResult struct {
	Predictions Predictions `json:"predictions"`
	Error       *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// PredictionQuery is used to query tide data at a station for the days from
// Start to End inclusive; see GetPredictions and GetTable.
type PredictionQuery struct {
	Start   time.Time
	End     time.Time
	Station Station
}

type Station int

const (
	// MontereyBay is the station the ride report checks.
	MontereyBay Station = 9413616
	SantaCruz   Station = 9413745
)

type Time time.Time

func (t Time) Equal(u Time) bool {
	return time.Time(t).Equal(time.Time(u))
}

func (t *Time) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("prediction time %q not string: %w", buf, err)
	}
	parsed, err := time.ParseInLocation(predTimeFormat, s, Zone)
	if err != nil {
		return fmt.Errorf("prediction time %q not in fmt %q: %w", s, predTimeFormat, err)
	}
	*t = Time(parsed)
	return nil
}

type Height float64

func ParseHeight(s string) (Height, error) {
	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("water height %q not a float: %w", s, err)
	}
	return Height(parsed), nil
}

func (h *Height) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("water height %q not string: %w", buf, err)
	}
	parsed, err := ParseHeight(s)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// String prints the height with as few digits as needed, e.g. -0.74.
func (h Height) String() string {
	return strconv.FormatFloat(float64(h), 'f', -1, 64)
}

type Tide uint

const (
	HighTide Tide = iota
	LowTide
)

func (t Tide) Valid() bool {
	return t == HighTide || t == LowTide
}

func ParseTide(s string) (Tide, error) {
	switch s {
	case "H":
		return HighTide, nil
	case "L":
		return LowTide, nil
	default:
		return 0, fmt.Errorf("invalid tide type %q", s)
	}
}

func (t *Tide) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err != nil {
		return fmt.Errorf("tide %q not a string: %w", buf, err)
	}
	parsed, err := ParseTide(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Tide) String() string {
	switch t {
	case HighTide:
		return "H"
	case LowTide:
		return "L"
	default:
		return "invalid"
	}
}

// T casts away the NOAA time type.
func (p Prediction) T() time.Time {
	return time.Time(p.Time)
}

func (p Prediction) String() string {
	return fmt.Sprintf("{t: %s %s, v: %s, type: %s}",
		p.T().Format(tableTimeFormat),
		p.Weekday,
		p.Height,
		p.Type.String())
}
