package util

import (
	"fmt"
	"time"
)

const (
	// ClockLayout is the fixed-width wall-clock representation used on
	// the wire and in display payloads.
	ClockLayout = "15:04"
	// DateLayout is the calendar-date representation used on the wire.
	DateLayout = "2006-01-02"
)

// FormatClock renders a time-of-day as zero-padded "HH:MM".
func FormatClock(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// ParseClock combines the reference date with an "HH:MM" value.
// Seconds and below are dropped.
func ParseClock(s string, ref time.Time) (time.Time, error) {
	parsed, err := time.Parse(ClockLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, ref.Location()), nil
}

// CombineDateTime resolves a calendar date plus a start time into a
// single instant in the given location. A nil location means local.
func CombineDateTime(date, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return ParseClock(clock, day)
}

// displayLayouts maps the date-format setting values persisted by the
// app to Go reference layouts.
var displayLayouts = map[string]string{
	"dd/MM/yyyy": "02/01/2006",
	"MM/dd/yyyy": "01/02/2006",
	"yyyy-MM-dd": "2006-01-02",
}

// FormatDisplayDate renders a wire date according to the user's
// date-format setting. Unknown formats and unparseable dates fall back
// to the raw input.
func FormatDisplayDate(date, format string) string {
	layout, ok := displayLayouts[format]
	if !ok {
		return date
	}
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return parsed.Format(layout)
}
