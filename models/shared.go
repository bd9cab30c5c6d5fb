package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the canonical calendar date format used in records and URLs.
const DateLayout = "2006-01-02"

// ParseDate parses a canonical "YYYY-MM-DD" date. The result is midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, InvalidDate("%q is not a YYYY-MM-DD date", s)
	}
	return t, nil
}

// FormatDate renders t's calendar date in the canonical layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// TimeOfDay is a local time of day in minutes from midnight (e.g. 540 for 09:00).
type TimeOfDay int

const minutesPerDay = 24 * 60

// NewTimeOfDay builds a TimeOfDay from hour and minute.
func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay parses "HH:MM". "24:00" is accepted as end of day.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var h, m int
	if n, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil || n != 2 || len(s) != 5 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("time of day %q out of range", s)
	}
	return NewTimeOfDay(h, m), nil
}

// Valid reports whether t lies within [00:00, 24:00].
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t <= minutesPerDay
}

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// On returns the instant t on the given date in loc.
func (t TimeOfDay) On(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc).Add(time.Duration(t) * time.Minute)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("time of day must be a \"HH:MM\" string: %w", err)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
