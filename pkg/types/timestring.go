package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const timeLayout = "15:04"

// TimeString represents a wall-clock time of day in "HH:MM" form.
// It carries no date and no timezone: the value is exactly what the
// operator typed in, and comparisons are plain clock comparisons.
type TimeString string

// NewTimeString extracts the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString validates and wraps an "HH:MM" string.
// Only the canonical zero-padded form is accepted: time.Parse alone would
// let "9:30" through.
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("types: invalid time %q: %w", s, err)
	}
	if parsed.Format(timeLayout) != s {
		return "", fmt.Errorf("types: invalid time %q: must be zero-padded HH:MM", s)
	}
	return TimeString(s), nil
}

func (t TimeString) String() string {
	return string(t)
}

// Valid reports whether the value is canonical "HH:MM".
func (t TimeString) Valid() bool {
	parsed, err := time.Parse(timeLayout, string(t))
	return err == nil && parsed.Format(timeLayout) == string(t)
}

func (t TimeString) parse() (time.Time, error) {
	return time.Parse(timeLayout, string(t))
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Unparseable values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.parse()
	if err != nil {
		return false
	}
	b, err := other.parse()
	if err != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, err := t.parse()
	if err != nil {
		return false
	}
	b, err := other.parse()
	if err != nil {
		return false
	}
	return a.After(b)
}

// AddMinutes returns the clock value minutes later, wrapping past midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := t.parse()
	if err != nil {
		return "", fmt.Errorf("types: cannot add minutes to %q: %w", t, err)
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(timeLayout)), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive either as
// []byte/string ("10:00:00") or as time.Time depending on the driver.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

func (t *TimeString) scanString(s string) error {
	// Accept both "HH:MM" and "HH:MM:SS".
	for _, layout := range []string{timeLayout, "15:04:05"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t = NewTimeString(parsed)
			return nil
		}
	}
	return fmt.Errorf("types: cannot scan %q into TimeString", s)
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	return string(t), nil
}
