package domain

import "time"

// Interval is the derived start/end pair for a schedule. It is computed
// fresh from tanggal_instalasi, pukul_instalasi and the resolved duration on
// every read and never persisted.
type Interval struct {
	Start    time.Time
	End      time.Time
	Schedule *Schedule
}

// Valid reports whether the interval has a representable start timestamp.
// Schedules with malformed date or time fields produce an invalid interval
// but must not abort aggregation of the remaining records.
func (i Interval) Valid() bool {
	return !i.Start.IsZero()
}

// CombineDateTime composes a date-only value and an "HH:MM" wall-clock
// string into a single local timestamp. Both fields are taken as already
// expressing the intended wall-clock time: no timezone conversion is
// applied. A malformed clock string yields the zero time.
func CombineDateTime(date time.Time, clock string) time.Time {
	if date.IsZero() {
		return time.Time{}
	}

	t, err := time.Parse(TimeFormat, clock)
	if err != nil {
		return time.Time{}
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		time.Local,
	)
}

// NewInterval derives the interval for a schedule. End is always
// Start + ResolveDuration(tier, mode); an unparseable date/time leaves both
// at the zero value.
func NewInterval(s *Schedule) Interval {
	start := CombineDateTime(s.InstallDate, s.InstallTime.String())
	if start.IsZero() {
		return Interval{Schedule: s}
	}

	return Interval{
		Start:    start,
		End:      start.Add(s.Duration()),
		Schedule: s,
	}
}
