package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestCombineDateTime(t *testing.T) {
	got := CombineDateTime(date(2025, time.March, 10), "14:30")
	want := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.Local)
	assert.Equal(t, want, got)
}

func TestCombineDateTime_Malformed(t *testing.T) {
	assert.True(t, CombineDateTime(date(2025, time.March, 10), "25:99").IsZero())
	assert.True(t, CombineDateTime(date(2025, time.March, 10), "").IsZero())
	assert.True(t, CombineDateTime(time.Time{}, "10:00").IsZero())
}

func TestNewInterval(t *testing.T) {
	s := &Schedule{
		SubscriptionTier: "prime",
		DeliveryMode:     "Offline",
		InstallDate:      date(2025, time.March, 10),
		InstallTime:      "09:00",
	}

	iv := NewInterval(s)
	require.True(t, iv.Valid())
	assert.Equal(t, time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local), iv.Start)
	// prime offline = 3h30m
	assert.Equal(t, time.Date(2025, time.March, 10, 12, 30, 0, 0, time.Local), iv.End)
	assert.Same(t, s, iv.Schedule)
}

func TestNewInterval_EndEqualsStartPlusDuration(t *testing.T) {
	s := &Schedule{
		SubscriptionTier: "starter",
		DeliveryMode:     "Online",
		InstallDate:      date(2025, time.July, 1),
		InstallTime:      "16:45",
	}

	iv := NewInterval(s)
	require.True(t, iv.Valid())
	assert.Equal(t, s.Duration(), iv.End.Sub(iv.Start))
}

func TestNewInterval_MalformedTimeIsIsolated(t *testing.T) {
	s := &Schedule{
		SubscriptionTier: "starter",
		DeliveryMode:     "Online",
		InstallDate:      date(2025, time.July, 1),
		InstallTime:      "not-a-time",
	}

	iv := NewInterval(s)
	assert.False(t, iv.Valid())
	assert.True(t, iv.Start.IsZero())
	assert.True(t, iv.End.IsZero())
	// The duration is still derivable from the categorical fields.
	assert.Equal(t, 2*time.Hour, s.Duration())
}

func TestScheduleIsOnline(t *testing.T) {
	assert.True(t, (&Schedule{DeliveryMode: "Online"}).IsOnline())
	assert.True(t, (&Schedule{DeliveryMode: "online"}).IsOnline())
	assert.False(t, (&Schedule{DeliveryMode: "Offline"}).IsOnline())
	assert.False(t, (&Schedule{DeliveryMode: ""}).IsOnline())
}
