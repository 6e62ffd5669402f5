package domain

import (
	"time"

	"github.com/nadipos/jadwal-service/pkg/types"
)

// Schedule represents an installation appointment (jadwal instalasi).
// SubscriptionTier and DeliveryMode are free-text categories as entered
// upstream; the session duration is derived from them on every read and is
// never stored.
type Schedule struct {
	ID           string
	CustomerName string
	OutletName   string
	WhatsApp     string
	Address      *string

	SubscriptionTier string // tipe_langganan
	DeliveryMode     string // tipe_outlet

	InstallDate time.Time        // tanggal_instalasi (date only)
	InstallTime types.TimeString // pukul_instalasi

	Technician *string
	Status     string
	Notes      *string

	// CalendarEventID references the Google Calendar event created for an
	// online session, when one exists.
	CalendarEventID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the derived session duration for this schedule.
func (s *Schedule) Duration() time.Duration {
	return ResolveDuration(s.SubscriptionTier, s.DeliveryMode)
}

// IsOnline reports whether the session is delivered online, using the same
// normalized matching as duration resolution.
func (s *Schedule) IsOnline() bool {
	return normalize(s.DeliveryMode) == "online"
}

// MessageLog is a record of a templated message sent for a schedule.
type MessageLog struct {
	ID           string
	ScheduleID   string
	TemplateType string
	Body         string
	SentAt       time.Time
}

// ScheduleFilter narrows schedule listings.
type ScheduleFilter struct {
	Status    *string    // exact match, case-sensitive
	StartDate *time.Time // install date >= (optional)
	EndDate   *time.Time // install date <= (optional)
}
