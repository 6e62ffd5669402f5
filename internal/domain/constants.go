package domain

import "time"

// Subscription tiers recognized by duration resolution. Matching is done on
// the lower-cased value; anything else falls through to the default session.
const (
	TierStarterBasic     = "starter basic"
	TierStarter          = "starter"
	TierAdvance          = "advance"
	TierPrime            = "prime"
	TierTrainingBerbayar = "training berbayar"
)

// Delivery modes as stored upstream. Report grouping matches these labels
// exactly against the raw column value.
const (
	ModeOnline  = "Online"
	ModeOffline = "Offline"
)

// Schedule status labels. Free text upstream; these are the two the system
// itself writes.
const (
	StatusTerjadwal   = "terjadwal"
	StatusFixSchedule = "Fix Schedule"
)

// Session duration constants.
const (
	// DefaultSessionDuration applies to empty or unrecognized tiers.
	DefaultSessionDuration = 2 * time.Hour

	// OfflineTravelBuffer is added to on-site (offline) sessions.
	OfflineTravelBuffer = 30 * time.Minute
)

// TierUnknownLabel buckets empty or missing tiers in the distribution.
const TierUnknownLabel = "Unknown"

// Time format constants.
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultPageSize is the fallback page size for schedule listings.
const DefaultPageSize = 10

// Validation constants.
const (
	MaxNameLength  = 150
	MaxNotesLength = 500
)
