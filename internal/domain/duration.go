package domain

import (
	"strings"
	"time"
)

// tierDurations maps the normalized subscription tier to the base session
// length. Tiers missing from the table get DefaultSessionDuration, so the
// lookup is total over arbitrary input.
var tierDurations = map[string]time.Duration{
	TierStarterBasic:     1 * time.Hour,
	TierStarter:          2 * time.Hour,
	TierAdvance:          3 * time.Hour,
	TierPrime:            3 * time.Hour,
	TierTrainingBerbayar: 3 * time.Hour,
}

// ResolveDuration derives the session duration for a subscription tier and
// delivery mode. Both inputs are matched case-insensitively; offline
// sessions get OfflineTravelBuffer on top of the base. The result is never
// stored: callers recompute it from the categorical fields on every read, so
// edits to tier or mode are reflected immediately.
func ResolveDuration(tier, mode string) time.Duration {
	base, ok := tierDurations[normalize(tier)]
	if !ok {
		base = DefaultSessionDuration
	}

	if normalize(mode) == "offline" {
		base += OfflineTravelBuffer
	}

	return base
}

func normalize(s string) string {
	return strings.ToLower(s)
}

// DurationHours converts a duration to fractional hours for display.
// The value is kept as a real number: 1.5 renders as 1.5, never truncated.
func DurationHours(d time.Duration) float64 {
	return float64(d.Milliseconds()) / float64(time.Hour.Milliseconds())
}
