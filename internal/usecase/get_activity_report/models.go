package get_activity_report

// Request asks for the activity report. An empty StatusFilter means the
// configured default (normally "Fix Schedule").
type Request struct {
	StatusFilter string
}

// ModeTotals is the per-delivery-mode aggregate.
type ModeTotals struct {
	Count         int     `json:"count"`
	DurationHours float64 `json:"durationHours"`
}

// TierCount is one entry of the tier distribution.
type TierCount struct {
	Tier  string `json:"tier"`
	Count int    `json:"count"`
}

// Response is the activity report over the status-filtered snapshot.
type Response struct {
	StatusFilter   string      `json:"statusFilter"`
	TotalSchedules int         `json:"totalSchedules"`
	Online         ModeTotals  `json:"online"`
	Offline        ModeTotals  `json:"offline"`
	TotalHours     float64     `json:"totalHours"`
	TierCounts     []TierCount `json:"tierDistribution"`
}
