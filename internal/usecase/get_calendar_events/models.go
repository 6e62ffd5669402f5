package get_calendar_events

// Request asks for the calendar events of one month. Status narrows the
// view to a single lifecycle label when set.
type Request struct {
	Year   int
	Month  int
	Status *string
}

// CalendarEvent is one renderable appointment block. Start and End are
// derived from the record's date, time, tier and mode on every request.
type CalendarEvent struct {
	ScheduleID    string  `json:"scheduleId"`
	Title         string  `json:"title"`
	Start         string  `json:"start"` // RFC 3339
	End           string  `json:"end"`   // RFC 3339
	DeliveryMode  string  `json:"tipeOutlet"`
	Tier          string  `json:"tipeLangganan"`
	Status        string  `json:"status"`
	DurationHours float64 `json:"durationHours"`
}

// Response is the month's calendar. Skipped counts records whose date or
// time could not be composed into a timestamp; they are omitted from the
// calendar but reported so data-entry problems stay visible.
type Response struct {
	Year    int             `json:"year"`
	Month   int             `json:"month"`
	Events  []CalendarEvent `json:"events"`
	Skipped int             `json:"skipped,omitempty"`
}
