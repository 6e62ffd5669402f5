package get_calendar_events

import (
	"fmt"
	"time"

	"github.com/nadipos/jadwal-service/internal/domain"
)

// monthWindow returns the first and last day of the month as local dates.
func monthWindow(year, month int) (time.Time, time.Time) {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// buildEvents derives calendar events from schedules. Records whose
// date/time cannot be composed into a timestamp are skipped, not fatal:
// one bad row must never blank the whole calendar.
func buildEvents(schedules []*domain.Schedule) ([]CalendarEvent, int) {
	events := make([]CalendarEvent, 0, len(schedules))
	skipped := 0

	for _, s := range schedules {
		interval := domain.NewInterval(s)
		if !interval.Valid() {
			skipped++
			continue
		}

		events = append(events, CalendarEvent{
			ScheduleID:    s.ID,
			Title:         fmt.Sprintf("%s - %s", s.OutletName, s.CustomerName),
			Start:         interval.Start.Format(time.RFC3339),
			End:           interval.End.Format(time.RFC3339),
			DeliveryMode:  s.DeliveryMode,
			Tier:          s.SubscriptionTier,
			Status:        s.Status,
			DurationHours: domain.DurationHours(s.Duration()),
		})
	}

	return events, skipped
}

func validateRequest(req *Request) error {
	if req.Year < 2000 || req.Year > 2100 {
		return fmt.Errorf("%w: year out of range", ErrInvalidInput)
	}
	if req.Month < 1 || req.Month > 12 {
		return fmt.Errorf("%w: month out of range", ErrInvalidInput)
	}
	return nil
}
