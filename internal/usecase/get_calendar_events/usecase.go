package get_calendar_events

import (
	"context"
	"fmt"

	"github.com/nadipos/jadwal-service/internal/domain"
)

// UseCase produces the calendar view of a month: every schedule in the
// window becomes a start/end block whose length is derived from its
// subscription tier and delivery mode.
type UseCase struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewUseCase creates the usecase.
func NewUseCase(scheduleRepo ScheduleRepository, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Execute runs the usecase.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendarEvents: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetCalendarEvents: building calendar for %04d-%02d", req.Year, req.Month)

	first, last := monthWindow(req.Year, req.Month)
	filter := domain.ScheduleFilter{
		Status:    req.Status,
		StartDate: &first,
		EndDate:   &last,
	}

	schedules, err := uc.scheduleRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetCalendarEvents: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to list schedules: %v", ErrInternal, err)
	}

	events, skipped := buildEvents(schedules)
	if skipped > 0 {
		uc.logger.Warn("GetCalendarEvents: skipped %d schedules with malformed date/time", skipped)
	}

	uc.logger.Info("GetCalendarEvents: %d events for %04d-%02d", len(events), req.Year, req.Month)

	return &Response{
		Year:    req.Year,
		Month:   req.Month,
		Events:  events,
		Skipped: skipped,
	}, nil
}
