package create_schedule

import (
	"context"

	"github.com/nadipos/jadwal-service/internal/domain"
	"github.com/nadipos/jadwal-service/internal/integrations/googlecalendar"
)

// ScheduleRepository is the storage surface the usecase needs.
type ScheduleRepository interface {
	Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error)
	SetCalendarEventID(ctx context.Context, id string, eventID *string) error
}

// MessageLogRepository stores the confirmation message prepared on creation.
type MessageLogRepository interface {
	Create(ctx context.Context, entry *domain.MessageLog) (*domain.MessageLog, error)
}

// CalendarClient creates calendar events for online sessions.
type CalendarClient interface {
	CreateEventWithGracefulDegradation(ctx context.Context, event *googlecalendar.Event) (*googlecalendar.Event, error)
}

// TransactionManager runs the schedule insert and the initial message-log
// entry atomically.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface used across the usecase layer.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
