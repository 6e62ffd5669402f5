package schedules

import (
	"context"

	"github.com/nadipos/jadwal-service/internal/domain"
)

// ScheduleRepository is the storage surface the service needs.
type ScheduleRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error)
	Update(ctx context.Context, s *domain.Schedule) error
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
}

// CalendarClient removes calendar events when a schedule is deleted.
type CalendarClient interface {
	DeleteEvent(ctx context.Context, eventID string) error
}

// Logger is the logging surface used across the service layer.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
