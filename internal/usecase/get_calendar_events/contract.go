package get_calendar_events

import (
	"context"

	"github.com/nadipos/jadwal-service/internal/domain"
)

// ScheduleRepository is the storage surface the usecase needs.
type ScheduleRepository interface {
	List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error)
}

// Logger is the logging surface used across the usecase layer.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
