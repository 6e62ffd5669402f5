package messages

import (
	"context"

	"github.com/nadipos/jadwal-service/internal/domain"
)

// ScheduleRepository resolves the schedule a message is rendered for.
type ScheduleRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
}

// MessageLogRepository stores and lists sent messages.
type MessageLogRepository interface {
	Create(ctx context.Context, entry *domain.MessageLog) (*domain.MessageLog, error)
	ListByScheduleID(ctx context.Context, scheduleID string) ([]*domain.MessageLog, error)
}

// Logger is the logging surface used across the service layer.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
