package get_schedule_messages

import (
	"context"

	"github.com/nadipos/jadwal-service/internal/service/schedules/models"
)

type MessageService interface {
	History(ctx context.Context, scheduleID string) ([]models.MessageLogResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
