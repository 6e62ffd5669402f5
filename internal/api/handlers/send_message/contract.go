package send_message

import (
	"context"

	"github.com/nadipos/jadwal-service/internal/service/schedules/models"
)

type MessageService interface {
	Compose(ctx context.Context, scheduleID, templateType string) (*models.MessageLogResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
