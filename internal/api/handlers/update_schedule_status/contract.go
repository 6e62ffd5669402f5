package update_schedule_status

import (
	"context"

	"github.com/nadipos/jadwal-service/internal/service/schedules/models"
)

type ScheduleService interface {
	UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
