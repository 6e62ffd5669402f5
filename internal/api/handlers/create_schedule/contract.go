package create_schedule

import (
	"context"

	createScheduleUC "github.com/nadipos/jadwal-service/internal/usecase/create_schedule"
)

type CreateScheduleUseCase interface {
	Execute(ctx context.Context, req *createScheduleUC.Request) (*createScheduleUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
