package get_activity_report

import (
	"context"

	getActivityReportUC "github.com/nadipos/jadwal-service/internal/usecase/get_activity_report"
)

type GetActivityReportUseCase interface {
	Execute(ctx context.Context, req *getActivityReportUC.Request) (*getActivityReportUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
