package get_calendar_events

import (
	"context"

	getCalendarEventsUC "github.com/nadipos/jadwal-service/internal/usecase/get_calendar_events"
)

type GetCalendarEventsUseCase interface {
	Execute(ctx context.Context, req *getCalendarEventsUC.Request) (*getCalendarEventsUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
