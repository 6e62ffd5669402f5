package get_calendar_events

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/nadipos/jadwal-service/internal/api/handlers"
	getCalendarEventsUC "github.com/nadipos/jadwal-service/internal/usecase/get_calendar_events"
)

const msgInvalidParams = "parameter year/month tidak valid"

type Handler struct {
	usecase GetCalendarEventsUseCase
	logger  Logger
}

func NewHandler(usecase GetCalendarEventsUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/events
// Query params: year, month (default: current month), status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	req := &getCalendarEventsUC.Request{
		Year:  now.Year(),
		Month: int(now.Month()),
	}

	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			h.logger.Warn("GET /calendar/events - Invalid year: %q", yearStr)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.Year = year
	}

	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil {
			h.logger.Warn("GET /calendar/events - Invalid month: %q", monthStr)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.Month = month
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.usecase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendarEventsUC.ErrInvalidInput):
			h.logger.Warn("GET /calendar/events - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /calendar/events - Failed to build calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/events - Returned %d events for %04d-%02d",
		len(result.Events), result.Year, result.Month)
	handlers.RespondJSON(w, http.StatusOK, result)
}
