package get_schedule_messages

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nadipos/jadwal-service/internal/api/handlers"
	"github.com/nadipos/jadwal-service/internal/service/messages"
)

const msgScheduleNotFound = "jadwal tidak ditemukan"

type Handler struct {
	service MessageService
	logger  Logger
}

func NewHandler(service MessageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules/{scheduleId}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scheduleID := mux.Vars(r)["scheduleId"]

	result, err := h.service.History(r.Context(), scheduleID)
	if err != nil {
		switch {
		case errors.Is(err, messages.ErrScheduleNotFound):
			h.logger.Warn("GET /schedules/{id}/messages - Not found: id=%s", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		default:
			h.logger.Error("GET /schedules/{id}/messages - Failed to get history: id=%s, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedules/{id}/messages - Returned %d messages for id=%s", len(result), scheduleID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
