package send_message

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nadipos/jadwal-service/internal/api/handlers"
	"github.com/nadipos/jadwal-service/internal/service/messages"
)

const (
	msgInvalidBody      = "body permintaan tidak valid"
	msgUnknownTemplate  = "tipe template tidak dikenal"
	msgScheduleNotFound = "jadwal tidak ditemukan"
)

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

// Handle POST /api/v1/schedules/{scheduleId}/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scheduleID := mux.Vars(r)["scheduleId"]

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /schedules/{id}/messages - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Compose(r.Context(), scheduleID, req.TemplateType)
	if err != nil {
		switch {
		case errors.Is(err, messages.ErrScheduleNotFound):
			h.logger.Warn("POST /schedules/{id}/messages - Not found: id=%s", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, messages.ErrUnknownTemplate):
			h.logger.Warn("POST /schedules/{id}/messages - Unknown template: %q", req.TemplateType)
			handlers.RespondBadRequest(w, msgUnknownTemplate)

		default:
			h.logger.Error("POST /schedules/{id}/messages - Failed to compose: id=%s, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules/{id}/messages - Message composed: schedule=%s template=%s",
		scheduleID, req.TemplateType)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
