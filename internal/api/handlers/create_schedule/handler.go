package create_schedule

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nadipos/jadwal-service/internal/api/handlers"
	createScheduleUC "github.com/nadipos/jadwal-service/internal/usecase/create_schedule"
)

const (
	msgInvalidBody  = "body permintaan tidak valid"
	msgInvalidInput = "data jadwal tidak valid"
)

type Handler struct {
	usecase CreateScheduleUseCase
	logger  Logger
}

func NewHandler(usecase CreateScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req createScheduleUC.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /schedules - Invalid body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.usecase.Execute(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, createScheduleUC.ErrInvalidInput):
			h.logger.Warn("POST /schedules - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /schedules - Failed to create schedule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules - Schedule created: id=%s", result.Schedule.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
