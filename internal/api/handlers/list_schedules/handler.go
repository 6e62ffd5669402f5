package list_schedules

import (
	"net/http"
	"strconv"

	"github.com/nadipos/jadwal-service/internal/api/handlers"
	"github.com/nadipos/jadwal-service/internal/service/schedules/models"
)

const msgInvalidPage = "parameter page tidak valid"

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules
// Query params: page (optional, 1-based), status (optional, exact match)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListSchedulesRequest{Page: 1}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			h.logger.Warn("GET /schedules - Invalid page: %q", pageStr)
			handlers.RespondBadRequest(w, msgInvalidPage)
			return
		}
		// Out-of-range pages are clamped by the service, not rejected.
		req.Page = page
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /schedules - Failed to list schedules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedules - Returned page=%d count=%d", result.Page, len(result.Schedules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
