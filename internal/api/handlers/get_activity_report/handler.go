package get_activity_report

import (
	"net/http"

	"github.com/nadipos/jadwal-service/internal/api/handlers"
	getActivityReportUC "github.com/nadipos/jadwal-service/internal/usecase/get_activity_report"
)

type Handler struct {
	usecase GetActivityReportUseCase
	logger  Logger
}

func NewHandler(usecase GetActivityReportUseCase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/activity
// Query params: status (optional, overrides the configured filter)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getActivityReportUC.Request{
		StatusFilter: r.URL.Query().Get("status"),
	}

	result, err := h.usecase.Execute(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /reports/activity - Failed to build report: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reports/activity - Report built: status=%q schedules=%d",
		result.StatusFilter, result.TotalSchedules)
	handlers.RespondJSON(w, http.StatusOK, result)
}
