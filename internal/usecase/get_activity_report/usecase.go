package get_activity_report

import (
	"context"
	"fmt"

	"github.com/nadipos/jadwal-service/internal/domain"
)

// UseCase builds the activity report: grouped totals by delivery mode and
// the subscription-tier distribution over schedules whose status matches
// the configured filter. Everything is recomputed per request from the
// current snapshot; no derived value is stored.
type UseCase struct {
	scheduleRepo        ScheduleRepository
	defaultStatusFilter string
	logger              Logger
}

// NewUseCase creates the usecase.
func NewUseCase(scheduleRepo ScheduleRepository, defaultStatusFilter string, logger Logger) *UseCase {
	if defaultStatusFilter == "" {
		defaultStatusFilter = domain.StatusFixSchedule
	}
	return &UseCase{
		scheduleRepo:        scheduleRepo,
		defaultStatusFilter: defaultStatusFilter,
		logger:              logger,
	}
}

// Execute runs the usecase.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	statusFilter := req.StatusFilter
	if statusFilter == "" {
		statusFilter = uc.defaultStatusFilter
	}

	uc.logger.Info("GetActivityReport: building report for status=%q", statusFilter)

	records, err := uc.scheduleRepo.List(ctx, domain.ScheduleFilter{})
	if err != nil {
		uc.logger.Error("GetActivityReport: repository error: %v", err)
		return nil, fmt.Errorf("%w: failed to list schedules: %v", ErrInternal, err)
	}

	filtered := filterByStatus(records, statusFilter)
	totals := computeGroupedTotals(filtered)
	distribution := computeTierDistribution(filtered)

	uc.logger.Info("GetActivityReport: %d of %d schedules match status=%q (online=%d offline=%d)",
		len(filtered), len(records), statusFilter, totals.OnlineCount, totals.OfflineCount)

	return &Response{
		StatusFilter:   statusFilter,
		TotalSchedules: len(filtered),
		Online: ModeTotals{
			Count:         totals.OnlineCount,
			DurationHours: domain.DurationHours(totals.OnlineDuration),
		},
		Offline: ModeTotals{
			Count:         totals.OfflineCount,
			DurationHours: domain.DurationHours(totals.OfflineDuration),
		},
		TotalHours: domain.DurationHours(totals.Total()),
		TierCounts: distribution,
	}, nil
}
