package schedules

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nadipos/jadwal-service/internal/domain"
	scheduleRepo "github.com/nadipos/jadwal-service/internal/infra/storage/schedule"
	"github.com/nadipos/jadwal-service/internal/service/schedules/models"
	"github.com/nadipos/jadwal-service/pkg/paging"
	"github.com/nadipos/jadwal-service/pkg/types"
)

// Service handles schedule reads, edits and deletion. Creation lives in its
// own usecase because it spans the repository, the message log and the
// calendar integration.
type Service struct {
	scheduleRepo   ScheduleRepository
	calendarClient CalendarClient
	pageSize       int
	logger         Logger
}

// NewService creates the schedules service.
func NewService(
	scheduleRepo ScheduleRepository,
	calendarClient CalendarClient,
	pageSize int,
	logger Logger,
) *Service {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	return &Service{
		scheduleRepo:   scheduleRepo,
		calendarClient: calendarClient,
		pageSize:       pageSize,
		logger:         logger,
	}
}

// GetByID fetches a single schedule with its derived interval.
func (s *Service) GetByID(ctx context.Context, id string) (*models.ScheduleResponse, error) {
	s.logger.Info("GetByID: fetching schedule id=%s", id)

	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetByID: schedule id=%s not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetByID: repository error for schedule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(schedule), nil
}

// List returns one page of schedules in install-date order. The page number
// is 1-based and clamped to the available range, so navigating past either
// end lands on the nearest valid page instead of failing.
func (s *Service) List(ctx context.Context, req *models.ListSchedulesRequest) (*models.ScheduleListResponse, error) {
	s.logger.Info("List: fetching schedules page=%d status=%v", req.Page, req.Status)

	filter := domain.ScheduleFilter{Status: req.Status}
	all, err := s.scheduleRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	totalPages := paging.TotalPages(len(all), s.pageSize)
	page := paging.Clamp(req.Page, totalPages)
	pageItems := paging.Page(all, page, s.pageSize)

	s.logger.Info("List: returning page=%d/%d with %d of %d schedules",
		page, totalPages, len(pageItems), len(all))

	return &models.ScheduleListResponse{
		Schedules:  models.FromDomainScheduleList(pageItems),
		Page:       page,
		PageSize:   s.pageSize,
		TotalItems: len(all),
		TotalPages: totalPages,
	}, nil
}

// Update rewrites the editable fields of a schedule. The derived duration
// and interval are recomputed by every subsequent read, so no other state
// needs touching here.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule id=%s", id)

	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Update: schedule id=%s not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("Update: repository error for schedule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := applyUpdate(schedule, req); err != nil {
		s.logger.Warn("Update: invalid payload for schedule id=%s: %v", id, err)
		return nil, err
	}

	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("Update: repository error for schedule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated schedule id=%s", id)
	return models.FromDomainSchedule(schedule), nil
}

// UpdateStatus changes only the lifecycle label.
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating schedule id=%s to status=%q", id, req.Status)

	if req.Status == "" {
		return fmt.Errorf("%w: status is required", ErrInvalidInput)
	}

	if err := s.scheduleRepo.UpdateStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("UpdateStatus: schedule id=%s not found", id)
			return ErrScheduleNotFound
		}
		s.logger.Error("UpdateStatus: repository error for schedule id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated schedule id=%s", id)
	return nil
}

// Delete removes a schedule and, best effort, its calendar event.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting schedule id=%s", id)

	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Delete: schedule id=%s not found", id)
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for schedule id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for schedule id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	// Best effort cleanup: the schedule is already gone, a dangling
	// calendar event only warrants a warning.
	if schedule.CalendarEventID != nil && s.calendarClient != nil {
		if err := s.calendarClient.DeleteEvent(ctx, *schedule.CalendarEventID); err != nil {
			s.logger.Warn("Delete: failed to remove calendar event id=%s for schedule id=%s: %v",
				*schedule.CalendarEventID, id, err)
		}
	}

	s.logger.Info("Delete: successfully deleted schedule id=%s", id)
	return nil
}

func applyUpdate(schedule *domain.Schedule, req *models.UpdateScheduleRequest) error {
	if req.CustomerName == "" {
		return fmt.Errorf("%w: namaPelanggan is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxNameLength {
		return fmt.Errorf("%w: namaPelanggan is too long", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: catatan is too long", ErrInvalidInput)
	}

	installDate, err := time.ParseInLocation(domain.DateFormat, req.InstallDate, time.Local)
	if err != nil {
		return fmt.Errorf("%w: invalid tanggalInstalasi", ErrInvalidInput)
	}

	installTime, err := types.NewTimeStringFromString(req.InstallTime)
	if err != nil {
		return fmt.Errorf("%w: invalid pukulInstalasi", ErrInvalidInput)
	}

	schedule.CustomerName = req.CustomerName
	schedule.OutletName = req.OutletName
	schedule.WhatsApp = req.WhatsApp
	schedule.Address = req.Address
	schedule.SubscriptionTier = req.SubscriptionTier
	schedule.DeliveryMode = req.DeliveryMode
	schedule.InstallDate = installDate
	schedule.InstallTime = installTime
	schedule.Technician = req.Technician
	schedule.Notes = req.Notes

	return nil
}
