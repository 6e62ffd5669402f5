package messages

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nadipos/jadwal-service/internal/domain"
	scheduleRepo "github.com/nadipos/jadwal-service/internal/infra/storage/schedule"
	"github.com/nadipos/jadwal-service/internal/service/schedules/models"
)

// Service renders WhatsApp-style messages from static templates and records
// them in the per-schedule message log. Actual delivery happens outside this
// system: the operator copies the rendered text into WhatsApp.
type Service struct {
	scheduleRepo ScheduleRepository
	logRepo      MessageLogRepository
	logger       Logger
}

// NewService creates the messages service.
func NewService(
	scheduleRepo ScheduleRepository,
	logRepo MessageLogRepository,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logRepo:      logRepo,
		logger:       logger,
	}
}

// Compose renders the template of the given type for a schedule and appends
// the result to the message log.
func (s *Service) Compose(ctx context.Context, scheduleID, templateType string) (*models.MessageLogResponse, error) {
	s.logger.Info("Compose: rendering template=%s for schedule id=%s", templateType, scheduleID)

	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Compose: schedule id=%s not found", scheduleID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("Compose: repository error for schedule id=%s: %v", scheduleID, err)
		return nil, fmt.Errorf("%w: Compose - repository error: %v", ErrInternal, err)
	}

	body, err := RenderTemplate(templateType, schedule)
	if err != nil {
		s.logger.Warn("Compose: unknown template=%s for schedule id=%s", templateType, scheduleID)
		return nil, err
	}

	entry := &domain.MessageLog{
		ID:           uuid.NewString(),
		ScheduleID:   scheduleID,
		TemplateType: templateType,
		Body:         body,
	}

	created, err := s.logRepo.Create(ctx, entry)
	if err != nil {
		s.logger.Error("Compose: failed to store message log for schedule id=%s: %v", scheduleID, err)
		return nil, fmt.Errorf("%w: Compose - message log error: %v", ErrInternal, err)
	}

	s.logger.Info("Compose: stored message id=%s for schedule id=%s", created.ID, scheduleID)
	return models.FromDomainMessageLog(created), nil
}

// History returns the message log of a schedule, newest first.
func (s *Service) History(ctx context.Context, scheduleID string) ([]models.MessageLogResponse, error) {
	s.logger.Info("History: fetching messages for schedule id=%s", scheduleID)

	// Resolve the schedule first so an unknown id maps to 404, not an
	// empty history.
	if _, err := s.scheduleRepo.GetByID(ctx, scheduleID); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("History: schedule id=%s not found", scheduleID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("History: repository error for schedule id=%s: %v", scheduleID, err)
		return nil, fmt.Errorf("%w: History - repository error: %v", ErrInternal, err)
	}

	entries, err := s.logRepo.ListByScheduleID(ctx, scheduleID)
	if err != nil {
		s.logger.Error("History: message log error for schedule id=%s: %v", scheduleID, err)
		return nil, fmt.Errorf("%w: History - message log error: %v", ErrInternal, err)
	}

	s.logger.Info("History: fetched %d messages for schedule id=%s", len(entries), scheduleID)
	return models.FromDomainMessageLogList(entries), nil
}
