package create_schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nadipos/jadwal-service/internal/domain"
	"github.com/nadipos/jadwal-service/internal/integrations/googlecalendar"
	messagesService "github.com/nadipos/jadwal-service/internal/service/messages"
	"github.com/nadipos/jadwal-service/internal/service/schedules/models"
)

// UseCase creates an installation appointment: it stores the schedule and
// the prepared confirmation message in one transaction, then creates a
// Google Calendar event for online sessions with graceful degradation.
type UseCase struct {
	scheduleRepo   ScheduleRepository
	messageLogRepo MessageLogRepository
	calendarClient CalendarClient
	txManager      TransactionManager
	calendarTZ     string
	logger         Logger
}

// NewUseCase creates the usecase. calendarClient may be nil when the
// integration is disabled.
func NewUseCase(
	scheduleRepo ScheduleRepository,
	messageLogRepo MessageLogRepository,
	calendarClient CalendarClient,
	txManager TransactionManager,
	calendarTZ string,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo:   scheduleRepo,
		messageLogRepo: messageLogRepo,
		calendarClient: calendarClient,
		txManager:      txManager,
		calendarTZ:     calendarTZ,
		logger:         logger,
	}
}

// Execute runs the usecase.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSchedule: outlet=%q tier=%q mode=%q date=%s %s",
		req.OutletName, req.SubscriptionTier, req.DeliveryMode, req.InstallDate, req.InstallTime)

	installDate, installTime, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateSchedule: validation failed: %v", err)
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.StatusTerjadwal
	}

	schedule := &domain.Schedule{
		ID:               uuid.NewString(),
		CustomerName:     req.CustomerName,
		OutletName:       req.OutletName,
		WhatsApp:         req.WhatsApp,
		Address:          req.Address,
		SubscriptionTier: req.SubscriptionTier,
		DeliveryMode:     req.DeliveryMode,
		InstallDate:      installDate,
		InstallTime:      installTime,
		Technician:       req.Technician,
		Status:           status,
		Notes:            req.Notes,
	}

	confirmation, err := messagesService.RenderTemplate(messagesService.TemplateKonfirmasi, schedule)
	if err != nil {
		// The konfirmasi template is static; failing to render it is a bug.
		uc.logger.Error("CreateSchedule: failed to render confirmation: %v", err)
		return nil, fmt.Errorf("%w: render confirmation: %v", ErrInternal, err)
	}

	// Store the schedule and its confirmation message atomically: the
	// operator must never see a schedule without the prepared message.
	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := uc.scheduleRepo.Create(ctx, schedule); err != nil {
			return err
		}

		entry := &domain.MessageLog{
			ID:           uuid.NewString(),
			ScheduleID:   schedule.ID,
			TemplateType: messagesService.TemplateKonfirmasi,
			Body:         confirmation,
		}
		if _, err := uc.messageLogRepo.Create(ctx, entry); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("CreateSchedule: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: create schedule: %v", ErrInternal, err)
	}

	resp := &Response{ConfirmationMessage: confirmation}

	// Online sessions get a calendar event. The calendar API being down
	// must not fail the creation, so the client degrades instead of erroring.
	if schedule.IsOnline() && uc.calendarClient != nil {
		if event := uc.createCalendarEvent(ctx, schedule); event != nil {
			schedule.CalendarEventID = &event.ID
			if err := uc.scheduleRepo.SetCalendarEventID(ctx, schedule.ID, schedule.CalendarEventID); err != nil {
				uc.logger.Error("CreateSchedule: failed to store calendar event id for schedule id=%s: %v",
					schedule.ID, err)
			}
		} else {
			resp.CalendarDegraded = true
		}
	}

	uc.logger.Info("CreateSchedule: created schedule id=%s", schedule.ID)
	resp.Schedule = *models.FromDomainSchedule(schedule)
	return resp, nil
}

func (uc *UseCase) createCalendarEvent(ctx context.Context, schedule *domain.Schedule) *googlecalendar.Event {
	interval := domain.NewInterval(schedule)
	if !interval.Valid() {
		uc.logger.Warn("CreateSchedule: schedule id=%s has no valid interval, skipping calendar event", schedule.ID)
		return nil
	}

	event := &googlecalendar.Event{
		Summary:     fmt.Sprintf("Instalasi %s - %s", schedule.OutletName, schedule.CustomerName),
		Description: fmt.Sprintf("Sesi instalasi online (%s), kontak: %s", schedule.SubscriptionTier, schedule.WhatsApp),
		Start: googlecalendar.EventTime{
			DateTime: interval.Start.Format(time.RFC3339),
			TimeZone: uc.calendarTZ,
		},
		End: googlecalendar.EventTime{
			DateTime: interval.End.Format(time.RFC3339),
			TimeZone: uc.calendarTZ,
		},
	}

	created, err := uc.calendarClient.CreateEventWithGracefulDegradation(ctx, event)
	if err != nil {
		// Already logged by the client; the schedule stays without an event.
		return nil
	}
	return created
}
