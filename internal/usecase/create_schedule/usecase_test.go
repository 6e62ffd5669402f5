package create_schedule

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadipos/jadwal-service/internal/domain"
	"github.com/nadipos/jadwal-service/internal/integrations/googlecalendar"
)

type fakeScheduleRepo struct {
	created        []*domain.Schedule
	calendarEvents map[string]*string
	createErr      error
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{calendarEvents: map[string]*string{}}
}

func (r *fakeScheduleRepo) Create(_ context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.created = append(r.created, s)
	return s, nil
}

func (r *fakeScheduleRepo) SetCalendarEventID(_ context.Context, id string, eventID *string) error {
	r.calendarEvents[id] = eventID
	return nil
}

type fakeMessageLogRepo struct {
	entries   []*domain.MessageLog
	createErr error
}

func (r *fakeMessageLogRepo) Create(_ context.Context, entry *domain.MessageLog) (*domain.MessageLog, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.entries = append(r.entries, entry)
	return entry, nil
}

type fakeCalendarClient struct {
	created []*googlecalendar.Event
	err     error
}

func (c *fakeCalendarClient) CreateEventWithGracefulDegradation(_ context.Context, event *googlecalendar.Event) (*googlecalendar.Event, error) {
	if c.err != nil {
		return nil, c.err
	}
	event.ID = "evt-1"
	c.created = append(c.created, event)
	return event, nil
}

// fakeTxManager runs the function directly; rollback semantics are the
// transaction manager's own concern, here only error propagation matters.
type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		CustomerName:     "Budi",
		OutletName:       "Kopi Kenangan Cabang Tebet",
		WhatsApp:         "+6281234567890",
		SubscriptionTier: domain.TierStarter,
		DeliveryMode:     domain.ModeOnline,
		InstallDate:      "2026-09-14",
		InstallTime:      "10:00",
	}
}

func TestExecute_CreatesScheduleWithConfirmation(t *testing.T) {
	scheduleRepo := newFakeScheduleRepo()
	messageRepo := &fakeMessageLogRepo{}
	calendar := &fakeCalendarClient{}
	uc := NewUseCase(scheduleRepo, messageRepo, calendar, fakeTxManager{}, "Asia/Jakarta", nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, scheduleRepo.created, 1)
	created := scheduleRepo.created[0]
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StatusTerjadwal, created.Status)

	// The confirmation message is logged in the same operation.
	require.Len(t, messageRepo.entries, 1)
	assert.Equal(t, created.ID, messageRepo.entries[0].ScheduleID)
	assert.True(t, strings.Contains(messageRepo.entries[0].Body, "Budi"))
	assert.Equal(t, messageRepo.entries[0].Body, resp.ConfirmationMessage)

	// Online starter session gets a 2h calendar event.
	require.Len(t, calendar.created, 1)
	assert.Equal(t, "Asia/Jakarta", calendar.created[0].Start.TimeZone)
	assert.False(t, resp.CalendarDegraded)
	require.NotNil(t, scheduleRepo.calendarEvents[created.ID])
	assert.Equal(t, "evt-1", *scheduleRepo.calendarEvents[created.ID])

	assert.InDelta(t, 2.0, resp.Schedule.DurationHours, 1e-9)
	require.NotNil(t, resp.Schedule.SessionStart)
}

func TestExecute_OfflineSkipsCalendar(t *testing.T) {
	scheduleRepo := newFakeScheduleRepo()
	calendar := &fakeCalendarClient{}
	uc := NewUseCase(scheduleRepo, &fakeMessageLogRepo{}, calendar, fakeTxManager{}, "Asia/Jakarta", nopLogger{})

	req := validRequest()
	req.DeliveryMode = domain.ModeOffline

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, calendar.created)
	assert.False(t, resp.CalendarDegraded)
	// Starter offline is 2h + 30m travel buffer.
	assert.InDelta(t, 2.5, resp.Schedule.DurationHours, 1e-9)
}

func TestExecute_CalendarDegradation(t *testing.T) {
	scheduleRepo := newFakeScheduleRepo()
	calendar := &fakeCalendarClient{err: googlecalendar.ErrServiceDegraded}
	uc := NewUseCase(scheduleRepo, &fakeMessageLogRepo{}, calendar, fakeTxManager{}, "Asia/Jakarta", nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// The schedule is stored even when the calendar API is down.
	require.Len(t, scheduleRepo.created, 1)
	assert.True(t, resp.CalendarDegraded)
	assert.Nil(t, resp.Schedule.CalendarEventID)
}

func TestExecute_NilCalendarClient(t *testing.T) {
	scheduleRepo := newFakeScheduleRepo()
	uc := NewUseCase(scheduleRepo, &fakeMessageLogRepo{}, nil, fakeTxManager{}, "Asia/Jakarta", nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, scheduleRepo.created, 1)
	assert.False(t, resp.CalendarDegraded)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(newFakeScheduleRepo(), &fakeMessageLogRepo{}, nil, fakeTxManager{}, "Asia/Jakarta", nopLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "missing customer name", mutate: func(r *Request) { r.CustomerName = "" }},
		{name: "missing outlet name", mutate: func(r *Request) { r.OutletName = "" }},
		{name: "missing whatsapp", mutate: func(r *Request) { r.WhatsApp = "" }},
		{name: "bad date", mutate: func(r *Request) { r.InstallDate = "14-09-2026" }},
		{name: "bad time", mutate: func(r *Request) { r.InstallTime = "10.00" }},
		{name: "name too long", mutate: func(r *Request) { r.CustomerName = strings.Repeat("a", domain.MaxNameLength+1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_UnknownTierIsAccepted(t *testing.T) {
	scheduleRepo := newFakeScheduleRepo()
	uc := NewUseCase(scheduleRepo, &fakeMessageLogRepo{}, nil, fakeTxManager{}, "Asia/Jakarta", nopLogger{})

	req := validRequest()
	req.SubscriptionTier = "paket-baru"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Unknown tiers fall back to the default duration, never an error.
	assert.InDelta(t, 2.0, resp.Schedule.DurationHours, 1e-9)
}

func TestExecute_StorageFailure(t *testing.T) {
	scheduleRepo := newFakeScheduleRepo()
	scheduleRepo.createErr = errors.New("connection refused")
	uc := NewUseCase(scheduleRepo, &fakeMessageLogRepo{}, nil, fakeTxManager{}, "Asia/Jakarta", nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}
