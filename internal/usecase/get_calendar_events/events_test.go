package get_calendar_events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadipos/jadwal-service/internal/domain"
	"github.com/nadipos/jadwal-service/pkg/types"
)

func schedule(id, tier, mode string, day int, clock string) *domain.Schedule {
	return &domain.Schedule{
		ID:               id,
		CustomerName:     "Budi",
		OutletName:       "Kopi Senja",
		SubscriptionTier: tier,
		DeliveryMode:     mode,
		InstallDate:      time.Date(2025, time.March, day, 0, 0, 0, 0, time.Local),
		InstallTime:      types.TimeString(clock),
		Status:           "Fix Schedule",
	}
}

func TestMonthWindow(t *testing.T) {
	first, last := monthWindow(2025, 2)
	assert.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.Local), first)
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.Local), last)

	first, last = monthWindow(2024, 2)
	assert.Equal(t, 29, last.Day())
	assert.Equal(t, time.February, first.Month())
}

func TestBuildEvents(t *testing.T) {
	schedules := []*domain.Schedule{
		schedule("a", "starter", "Online", 10, "09:00"),
		schedule("b", "prime", "Offline", 12, "13:30"),
	}

	events, skipped := buildEvents(schedules)
	require.Len(t, events, 2)
	assert.Equal(t, 0, skipped)

	assert.Equal(t, "a", events[0].ScheduleID)
	assert.Equal(t, "Kopi Senja - Budi", events[0].Title)
	assert.Equal(t, time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local).Format(time.RFC3339), events[0].Start)
	assert.Equal(t, time.Date(2025, time.March, 10, 11, 0, 0, 0, time.Local).Format(time.RFC3339), events[0].End)
	assert.Equal(t, 2.0, events[0].DurationHours)

	// prime offline: 3.5h block
	assert.Equal(t, time.Date(2025, time.March, 12, 17, 0, 0, 0, time.Local).Format(time.RFC3339), events[1].End)
	assert.Equal(t, 3.5, events[1].DurationHours)
}

func TestBuildEvents_SkipsMalformedRecords(t *testing.T) {
	bad := schedule("bad", "starter", "Online", 10, "09:00")
	bad.InstallTime = "not-a-time"

	events, skipped := buildEvents([]*domain.Schedule{
		bad,
		schedule("ok", "starter", "Online", 11, "10:00"),
	})

	require.Len(t, events, 1)
	assert.Equal(t, "ok", events[0].ScheduleID)
	assert.Equal(t, 1, skipped)
}

type fakeScheduleRepo struct {
	records []*domain.Schedule
	gotFilter domain.ScheduleFilter
}

func (f *fakeScheduleRepo) List(_ context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error) {
	f.gotFilter = filter
	return f.records, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute(t *testing.T) {
	repo := &fakeScheduleRepo{records: []*domain.Schedule{
		schedule("a", "starter", "Online", 5, "08:00"),
	}}

	uc := NewUseCase(repo, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Year: 2025, Month: 3})
	require.NoError(t, err)

	assert.Equal(t, 2025, resp.Year)
	assert.Equal(t, 3, resp.Month)
	require.Len(t, resp.Events, 1)

	require.NotNil(t, repo.gotFilter.StartDate)
	require.NotNil(t, repo.gotFilter.EndDate)
	assert.Equal(t, 1, repo.gotFilter.StartDate.Day())
	assert.Equal(t, 31, repo.gotFilter.EndDate.Day())
}

func TestExecute_InvalidMonth(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Year: 2025, Month: 13})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Year: 1800, Month: 5})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
