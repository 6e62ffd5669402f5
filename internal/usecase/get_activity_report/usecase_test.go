package get_activity_report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadipos/jadwal-service/internal/domain"
)

type fakeScheduleRepo struct {
	records []*domain.Schedule
	err     error
}

func (f *fakeScheduleRepo) List(_ context.Context, _ domain.ScheduleFilter) ([]*domain.Schedule, error) {
	return f.records, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute(t *testing.T) {
	repo := &fakeScheduleRepo{records: []*domain.Schedule{
		schedule("starter", "Online", "Fix Schedule"),
		schedule("prime", "Offline", "Fix Schedule"),
		schedule("starter", "Online", "terjadwal"),
	}}

	uc := NewUseCase(repo, "Fix Schedule", nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, "Fix Schedule", resp.StatusFilter)
	assert.Equal(t, 2, resp.TotalSchedules)
	assert.Equal(t, ModeTotals{Count: 1, DurationHours: 2.0}, resp.Online)
	assert.Equal(t, ModeTotals{Count: 1, DurationHours: 3.5}, resp.Offline)
	assert.Equal(t, 5.5, resp.TotalHours)
	assert.Equal(t, []TierCount{{Tier: "starter", Count: 1}, {Tier: "prime", Count: 1}}, resp.TierCounts)
}

func TestExecute_StatusOverride(t *testing.T) {
	repo := &fakeScheduleRepo{records: []*domain.Schedule{
		schedule("starter", "Online", "Fix Schedule"),
		schedule("advance", "Offline", "terjadwal"),
	}}

	uc := NewUseCase(repo, "Fix Schedule", nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{StatusFilter: "terjadwal"})
	require.NoError(t, err)

	assert.Equal(t, "terjadwal", resp.StatusFilter)
	assert.Equal(t, 1, resp.TotalSchedules)
	assert.Equal(t, 3.5, resp.Offline.DurationHours)
}

func TestExecute_EmptySnapshot(t *testing.T) {
	uc := NewUseCase(&fakeScheduleRepo{}, "Fix Schedule", nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.TotalSchedules)
	assert.Equal(t, 0.0, resp.TotalHours)
	assert.Empty(t, resp.TierCounts)
}

func TestExecute_MalformedRecordIsIsolated(t *testing.T) {
	bad := schedule("prime", "Offline", "Fix Schedule")
	bad.InstallTime = "99:99"
	bad.InstallDate = time.Time{}

	repo := &fakeScheduleRepo{records: []*domain.Schedule{
		schedule("starter", "Online", "Fix Schedule"),
		bad,
	}}

	uc := NewUseCase(repo, "Fix Schedule", nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	// The malformed record still counts: only its interval is invalid,
	// which matters for calendar rendering, not for totals.
	assert.Equal(t, 2, resp.TotalSchedules)
	assert.Equal(t, 5.5, resp.TotalHours)
}
