package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/nadipos/jadwal-service/internal/domain"
	"github.com/nadipos/jadwal-service/pkg/dbmetrics"
	"github.com/nadipos/jadwal-service/pkg/psqlbuilder"
)

// scheduleColumns is the canonical column list for the jadwal table.
// Column names are fixed for compatibility with the upstream data entry
// tooling and must not be renamed.
var scheduleColumns = []string{
	"id",
	"nama_pelanggan",
	"nama_outlet",
	"no_whatsapp",
	"alamat",
	"tipe_langganan",
	"tipe_outlet",
	"tanggal_instalasi",
	"pukul_instalasi",
	"teknisi",
	"status",
	"catatan",
	"calendar_event_id",
	"created_at",
	"updated_at",
}

// Repository provides access to the jadwal table.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a schedule repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new schedule. The caller assigns the id; created_at and
// updated_at come back from the database.
// If the context carries an active transaction, it is used.
func (r *Repository) Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("jadwal").
		Columns(
			"id",
			"nama_pelanggan",
			"nama_outlet",
			"no_whatsapp",
			"alamat",
			"tipe_langganan",
			"tipe_outlet",
			"tanggal_instalasi",
			"pukul_instalasi",
			"teknisi",
			"status",
			"catatan",
			"calendar_event_id",
		).
		Values(
			s.ID,
			s.CustomerName,
			s.OutletName,
			s.WhatsApp,
			s.Address,
			s.SubscriptionTier,
			s.DeliveryMode,
			s.InstallDate,
			s.InstallTime,
			s.Technician,
			s.Status,
			s.Notes,
			s.CalendarEventID,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID fetches a schedule by id.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("jadwal").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	s, err := scanSchedule(row)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %v", ErrScanRow, err)
	}

	return s, nil
}

// List returns schedules matching the filter, ordered by install date and
// time ascending. This ordering is the natural order every paginated and
// aggregated view builds on.
func (r *Repository) List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("jadwal").
		OrderBy("tanggal_instalasi ASC", "pukul_instalasi ASC")

	// Status is matched exactly, case-sensitive: "Fix Schedule" and
	// "fix schedule" are different lifecycle labels upstream.
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"tanggal_instalasi": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"tanggal_instalasi": *filter.EndDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

// Update rewrites the editable fields of a schedule. Derived values
// (duration, interval) are never stored, so category or date edits take
// effect on the next read without any migration.
func (r *Repository) Update(ctx context.Context, s *domain.Schedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("jadwal").
		Set("nama_pelanggan", s.CustomerName).
		Set("nama_outlet", s.OutletName).
		Set("no_whatsapp", s.WhatsApp).
		Set("alamat", s.Address).
		Set("tipe_langganan", s.SubscriptionTier).
		Set("tipe_outlet", s.DeliveryMode).
		Set("tanggal_instalasi", s.InstallDate).
		Set("pukul_instalasi", s.InstallTime).
		Set("teknisi", s.Technician).
		Set("catatan", s.Notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Update", query, args)
}

// UpdateStatus changes only the lifecycle label of a schedule.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("jadwal").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "UpdateStatus", query, args)
}

// SetCalendarEventID records the Google Calendar event created for an
// online session.
func (r *Repository) SetCalendarEventID(ctx context.Context, id string, eventID *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("jadwal").
		Set("calendar_event_id", eventID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetCalendarEventID - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "SetCalendarEventID", query, args)
}

// Delete removes a schedule permanently.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("jadwal").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, "Delete", query, args)
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanScheduleFrom(row rowScanner) (*domain.Schedule, error) {
	var s domain.Schedule
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.CustomerName,
		&s.OutletName,
		&s.WhatsApp,
		&s.Address,
		&s.SubscriptionTier,
		&s.DeliveryMode,
		&s.InstallDate,
		&s.InstallTime,
		&s.Technician,
		&s.Status,
		&s.Notes,
		&s.CalendarEventID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return &s, nil
}

func scanSchedule(row *sql.Row) (*domain.Schedule, error) {
	return scanScheduleFrom(row)
}

func scanSchedules(rows *sql.Rows) ([]*domain.Schedule, error) {
	schedules := make([]*domain.Schedule, 0)

	for rows.Next() {
		s, err := scanScheduleFrom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSchedules - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}
