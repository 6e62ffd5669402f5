package messagelog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/nadipos/jadwal-service/internal/domain"
	"github.com/nadipos/jadwal-service/pkg/dbmetrics"
	"github.com/nadipos/jadwal-service/pkg/psqlbuilder"
)

// Repository provides access to the log_pesan table, the per-schedule
// history of templated messages.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a message-log repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create appends a message-log entry.
func (r *Repository) Create(ctx context.Context, entry *domain.MessageLog) (*domain.MessageLog, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("log_pesan").
		Columns("id", "jadwal_id", "template_type", "body").
		Values(entry.ID, entry.ScheduleID, entry.TemplateType, entry.Body).
		Suffix("RETURNING sent_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var sentAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sentAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	entry.SentAt = sentAt.Time
	return entry, nil
}

// ListByScheduleID returns the message history of a schedule, newest first.
func (r *Repository) ListByScheduleID(ctx context.Context, scheduleID string) ([]*domain.MessageLog, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "jadwal_id", "template_type", "body", "sent_at").
		From("log_pesan").
		Where(squirrel.Eq{"jadwal_id": scheduleID}).
		OrderBy("sent_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByScheduleID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByScheduleID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.MessageLog, 0)
	for rows.Next() {
		var entry domain.MessageLog
		var sentAt sql.NullTime

		err := rows.Scan(&entry.ID, &entry.ScheduleID, &entry.TemplateType, &entry.Body, &sentAt)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByScheduleID - scan row: %v", ErrScanRow, err)
		}

		entry.SentAt = sentAt.Time
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByScheduleID - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
