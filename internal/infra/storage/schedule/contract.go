package schedule

import (
	"context"
	"database/sql"

	"github.com/nadipos/jadwal-service/pkg/dbmetrics"
)

// Reuse the dbmetrics executor interfaces so the repository works both over
// the raw *sql.DB and over the metrics-wrapped DB.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
