package booking

import (
	"context"
	"database/sql"

	"github.com/resortly/booking-service/pkg/dbmetrics"
)

// Reuse the executor interfaces from dbmetrics.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner opens transactions. Satisfied by *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
