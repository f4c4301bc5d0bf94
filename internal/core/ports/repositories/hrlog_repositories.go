package repositories

import (
	"context"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// HRLogWriter defines write operations for HR audit log entries
type HRLogWriter interface {
	// SaveHRLog persists an audit entry.
	SaveHRLog(ctx context.Context, entry domain.HRLog) error

	// SaveHRLogInTx persists an audit entry within the transaction.
	SaveHRLogInTx(ctx context.Context, tx pgx.Tx, entry domain.HRLog) error
}
