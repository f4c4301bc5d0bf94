package pgsql

import (
	"context"

	"github.com/crewpay/crewpay-backend/internal/apperrors"
	"github.com/crewpay/crewpay-backend/internal/core/domain"
	portsrepo "github.com/crewpay/crewpay-backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxHRLogRepository struct {
	BaseRepository
}

// newPgxHRLogRepository creates a new repository for HR audit log entries.
func newPgxHRLogRepository(pool *pgxpool.Pool) portsrepo.HRLogWriter {
	return &PgxHRLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.HRLogWriter = (*PgxHRLogRepository)(nil)

const hrLogInsert = `
	INSERT INTO hr_logs (hr_log_id, actor_employee_id, action, details, created_at)
	VALUES ($1, $2, $3, $4, $5);
`

// SaveHRLog persists an audit entry.
func (r *PgxHRLogRepository) SaveHRLog(ctx context.Context, entry domain.HRLog) error {
	_, err := r.Pool.Exec(ctx, hrLogInsert,
		entry.HRLogID, entry.ActorEmployeeID, entry.Action, entry.Details, entry.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save HR log entry", err)
	}
	return nil
}

// SaveHRLogInTx persists an audit entry within the transaction.
func (r *PgxHRLogRepository) SaveHRLogInTx(ctx context.Context, tx pgx.Tx, entry domain.HRLog) error {
	_, err := tx.Exec(ctx, hrLogInsert,
		entry.HRLogID, entry.ActorEmployeeID, entry.Action, entry.Details, entry.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save HR log entry", err)
	}
	return nil
}
