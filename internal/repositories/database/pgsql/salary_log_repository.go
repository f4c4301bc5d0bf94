package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/crewpay/crewpay-backend/internal/apperrors"
	"github.com/crewpay/crewpay-backend/internal/core/domain"
	portsrepo "github.com/crewpay/crewpay-backend/internal/core/ports/repositories"
	"github.com/crewpay/crewpay-backend/internal/models"
	"github.com/crewpay/crewpay-backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSalaryLogRepository struct {
	BaseRepository
}

// newPgxSalaryLogRepository creates a new repository for salary log data.
func newPgxSalaryLogRepository(pool *pgxpool.Pool) portsrepo.SalaryLogRepositoryWithTx {
	return &PgxSalaryLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SalaryLogRepositoryWithTx = (*PgxSalaryLogRepository)(nil)

func toDomainSalaryLog(m models.NetSalaryLog) domain.NetSalaryLog {
	d := domain.NetSalaryLog{
		SalaryLogID: m.SalaryLogID,
		EmployeeID:  m.EmployeeID,
		Month:       m.Month,
		BaseSalary:  m.BaseSalary,
		Commission:  m.Commission,
		Bonus:       m.Bonus,
		Deductions:  m.Deductions,
		NetSalary:   m.NetSalary,
		Status:      domain.SalaryStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.PaidOn.Valid {
		paidOn := m.PaidOn.Time
		d.PaidOn = &paidOn
	}
	if m.ProcessedBy.Valid {
		processedBy := m.ProcessedBy.String
		d.ProcessedBy = &processedBy
	}
	if m.Method.Valid {
		method := m.Method.String
		d.Method = &method
	}
	return d
}

const salaryLogColumns = `salary_log_id, employee_id, month, base_salary, commission, bonus, deductions, net_salary, status, paid_on, processed_by, method, created_at, created_by, last_updated_at, last_updated_by`

func scanSalaryLog(row pgx.Row) (*models.NetSalaryLog, error) {
	var m models.NetSalaryLog
	err := row.Scan(
		&m.SalaryLogID,
		&m.EmployeeID,
		&m.Month,
		&m.BaseSalary,
		&m.Commission,
		&m.Bonus,
		&m.Deductions,
		&m.NetSalary,
		&m.Status,
		&m.PaidOn,
		&m.ProcessedBy,
		&m.Method,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindSalaryLogByEmployeeAndMonth retrieves the salary log for an employee and month.
func (r *PgxSalaryLogRepository) FindSalaryLogByEmployeeAndMonth(ctx context.Context, employeeID string, month string) (*domain.NetSalaryLog, error) {
	query := `SELECT ` + salaryLogColumns + ` FROM net_salary_logs WHERE employee_id = $1 AND month = $2;`

	m, err := scanSalaryLog(r.Pool.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find salary log for employee "+employeeID, err)
	}

	log := toDomainSalaryLog(*m)
	return &log, nil
}

// ListSalaryLogsByEmployee retrieves the salary history of an employee,
// newest first, using a month-cursor pagination token.
func (r *PgxSalaryLogRepository) ListSalaryLogsByEmployee(ctx context.Context, employeeID string, limit int, nextToken *string) ([]domain.NetSalaryLog, *string, error) {
	if limit <= 0 {
		limit = 12
	}

	query := `SELECT ` + salaryLogColumns + ` FROM net_salary_logs WHERE employee_id = $1`
	args := []any{employeeID}
	if nextToken != nil {
		cursorMonth, err := pagination.DecodeMonthToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.ErrValidation
		}
		query += ` AND month < $2`
		args = append(args, cursorMonth)
	}
	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(` ORDER BY month DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list salary logs for employee "+employeeID, err)
	}
	defer rows.Close()

	logs := []domain.NetSalaryLog{}
	for rows.Next() {
		m, err := scanSalaryLog(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan salary log row", err)
		}
		logs = append(logs, toDomainSalaryLog(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating salary log rows", err)
	}

	var newToken *string
	if len(logs) > limit {
		logs = logs[:limit]
		token := pagination.EncodeMonthToken(logs[len(logs)-1].Month)
		newToken = &token
	}

	return logs, newToken, nil
}

// UpsertSalaryLog inserts the salary log for (employee, month), or updates the
// existing row's computed figures when one already exists. A paid log is never
// overwritten.
func (r *PgxSalaryLogRepository) UpsertSalaryLog(ctx context.Context, log domain.NetSalaryLog) (*domain.NetSalaryLog, error) {
	query := `
		INSERT INTO net_salary_logs (salary_log_id, employee_id, month, base_salary, commission, bonus, deductions, net_salary, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (employee_id, month) DO UPDATE
		SET base_salary = EXCLUDED.base_salary,
		    commission = EXCLUDED.commission,
		    bonus = EXCLUDED.bonus,
		    deductions = EXCLUDED.deductions,
		    net_salary = EXCLUDED.net_salary,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by
		WHERE net_salary_logs.status = 'unpaid'
		RETURNING ` + salaryLogColumns + `;
	`
	m, err := scanSalaryLog(r.Pool.QueryRow(ctx, query,
		log.SalaryLogID, log.EmployeeID, log.Month,
		log.BaseSalary, log.Commission, log.Bonus, log.Deductions, log.NetSalary,
		string(log.Status),
		log.CreatedAt, log.CreatedBy, log.LastUpdatedAt, log.LastUpdatedBy,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict hit a paid log; the month is closed.
			return nil, apperrors.ErrInvalidState
		}
		return nil, apperrors.NewAppError(500, "failed to upsert salary log for employee "+log.EmployeeID, err)
	}

	saved := toDomainSalaryLog(*m)
	return &saved, nil
}

// FindUnpaidLogForUpdate selects the unpaid salary log for (employee, month)
// and locks the row for update within the transaction.
func (r *PgxSalaryLogRepository) FindUnpaidLogForUpdate(ctx context.Context, tx pgx.Tx, employeeID string, month string) (*domain.NetSalaryLog, error) {
	query := `
		SELECT ` + salaryLogColumns + `
		FROM net_salary_logs
		WHERE employee_id = $1 AND month = $2 AND status = 'unpaid'
		FOR UPDATE;
	`
	m, err := scanSalaryLog(tx.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to lock unpaid salary log for employee "+employeeID, err)
	}

	log := toDomainSalaryLog(*m)
	return &log, nil
}

// MarkPaidInTx transitions a salary log to paid within the transaction.
func (r *PgxSalaryLogRepository) MarkPaidInTx(ctx context.Context, tx pgx.Tx, salaryLogID string, paidOn time.Time, processedBy string, method string) error {
	query := `
		UPDATE net_salary_logs
		SET status = 'paid', paid_on = $2, processed_by = $3, method = $4, last_updated_at = $2, last_updated_by = $3
		WHERE salary_log_id = $1 AND status = 'unpaid';
	`
	var methodVal sql.NullString
	if method != "" {
		methodVal = sql.NullString{String: method, Valid: true}
	}
	tag, err := tx.Exec(ctx, query, salaryLogID, paidOn, processedBy, methodVal)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark salary log paid "+salaryLogID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInvalidState
	}
	return nil
}
