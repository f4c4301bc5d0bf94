package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/crewpay/crewpay-backend/internal/apperrors"
	"github.com/crewpay/crewpay-backend/internal/core/domain"
	portsrepo "github.com/crewpay/crewpay-backend/internal/core/ports/repositories"
	"github.com/crewpay/crewpay-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for payroll account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func toDomainAccount(m models.Account) domain.Account {
	d := domain.Account{
		AccountID:  m.AccountID,
		EmployeeID: m.EmployeeID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.BaseSalary.Valid {
		base := m.BaseSalary.Decimal
		d.BaseSalary = &base
	}
	return d
}

// FindAccountByEmployeeID retrieves the payroll account of an employee.
func (r *PgxAccountRepository) FindAccountByEmployeeID(ctx context.Context, employeeID string) (*domain.Account, error) {
	query := `
		SELECT account_id, employee_id, base_salary, created_at, created_by, last_updated_at, last_updated_by
		FROM accounts
		WHERE employee_id = $1;
	`
	var m models.Account
	err := r.Pool.QueryRow(ctx, query, employeeID).Scan(
		&m.AccountID,
		&m.EmployeeID,
		&m.BaseSalary,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find account for employee "+employeeID, err)
	}

	account := toDomainAccount(m)
	return &account, nil
}

// SaveAccount inserts a new payroll account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (account_id, employee_id, base_salary, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	var base decimal.NullDecimal
	if account.BaseSalary != nil {
		base = decimal.NullDecimal{Decimal: *account.BaseSalary, Valid: true}
	}
	_, err := r.Pool.Exec(ctx, query,
		account.AccountID, account.EmployeeID, base,
		account.CreatedAt, account.CreatedBy, account.LastUpdatedAt, account.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save account for employee "+account.EmployeeID, err)
	}
	return nil
}

// UpdateBaseSalary sets the employee's monthly base salary.
func (r *PgxAccountRepository) UpdateBaseSalary(ctx context.Context, employeeID string, baseSalary decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET base_salary = $2, last_updated_at = $3, last_updated_by = $4
		WHERE employee_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, employeeID, baseSalary, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update base salary for employee "+employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
