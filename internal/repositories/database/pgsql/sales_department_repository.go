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

type PgxSalesDepartmentRepository struct {
	BaseRepository
}

// newPgxSalesDepartmentRepository creates a new repository for sales department data.
func newPgxSalesDepartmentRepository(pool *pgxpool.Pool) portsrepo.SalesDepartmentRepositoryWithTx {
	return &PgxSalesDepartmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SalesDepartmentRepositoryWithTx = (*PgxSalesDepartmentRepository)(nil)

func toDomainSalesDepartment(m models.SalesDepartment) domain.SalesDepartment {
	d := domain.SalesDepartment{
		SalesDepartmentID:  m.SalesDepartmentID,
		EmployeeID:         m.EmployeeID,
		CommissionAmount:   m.CommissionAmount,
		WithholdCommission: m.WithholdCommission,
		WithholdFlag:       m.WithholdFlag,
		SalesBonus:         m.SalesBonus,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.CommissionRate.Valid {
		rate := m.CommissionRate.Decimal
		d.CommissionRate = &rate
	}
	return d
}

const salesDeptColumns = `sales_department_id, employee_id, commission_rate, commission_amount, withhold_commission, withhold_flag, sales_bonus, created_at, created_by, last_updated_at, last_updated_by`

func scanSalesDepartment(row pgx.Row) (*models.SalesDepartment, error) {
	var m models.SalesDepartment
	err := row.Scan(
		&m.SalesDepartmentID,
		&m.EmployeeID,
		&m.CommissionRate,
		&m.CommissionAmount,
		&m.WithholdCommission,
		&m.WithholdFlag,
		&m.SalesBonus,
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

// FindSalesDepartmentByEmployeeID retrieves the sales department record of an employee.
func (r *PgxSalesDepartmentRepository) FindSalesDepartmentByEmployeeID(ctx context.Context, employeeID string) (*domain.SalesDepartment, error) {
	query := `SELECT ` + salesDeptColumns + ` FROM sales_departments WHERE employee_id = $1;`

	m, err := scanSalesDepartment(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find sales department for employee "+employeeID, err)
	}

	dept := toDomainSalesDepartment(*m)
	return &dept, nil
}

// SaveSalesDepartment persists a new sales department record.
func (r *PgxSalesDepartmentRepository) SaveSalesDepartment(ctx context.Context, dept domain.SalesDepartment) error {
	var rate decimal.NullDecimal
	if dept.CommissionRate != nil {
		rate = decimal.NullDecimal{Decimal: *dept.CommissionRate, Valid: true}
	}
	query := `
		INSERT INTO sales_departments (` + salesDeptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		dept.SalesDepartmentID, dept.EmployeeID, rate,
		dept.CommissionAmount, dept.WithholdCommission, dept.WithholdFlag, dept.SalesBonus,
		dept.CreatedAt, dept.CreatedBy, dept.LastUpdatedAt, dept.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save sales department for employee "+dept.EmployeeID, err)
	}
	return nil
}

// UpdateWithholdFlag flips the withhold routing flag.
func (r *PgxSalesDepartmentRepository) UpdateWithholdFlag(ctx context.Context, employeeID string, flag bool, userID string, now time.Time) error {
	query := `
		UPDATE sales_departments
		SET withhold_flag = $2, last_updated_at = $3, last_updated_by = $4
		WHERE employee_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, employeeID, flag, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update withhold flag for employee "+employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateSalesBonus sets the sales bonus accumulator.
func (r *PgxSalesDepartmentRepository) UpdateSalesBonus(ctx context.Context, employeeID string, amount decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE sales_departments
		SET sales_bonus = $2, last_updated_at = $3, last_updated_by = $4
		WHERE employee_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, employeeID, amount, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update sales bonus for employee "+employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindSalesDepartmentForUpdate selects the sales department row for an
// employee and locks it for update within the transaction.
func (r *PgxSalesDepartmentRepository) FindSalesDepartmentForUpdate(ctx context.Context, tx pgx.Tx, employeeID string) (*domain.SalesDepartment, error) {
	query := `SELECT ` + salesDeptColumns + ` FROM sales_departments WHERE employee_id = $1 FOR UPDATE;`

	m, err := scanSalesDepartment(tx.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock sales department for employee "+employeeID, err)
	}

	dept := toDomainSalesDepartment(*m)
	return &dept, nil
}

// UpdateBalancesInTx writes both commission balances within the transaction.
func (r *PgxSalesDepartmentRepository) UpdateBalancesInTx(ctx context.Context, tx pgx.Tx, salesDepartmentID string, available decimal.Decimal, withheld decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE sales_departments
		SET commission_amount = $2, withhold_commission = $3, last_updated_at = $4, last_updated_by = $5
		WHERE sales_department_id = $1;
	`
	tag, err := tx.Exec(ctx, query, salesDepartmentID, available, withheld, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update commission balances for "+salesDepartmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// IncrementBalanceInTx atomically adds to one commission balance within the transaction.
func (r *PgxSalesDepartmentRepository) IncrementBalanceInTx(ctx context.Context, tx pgx.Tx, salesDepartmentID string, amount decimal.Decimal, withheld bool, userID string, now time.Time) error {
	column := "commission_amount"
	if withheld {
		column = "withhold_commission"
	}
	query := `
		UPDATE sales_departments
		SET ` + column + ` = ` + column + ` + $2, last_updated_at = $3, last_updated_by = $4
		WHERE sales_department_id = $1;
	`
	tag, err := tx.Exec(ctx, query, salesDepartmentID, amount, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to increment commission balance for "+salesDepartmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ResetSalesBonusInTx zeroes the sales bonus within the transaction.
func (r *PgxSalesDepartmentRepository) ResetSalesBonusInTx(ctx context.Context, tx pgx.Tx, employeeID string, userID string, now time.Time) error {
	query := `
		UPDATE sales_departments
		SET sales_bonus = 0, last_updated_at = $2, last_updated_by = $3
		WHERE employee_id = $1;
	`
	// Not every employee has a sales department record; zero rows is fine here.
	_, err := tx.Exec(ctx, query, employeeID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to reset sales bonus for employee "+employeeID, err)
	}
	return nil
}
