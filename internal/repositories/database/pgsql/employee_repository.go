package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/crewpay/crewpay-backend/internal/apperrors"
	"github.com/crewpay/crewpay-backend/internal/core/domain"
	portsrepo "github.com/crewpay/crewpay-backend/internal/core/ports/repositories"
	"github.com/crewpay/crewpay-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func toModelEmployee(d domain.Employee) models.Employee {
	m := models.Employee{
		EmployeeID:       d.EmployeeID,
		Name:             d.Name,
		Status:           string(d.Status),
		Department:       string(d.Department),
		StartDate:        d.StartDate,
		Bonus:            d.Bonus,
		SalaryPermission: d.SalaryPermission,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.UserID != "" {
		m.UserID = sql.NullString{String: d.UserID, Valid: true}
	}
	if d.EndDate != nil {
		m.EndDate = sql.NullTime{Time: *d.EndDate, Valid: true}
	}
	return m
}

func toDomainEmployee(m models.Employee) domain.Employee {
	d := domain.Employee{
		EmployeeID:       m.EmployeeID,
		Name:             m.Name,
		Status:           domain.EmploymentStatus(m.Status),
		Department:       domain.DepartmentType(m.Department),
		StartDate:        m.StartDate,
		Bonus:            m.Bonus,
		SalaryPermission: m.SalaryPermission,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.UserID.Valid {
		d.UserID = m.UserID.String
	}
	if m.EndDate.Valid {
		endDate := m.EndDate.Time
		d.EndDate = &endDate
	}
	return d
}

const employeeColumns = `employee_id, user_id, name, status, department, start_date, end_date, bonus, salary_permission, created_at, created_by, last_updated_at, last_updated_by`

func scanEmployee(row pgx.Row) (*models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.UserID,
		&m.Name,
		&m.Status,
		&m.Department,
		&m.StartDate,
		&m.EndDate,
		&m.Bonus,
		&m.SalaryPermission,
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

// FindEmployeeByID retrieves an employee by its ID.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`

	m, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find employee by ID "+employeeID, err)
	}

	employee := toDomainEmployee(*m)
	return &employee, nil
}

// ListActiveEmployees retrieves all employees with active status.
func (r *PgxEmployeeRepository) ListActiveEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE status = $1 ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, string(domain.EmploymentActive))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list active employees", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan employee row", err)
		}
		employees = append(employees, toDomainEmployee(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating employee rows", err)
	}

	return employees, nil
}

// SaveEmployee inserts a new employee.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := toModelEmployee(employee)

	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EmployeeID, m.UserID, m.Name, m.Status, m.Department, m.StartDate, m.EndDate,
		m.Bonus, m.SalaryPermission, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save employee "+employee.EmployeeID, err)
	}
	return nil
}

// UpdateEmployee updates an existing employee's details.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := toModelEmployee(employee)

	query := `
		UPDATE employees
		SET name = $2, status = $3, department = $4, start_date = $5, end_date = $6,
		    bonus = $7, salary_permission = $8, last_updated_at = $9, last_updated_by = $10
		WHERE employee_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EmployeeID, m.Name, m.Status, m.Department, m.StartDate, m.EndDate,
		m.Bonus, m.SalaryPermission, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update employee "+employee.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ResetBonusInTx zeroes the employee's discretionary bonus within a transaction.
func (r *PgxEmployeeRepository) ResetBonusInTx(ctx context.Context, tx pgx.Tx, employeeID string, userID string, now time.Time) error {
	query := `
		UPDATE employees
		SET bonus = 0, last_updated_at = $2, last_updated_by = $3
		WHERE employee_id = $1;
	`
	tag, err := tx.Exec(ctx, query, employeeID, now, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to reset bonus for employee "+employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
