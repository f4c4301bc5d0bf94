package repositories

import (
	"context"
	"time"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves a specific employee by its unique identifier.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListActiveEmployees retrieves all employees with active status.
	ListActiveEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee updates an existing employee's details.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
}

// EmployeeTransactionSupport defines employee operations scoped to a database transaction
type EmployeeTransactionSupport interface {
	// ResetBonusInTx zeroes the employee's discretionary bonus within a transaction.
	ResetBonusInTx(ctx context.Context, tx pgx.Tx, employeeID string, userID string, now time.Time) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
	EmployeeTransactionSupport
}

// EmployeeRepositoryWithTx extends EmployeeRepositoryFacade with transaction capabilities
type EmployeeRepositoryWithTx interface {
	EmployeeRepositoryFacade
	TransactionManager
}
