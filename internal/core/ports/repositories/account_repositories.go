package repositories

import (
	"context"
	"time"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for payroll account data
type AccountReader interface {
	// FindAccountByEmployeeID retrieves the payroll account of an employee.
	FindAccountByEmployeeID(ctx context.Context, employeeID string) (*domain.Account, error)
}

// AccountWriter defines write operations for payroll account data
type AccountWriter interface {
	// SaveAccount persists a new payroll account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateBaseSalary sets the employee's monthly base salary.
	UpdateBaseSalary(ctx context.Context, employeeID string, baseSalary decimal.Decimal, userID string, now time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
