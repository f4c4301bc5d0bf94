package services

import (
	"context"
	"time"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SalaryCalculatorSvc defines the payroll calculation operations.
type SalaryCalculatorSvc interface {
	// CalculateSalary computes and persists the salary log for one employee.
	// startDate marks a mid-month joiner, endDate a mid-month termination;
	// both nil means a full month.
	CalculateSalary(ctx context.Context, employeeID string, startDate *time.Time, endDate *time.Time) (*domain.NetSalaryLog, error)

	// CalculateAllEmployees runs the calculation for every active employee,
	// isolating per-employee failures. Errors are logged, not returned.
	CalculateAllEmployees(ctx context.Context)
}

// SalaryAdminSvc defines the HR-facing salary administration operations.
type SalaryAdminSvc interface {
	// UpdateSalary sets an employee's base salary, enforcing role restrictions.
	UpdateSalary(ctx context.Context, employeeID string, newBase decimal.Decimal, actingEmployeeID string, isAdmin bool) error

	// GetSalaryBreakdown returns the detailed deduction breakdown for a month.
	GetSalaryBreakdown(ctx context.Context, employeeID string, month string) (*domain.DeductionBreakdown, error)

	// ListSalaryLogs returns the salary history of an employee, newest first,
	// with token-based pagination.
	ListSalaryLogs(ctx context.Context, employeeID string, limit int, nextToken *string) ([]domain.NetSalaryLog, *string, error)
}

// SalarySvcFacade combines the salary calculation and administration interfaces.
type SalarySvcFacade interface {
	SalaryCalculatorSvc
	SalaryAdminSvc
}
