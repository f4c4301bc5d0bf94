package services

import (
	"context"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
)

// DeductionSvc defines the deduction calculation operations.
type DeductionSvc interface {
	// CalculateDeductions computes the deduction breakdown for an employee.
	// month defaults to the current month when empty.
	CalculateDeductions(ctx context.Context, employeeID string, month string) (*domain.DeductionBreakdown, error)

	// CalculateAllEmployeesDeductions aggregates deductions across all active
	// employees for a month. Employees without an attendance summary are skipped.
	CalculateAllEmployeesDeductions(ctx context.Context, month string) (*domain.BatchDeductionResult, error)
}
