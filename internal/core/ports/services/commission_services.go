package services

import (
	"context"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CommissionSvc defines the commission ledger operations.
type CommissionSvc interface {
	// AssignCommission credits the closing employee's ledger for a completed project.
	AssignCommission(ctx context.Context, projectID string) (*domain.CommissionAssignment, error)

	// UpdateWithholdFlag flips the routing flag for newly assigned commission.
	UpdateWithholdFlag(ctx context.Context, employeeID string, flag bool, actingUserID string) error

	// TransferCommission moves funds between the withheld and available
	// balances. A zero amount sweeps the entire source balance.
	TransferCommission(ctx context.Context, employeeID string, amount decimal.Decimal, direction domain.TransferDirection, actingUserID string) (*domain.CommissionTransfer, error)

	// UpdateSalesBonus sets the sales bonus accumulator for an employee.
	UpdateSalesBonus(ctx context.Context, employeeID string, amount decimal.Decimal, actingUserID string) error
}
