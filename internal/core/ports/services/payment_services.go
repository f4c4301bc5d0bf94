package services

import (
	"context"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
)

// PaymentSvc defines the salary payment finalization operations.
type PaymentSvc interface {
	// MarkSalaryPaid atomically finalizes the current month's unpaid salary
	// log for an employee and emits its accounting trail.
	MarkSalaryPaid(ctx context.Context, employeeID string, paymentMethod string, actingUserID string, isAdmin bool) (*domain.PaymentReceipt, error)

	// MarkSalariesPaidBulk finalizes payments for multiple employees,
	// isolating per-employee failures.
	MarkSalariesPaidBulk(ctx context.Context, employeeIDs []string, paymentMethod string, actingUserID string, isAdmin bool) []domain.BulkPaymentRow
}
