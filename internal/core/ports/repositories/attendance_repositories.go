package repositories

import (
	"context"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
)

// AttendanceReader defines read operations for attendance-derived payroll inputs
type AttendanceReader interface {
	// FindAttendanceSummary retrieves the attendance summary for an employee and
	// month. Returns nil when no summary exists for the month.
	FindAttendanceSummary(ctx context.Context, employeeID string, month string) (*domain.AttendanceSummary, error)

	// ListAttendanceSummariesByMonth retrieves all attendance summaries for a month,
	// keyed by employee ID.
	ListAttendanceSummariesByMonth(ctx context.Context, month string) (map[string]domain.AttendanceSummary, error)
}

// AdjustmentReader defines read operations for pass-through payroll adjustments
type AdjustmentReader interface {
	// ListAdjustments retrieves chargeback and refund entries for an employee and month.
	ListAdjustments(ctx context.Context, employeeID string, month string) ([]domain.AdjustmentEntry, error)
}

// AttendanceRepositoryFacade combines the attendance-related repository interfaces
type AttendanceRepositoryFacade interface {
	AttendanceReader
	AdjustmentReader
}
