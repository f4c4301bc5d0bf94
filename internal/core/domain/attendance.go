package domain

import (
	"github.com/shopspring/decimal"
)

// AttendanceSummary holds the per-month attendance facts an employee's
// deductions are computed from. Read-only input to payroll.
type AttendanceSummary struct {
	EmployeeID string `json:"employeeID"`
	Month      string `json:"month"` // "YYYY-MM"
	AbsentDays int    `json:"absentDays"`
	LateDays   int    `json:"lateDays"`
	HalfDays   int    `json:"halfDays"`
}

// AdjustmentKind classifies a pass-through payroll adjustment.
type AdjustmentKind string

const (
	AdjustmentChargeback AdjustmentKind = "chargeback"
	AdjustmentRefund     AdjustmentKind = "refund"
)

// AdjustmentEntry is a flat deduction quantified upstream (chargeback or
// refund) that payroll passes through without recomputation.
type AdjustmentEntry struct {
	AdjustmentID string          `json:"adjustmentID"` // Primary Key (UUID)
	EmployeeID   string          `json:"employeeID"`
	Month        string          `json:"month"`
	Kind         AdjustmentKind  `json:"kind"`
	Amount       decimal.Decimal `json:"amount"`
	AuditFields
}
