package models

import (
	"github.com/shopspring/decimal"
)

// AttendanceSummary is the DB row for the attendance_summaries table.
type AttendanceSummary struct {
	EmployeeID string `db:"employee_id"`
	Month      string `db:"month"`
	AbsentDays int    `db:"absent_days"`
	LateDays   int    `db:"late_days"`
	HalfDays   int    `db:"half_days"`
}

// AdjustmentEntry is the DB row for the payroll_adjustments table.
type AdjustmentEntry struct {
	AdjustmentID string          `db:"adjustment_id"`
	EmployeeID   string          `db:"employee_id"`
	Month        string          `db:"month"`
	Kind         string          `db:"kind"`
	Amount       decimal.Decimal `db:"amount"`
	AuditFields
}

// CompanySettings is the DB row for the company_settings singleton table.
type CompanySettings struct {
	MonthlyLateAllowance int `db:"monthly_late_allowance"`
	HalfDayAllowance     int `db:"half_day_allowance"`
	AuditFields
}
