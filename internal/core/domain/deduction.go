package domain

import (
	"github.com/shopspring/decimal"
)

// LateDayDetail describes the deduction charged for a single excess late day.
type LateDayDetail struct {
	DayNumber  int             `json:"dayNumber"`  // 1-based position beyond the allowance
	Multiplier decimal.Decimal `json:"multiplier"` // Fraction of the per-day salary charged
	Amount     decimal.Decimal `json:"amount"`
}

// DeductionBreakdown itemizes the deductions computed for one employee and month.
type DeductionBreakdown struct {
	EmployeeID          string          `json:"employeeID"`
	Month               string          `json:"month"`
	BaseSalary          decimal.Decimal `json:"baseSalary"`
	PerDaySalary        decimal.Decimal `json:"perDaySalary"`
	AbsentDays          int             `json:"absentDays"`
	LateDays            int             `json:"lateDays"`
	HalfDays            int             `json:"halfDays"`
	LateAllowance       int             `json:"lateAllowance"`
	HalfDayAllowance    int             `json:"halfDayAllowance"`
	AbsentDeduction     decimal.Decimal `json:"absentDeduction"`
	LateDeduction       decimal.Decimal `json:"lateDeduction"`
	HalfDayDeduction    decimal.Decimal `json:"halfDayDeduction"`
	ChargebackDeduction decimal.Decimal `json:"chargebackDeduction"`
	RefundDeduction     decimal.Decimal `json:"refundDeduction"`
	TotalDeduction      decimal.Decimal `json:"totalDeduction"`
	LateDetails         []LateDayDetail `json:"lateDetails,omitempty"`

	// The source system carried two final-salary readings side by side.
	// Both are kept as named figures so callers choose explicitly.
	DeductionOnlyFinalSalary decimal.Decimal `json:"deductionOnlyFinalSalary"` // base - deductions
	PayrollFinalSalary       decimal.Decimal `json:"payrollFinalSalary"`       // base + commission + bonus - deductions
}

// BatchDeductionResult aggregates deduction breakdowns across all active employees.
type BatchDeductionResult struct {
	Month           string               `json:"month"`
	TotalEmployees  int                  `json:"totalEmployees"`
	TotalDeductions decimal.Decimal      `json:"totalDeductions"`
	TotalNetSalary  decimal.Decimal      `json:"totalNetSalary"`
	Results         []DeductionBreakdown `json:"results"`
}
