package dto

import (
	"github.com/crewpay/crewpay-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DeductionQueryParams defines query parameters for deduction calculations.
// Month must be in YYYY-MM form.
type DeductionQueryParams struct {
	Month string `form:"month" binding:"required,datetime=2006-01"`
}

// LateDayDetailResponse itemizes one excess late day's charge.
type LateDayDetailResponse struct {
	DayNumber  int             `json:"dayNumber"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Amount     decimal.Decimal `json:"amount"`
}

// DeductionBreakdownResponse defines the data returned for a deduction breakdown.
// Mirrors domain.DeductionBreakdown.
type DeductionBreakdownResponse struct {
	EmployeeID          string                  `json:"employeeID"`
	Month               string                  `json:"month"`
	BaseSalary          decimal.Decimal         `json:"baseSalary"`
	PerDaySalary        decimal.Decimal         `json:"perDaySalary"`
	AbsentDays          int                     `json:"absentDays"`
	LateDays            int                     `json:"lateDays"`
	HalfDays            int                     `json:"halfDays"`
	LateAllowance       int                     `json:"lateAllowance"`
	HalfDayAllowance    int                     `json:"halfDayAllowance"`
	AbsentDeduction     decimal.Decimal         `json:"absentDeduction"`
	LateDeduction       decimal.Decimal         `json:"lateDeduction"`
	HalfDayDeduction    decimal.Decimal         `json:"halfDayDeduction"`
	ChargebackDeduction decimal.Decimal         `json:"chargebackDeduction"`
	RefundDeduction     decimal.Decimal         `json:"refundDeduction"`
	TotalDeduction      decimal.Decimal         `json:"totalDeduction"`
	LateDetails         []LateDayDetailResponse `json:"lateDetails,omitempty"`

	DeductionOnlyFinalSalary decimal.Decimal `json:"deductionOnlyFinalSalary"`
	PayrollFinalSalary       decimal.Decimal `json:"payrollFinalSalary"`
}

// BatchDeductionResponse aggregates deduction breakdowns across employees.
type BatchDeductionResponse struct {
	Month           string                       `json:"month"`
	TotalEmployees  int                          `json:"totalEmployees"`
	TotalDeductions decimal.Decimal              `json:"totalDeductions"`
	TotalNetSalary  decimal.Decimal              `json:"totalNetSalary"`
	Results         []DeductionBreakdownResponse `json:"results"`
}

// ToDeductionBreakdownResponse converts a domain.DeductionBreakdown to its DTO
func ToDeductionBreakdownResponse(b *domain.DeductionBreakdown) DeductionBreakdownResponse {
	details := make([]LateDayDetailResponse, len(b.LateDetails))
	for i, d := range b.LateDetails {
		details[i] = LateDayDetailResponse{
			DayNumber:  d.DayNumber,
			Multiplier: d.Multiplier,
			Amount:     d.Amount,
		}
	}
	return DeductionBreakdownResponse{
		EmployeeID:          b.EmployeeID,
		Month:               b.Month,
		BaseSalary:          b.BaseSalary,
		PerDaySalary:        b.PerDaySalary,
		AbsentDays:          b.AbsentDays,
		LateDays:            b.LateDays,
		HalfDays:            b.HalfDays,
		LateAllowance:       b.LateAllowance,
		HalfDayAllowance:    b.HalfDayAllowance,
		AbsentDeduction:     b.AbsentDeduction,
		LateDeduction:       b.LateDeduction,
		HalfDayDeduction:    b.HalfDayDeduction,
		ChargebackDeduction: b.ChargebackDeduction,
		RefundDeduction:     b.RefundDeduction,
		TotalDeduction:      b.TotalDeduction,
		LateDetails:         details,

		DeductionOnlyFinalSalary: b.DeductionOnlyFinalSalary,
		PayrollFinalSalary:       b.PayrollFinalSalary,
	}
}

// ToBatchDeductionResponse converts a domain.BatchDeductionResult to its DTO
func ToBatchDeductionResponse(r *domain.BatchDeductionResult) BatchDeductionResponse {
	results := make([]DeductionBreakdownResponse, len(r.Results))
	for i, b := range r.Results {
		results[i] = ToDeductionBreakdownResponse(&b)
	}
	return BatchDeductionResponse{
		Month:           r.Month,
		TotalEmployees:  r.TotalEmployees,
		TotalDeductions: r.TotalDeductions,
		TotalNetSalary:  r.TotalNetSalary,
		Results:         results,
	}
}
