package dto

import (
	"time"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSalaryRequest defines the data needed to calculate one employee's salary.
// StartDate marks a mid-month joiner, EndDate a mid-month termination; at most
// one of the two should be set.
type CalculateSalaryRequest struct {
	EmployeeID string     `json:"employeeID" binding:"required,uuid"`
	StartDate  *time.Time `json:"startDate"` // Optional, RFC 3339
	EndDate    *time.Time `json:"endDate"`   // Optional, RFC 3339
}

// UpdateSalaryRequest defines the data for setting an employee's base salary.
type UpdateSalaryRequest struct {
	BaseSalary decimal.Decimal `json:"baseSalary" binding:"required"`
}

// SalaryLogResponse defines the data returned for a salary log.
// Mirrors domain.NetSalaryLog.
type SalaryLogResponse struct {
	SalaryLogID string          `json:"salaryLogID"`
	EmployeeID  string          `json:"employeeID"`
	Month       string          `json:"month"`
	BaseSalary  decimal.Decimal `json:"baseSalary"`
	Commission  decimal.Decimal `json:"commission"`
	Bonus       decimal.Decimal `json:"bonus"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetSalary   decimal.Decimal `json:"netSalary"`
	Status      string          `json:"status"`
	PaidOn      *time.Time      `json:"paidOn,omitempty"`
	ProcessedBy *string         `json:"processedBy,omitempty"`
	Method      *string         `json:"method,omitempty"`
}

// ListSalaryLogsParams defines query parameters for listing salary logs.
type ListSalaryLogsParams struct {
	Limit     int     `form:"limit,default=12"`
	NextToken *string `form:"nextToken"`
}

// ListSalaryLogsResponse wraps a page of salary logs.
type ListSalaryLogsResponse struct {
	Logs      []SalaryLogResponse `json:"logs"`
	NextToken *string             `json:"nextToken,omitempty"`
}

// ToSalaryLogResponse converts a domain.NetSalaryLog to SalaryLogResponse DTO
func ToSalaryLogResponse(log *domain.NetSalaryLog) SalaryLogResponse {
	return SalaryLogResponse{
		SalaryLogID: log.SalaryLogID,
		EmployeeID:  log.EmployeeID,
		Month:       log.Month,
		BaseSalary:  log.BaseSalary,
		Commission:  log.Commission,
		Bonus:       log.Bonus,
		Deductions:  log.Deductions,
		NetSalary:   log.NetSalary,
		Status:      string(log.Status),
		PaidOn:      log.PaidOn,
		ProcessedBy: log.ProcessedBy,
		Method:      log.Method,
	}
}

// ToListSalaryLogsResponse converts a page of domain.NetSalaryLog to the list DTO
func ToListSalaryLogsResponse(logs []domain.NetSalaryLog, nextToken *string) ListSalaryLogsResponse {
	responses := make([]SalaryLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = ToSalaryLogResponse(&log)
	}
	return ListSalaryLogsResponse{
		Logs:      responses,
		NextToken: nextToken,
	}
}
