package domain

import (
	"github.com/shopspring/decimal"
)

// Account holds the payroll account for a single employee.
// One-to-one with Employee; BaseSalary is nil until HR assigns one.
type Account struct {
	AccountID  string           `json:"accountID"`  // Primary Key (UUID)
	EmployeeID string           `json:"employeeID"` // FK -> employees.employee_id (UNIQUE, NON-NULL)
	BaseSalary *decimal.Decimal `json:"baseSalary"` // Monthly base salary, nullable
	AuditFields
}
