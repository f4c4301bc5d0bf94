package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmploymentStatus defines the lifecycle state of an employee.
type EmploymentStatus string

const (
	EmploymentActive     EmploymentStatus = "active"
	EmploymentInactive   EmploymentStatus = "inactive"
	EmploymentTerminated EmploymentStatus = "terminated"
)

// DepartmentType identifies the department an employee belongs to.
type DepartmentType string

const (
	DepartmentSales DepartmentType = "sales"
	DepartmentHR    DepartmentType = "hr"
	DepartmentOther DepartmentType = "other"
)

// Employee represents an employee in the core domain.
type Employee struct {
	EmployeeID       string           `json:"employeeID"` // Primary Key (UUID)
	UserID           string           `json:"userID"`     // Nullable FK -> users.user_id (login account)
	Name             string           `json:"name"`
	Status           EmploymentStatus `json:"status"`
	Department       DepartmentType   `json:"department"`
	StartDate        time.Time        `json:"startDate"`
	EndDate          *time.Time       `json:"endDate,omitempty"` // Set on termination
	Bonus            decimal.Decimal  `json:"bonus"`             // Discretionary monthly bonus, reset to zero on payment
	SalaryPermission bool             `json:"salaryPermission"`  // HR privilege to set other salaries
	AuditFields
}

// IsActive reports whether the employee is currently employed.
func (e Employee) IsActive() bool {
	return e.Status == EmploymentActive
}
