package domain

import (
	"github.com/shopspring/decimal"
)

// TransferDirection selects which commission balance is the source of a transfer.
type TransferDirection string

const (
	// TransferRelease moves funds from the withheld balance to the available balance.
	TransferRelease TransferDirection = "release"
	// TransferWithhold moves funds from the available balance to the withheld balance.
	TransferWithhold TransferDirection = "withhold"
)

// SalesDepartment holds the commission ledger for a single sales employee.
// Invariant: CommissionAmount + WithholdCommission is unchanged by transfers.
type SalesDepartment struct {
	SalesDepartmentID  string           `json:"salesDepartmentID"` // Primary Key (UUID)
	EmployeeID         string           `json:"employeeID"`        // FK -> employees.employee_id (UNIQUE)
	CommissionRate     *decimal.Decimal `json:"commissionRate"`    // Percentage, nullable until assigned
	CommissionAmount   decimal.Decimal  `json:"commissionAmount"`  // Available balance
	WithholdCommission decimal.Decimal  `json:"withholdCommission"`
	WithholdFlag       bool             `json:"withholdFlag"` // New commission routed to withheld when true
	SalesBonus         decimal.Decimal  `json:"salesBonus"`   // Reset to zero on salary payment
	AuditFields
}

// CommissionAssignment reports the outcome of assigning commission for a
// completed project.
type CommissionAssignment struct {
	EmployeeID       string          `json:"employeeID"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	Withheld         bool            `json:"withheld"`
}

// CommissionTransfer reports the outcome of a balance transfer.
type CommissionTransfer struct {
	EmployeeID        string            `json:"employeeID"`
	Direction         TransferDirection `json:"direction"`
	TransferredAmount decimal.Decimal   `json:"transferredAmount"`
	AvailableBalance  decimal.Decimal   `json:"availableBalance"`
	WithheldBalance   decimal.Decimal   `json:"withheldBalance"`
}

// ProjectStatus defines the delivery state of a sales project.
type ProjectStatus string

const (
	ProjectPending   ProjectStatus = "pending"
	ProjectCompleted ProjectStatus = "completed"
	ProjectCancelled ProjectStatus = "cancelled"
)

// Project represents a sales project closed against a cracked lead.
type Project struct {
	ProjectID          string        `json:"projectID"` // Primary Key (UUID)
	Name               string        `json:"name"`
	Status             ProjectStatus `json:"status"`
	CrackedLeadID      string        `json:"crackedLeadID"`      // FK -> cracked_leads.cracked_lead_id
	ClosedByEmployeeID string        `json:"closedByEmployeeID"` // Sales employee who closed the deal
	AuditFields
}

// CrackedLead is a won lead carrying the deal amount commission is computed from.
type CrackedLead struct {
	CrackedLeadID string          `json:"crackedLeadID"` // Primary Key (UUID)
	ClientName    string          `json:"clientName"`
	Amount        decimal.Decimal `json:"amount"`
	AuditFields
}
