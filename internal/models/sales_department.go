package models

import (
	"github.com/shopspring/decimal"
)

// SalesDepartment is the DB row for the sales_departments table.
type SalesDepartment struct {
	SalesDepartmentID  string              `db:"sales_department_id"`
	EmployeeID         string              `db:"employee_id"`
	CommissionRate     decimal.NullDecimal `db:"commission_rate"`
	CommissionAmount   decimal.Decimal     `db:"commission_amount"`
	WithholdCommission decimal.Decimal     `db:"withhold_commission"`
	WithholdFlag       bool                `db:"withhold_flag"`
	SalesBonus         decimal.Decimal     `db:"sales_bonus"`
	AuditFields
}

// Project is the DB row for the projects table.
type Project struct {
	ProjectID          string `db:"project_id"`
	Name               string `db:"name"`
	Status             string `db:"status"`
	CrackedLeadID      string `db:"cracked_lead_id"`
	ClosedByEmployeeID string `db:"closed_by_employee_id"`
	AuditFields
}

// CrackedLead is the DB row for the cracked_leads table.
type CrackedLead struct {
	CrackedLeadID string          `db:"cracked_lead_id"`
	ClientName    string          `db:"client_name"`
	Amount        decimal.Decimal `db:"amount"`
	AuditFields
}
