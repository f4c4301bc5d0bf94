package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// NetSalaryLog is the DB row for the net_salary_logs table.
// UNIQUE (employee_id, month).
type NetSalaryLog struct {
	SalaryLogID string          `db:"salary_log_id"`
	EmployeeID  string          `db:"employee_id"`
	Month       string          `db:"month"`
	BaseSalary  decimal.Decimal `db:"base_salary"`
	Commission  decimal.Decimal `db:"commission"`
	Bonus       decimal.Decimal `db:"bonus"`
	Deductions  decimal.Decimal `db:"deductions"`
	NetSalary   decimal.Decimal `db:"net_salary"`
	Status      string          `db:"status"`
	PaidOn      sql.NullTime    `db:"paid_on"`
	ProcessedBy sql.NullString  `db:"processed_by"`
	Method      sql.NullString  `db:"method"`
	AuditFields
}
