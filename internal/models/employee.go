package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the DB row for the employees table.
type Employee struct {
	EmployeeID       string          `db:"employee_id"`
	UserID           sql.NullString  `db:"user_id"`
	Name             string          `db:"name"`
	Status           string          `db:"status"`
	Department       string          `db:"department"`
	StartDate        time.Time       `db:"start_date"`
	EndDate          sql.NullTime    `db:"end_date"`
	Bonus            decimal.Decimal `db:"bonus"`
	SalaryPermission bool            `db:"salary_permission"`
	AuditFields
}

// Account is the DB row for the payroll accounts table.
type Account struct {
	AccountID  string              `db:"account_id"`
	EmployeeID string              `db:"employee_id"`
	BaseSalary decimal.NullDecimal `db:"base_salary"`
	AuditFields
}
