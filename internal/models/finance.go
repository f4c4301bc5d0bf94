package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the DB row for the transactions table.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	EmployeeID    string          `db:"employee_id"`
	Type          string          `db:"type"`
	Status        string          `db:"status"`
	Amount        decimal.Decimal `db:"amount"`
	Method        string          `db:"method"`
	CreatedAt     time.Time       `db:"created_at"`
}

// Expense is the DB row for the expenses table.
type Expense struct {
	ExpenseID     string          `db:"expense_id"`
	TransactionID string          `db:"transaction_id"`
	Category      string          `db:"category"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	CreatedAt     time.Time       `db:"created_at"`
}

// HRLog is the DB row for the hr_logs audit table.
type HRLog struct {
	HRLogID         string    `db:"hr_log_id"`
	ActorEmployeeID string    `db:"actor_employee_id"`
	Action          string    `db:"action"`
	Details         string    `db:"details"`
	CreatedAt       time.Time `db:"created_at"`
}
