package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies an accounting transaction.
type TransactionType string

const (
	TransactionSalary TransactionType = "salary"
)

// TransactionStatus is the settlement state of a transaction.
// Records are immutable apart from the pending -> completed transition.
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
)

// PaymentMethodCash is the method recorded when the caller does not name one.
const PaymentMethodCash = "cash"

// Transaction is an accounting record emitted by payment finalization.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // Primary Key (UUID)
	EmployeeID    string            `json:"employeeID"`
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Amount        decimal.Decimal   `json:"amount"`
	Method        string            `json:"method"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// ExpenseCategory classifies an expense record.
type ExpenseCategory string

const (
	ExpenseSalary ExpenseCategory = "salary"
)

// Expense is the bookkeeping counterpart of a completed transaction.
type Expense struct {
	ExpenseID     string          `json:"expenseID"`     // Primary Key (UUID)
	TransactionID string          `json:"transactionID"` // FK -> transactions.transaction_id
	Category      ExpenseCategory `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
}
