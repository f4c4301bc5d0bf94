package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryStatus defines the payment state of a salary log.
type SalaryStatus string

const (
	SalaryUnpaid SalaryStatus = "unpaid"
	SalaryPaid   SalaryStatus = "paid"
)

// AdminProcessor is the ProcessedBy sentinel recorded when an administrator
// finalizes a payment directly.
const AdminProcessor = "0"

// NetSalaryLog is the computed payroll record for one employee and one month.
// At most one row exists per (EmployeeID, Month); recomputation updates it in
// place while it is still unpaid.
type NetSalaryLog struct {
	SalaryLogID string          `json:"salaryLogID"` // Primary Key (UUID)
	EmployeeID  string          `json:"employeeID"`  // FK -> employees.employee_id
	Month       string          `json:"month"`       // "YYYY-MM"
	BaseSalary  decimal.Decimal `json:"baseSalary"`  // Snapshot at calculation time
	Commission  decimal.Decimal `json:"commission"`
	Bonus       decimal.Decimal `json:"bonus"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetSalary   decimal.Decimal `json:"netSalary"`
	Status      SalaryStatus    `json:"status"`
	PaidOn      *time.Time      `json:"paidOn,omitempty"`
	ProcessedBy *string         `json:"processedBy,omitempty"` // AdminProcessor for admin payments
	Method      *string         `json:"method,omitempty"`      // Payment method, set on finalization
	AuditFields
}

// BulkPaymentRow is the per-employee outcome of a bulk payment run.
type BulkPaymentRow struct {
	EmployeeID string          `json:"employeeID"`
	Receipt    *PaymentReceipt `json:"receipt,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// PaymentReceipt summarizes a finalized salary payment.
type PaymentReceipt struct {
	EmployeeID    string          `json:"employeeID"`
	SalaryLogID   string          `json:"salaryLogID"`
	TransactionID string          `json:"transactionID"`
	ExpenseID     string          `json:"expenseID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	PaidOn        time.Time       `json:"paidOn"`
}
