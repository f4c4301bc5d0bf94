package dto

import (
	"time"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MarkSalaryPaidRequest defines the data needed to finalize a salary payment.
// PaymentMethod defaults to cash when omitted.
type MarkSalaryPaidRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// MarkSalariesPaidBulkRequest defines the data for a bulk payment run.
type MarkSalariesPaidBulkRequest struct {
	EmployeeIDs   []string `json:"employeeIDs" binding:"required,min=1,dive,uuid"`
	PaymentMethod string   `json:"paymentMethod"`
}

// PaymentReceiptResponse defines the data returned for a finalized payment.
type PaymentReceiptResponse struct {
	EmployeeID    string          `json:"employeeID"`
	SalaryLogID   string          `json:"salaryLogID"`
	TransactionID string          `json:"transactionID"`
	ExpenseID     string          `json:"expenseID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	PaidOn        time.Time       `json:"paidOn"`
}

// BulkPaymentRowResponse is the per-employee outcome of a bulk payment run.
type BulkPaymentRowResponse struct {
	EmployeeID string                  `json:"employeeID"`
	Receipt    *PaymentReceiptResponse `json:"receipt,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

// BulkPaymentResponse wraps the outcomes of a bulk payment run.
type BulkPaymentResponse struct {
	Results []BulkPaymentRowResponse `json:"results"`
}

// ToPaymentReceiptResponse converts a domain.PaymentReceipt to its DTO
func ToPaymentReceiptResponse(r *domain.PaymentReceipt) PaymentReceiptResponse {
	return PaymentReceiptResponse{
		EmployeeID:    r.EmployeeID,
		SalaryLogID:   r.SalaryLogID,
		TransactionID: r.TransactionID,
		ExpenseID:     r.ExpenseID,
		Amount:        r.Amount,
		PaymentMethod: r.PaymentMethod,
		PaidOn:        r.PaidOn,
	}
}

// ToBulkPaymentResponse converts bulk payment rows to the response DTO
func ToBulkPaymentResponse(rows []domain.BulkPaymentRow) BulkPaymentResponse {
	results := make([]BulkPaymentRowResponse, len(rows))
	for i, row := range rows {
		result := BulkPaymentRowResponse{
			EmployeeID: row.EmployeeID,
			Error:      row.Error,
		}
		if row.Receipt != nil {
			receipt := ToPaymentReceiptResponse(row.Receipt)
			result.Receipt = &receipt
		}
		results[i] = result
	}
	return BulkPaymentResponse{Results: results}
}
