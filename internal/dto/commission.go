package dto

import (
	"github.com/crewpay/crewpay-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssignCommissionRequest defines the data needed to assign commission for a project.
type AssignCommissionRequest struct {
	ProjectID string `json:"projectID" binding:"required,uuid"`
}

// CommissionAssignmentResponse defines the data returned for a commission assignment.
type CommissionAssignmentResponse struct {
	EmployeeID       string          `json:"employeeID"`
	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	Withheld         bool            `json:"withheld"`
}

// UpdateWithholdFlagRequest defines the data for flipping the withhold routing flag.
// The flag is a pointer so "false" is distinguishable from an omitted field.
type UpdateWithholdFlagRequest struct {
	WithholdFlag *bool `json:"withholdFlag" binding:"required"`
}

// TransferCommissionRequest defines the data for a balance transfer.
// A zero amount sweeps the entire source balance.
type TransferCommissionRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	Direction string          `json:"direction" binding:"required,oneof=release withhold"`
}

// CommissionTransferResponse defines the data returned for a balance transfer.
type CommissionTransferResponse struct {
	EmployeeID        string          `json:"employeeID"`
	Direction         string          `json:"direction"`
	TransferredAmount decimal.Decimal `json:"transferredAmount"`
	AvailableBalance  decimal.Decimal `json:"availableBalance"`
	WithheldBalance   decimal.Decimal `json:"withheldBalance"`
}

// UpdateSalesBonusRequest defines the data for setting the sales bonus accumulator.
type UpdateSalesBonusRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// ToCommissionAssignmentResponse converts a domain.CommissionAssignment to its DTO
func ToCommissionAssignmentResponse(a *domain.CommissionAssignment) CommissionAssignmentResponse {
	return CommissionAssignmentResponse{
		EmployeeID:       a.EmployeeID,
		CommissionAmount: a.CommissionAmount,
		Withheld:         a.Withheld,
	}
}

// ToCommissionTransferResponse converts a domain.CommissionTransfer to its DTO
func ToCommissionTransferResponse(t *domain.CommissionTransfer) CommissionTransferResponse {
	return CommissionTransferResponse{
		EmployeeID:        t.EmployeeID,
		Direction:         string(t.Direction),
		TransferredAmount: t.TransferredAmount,
		AvailableBalance:  t.AvailableBalance,
		WithheldBalance:   t.WithheldBalance,
	}
}
