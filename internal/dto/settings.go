package dto

import (
	"github.com/crewpay/crewpay-backend/internal/core/domain"
)

// UpdateSettingsRequest defines the data for replacing the payroll settings.
// Pointers distinguish an explicit zero from an omitted field.
type UpdateSettingsRequest struct {
	MonthlyLateAllowance *int `json:"monthlyLateAllowance" binding:"required"`
	HalfDayAllowance     *int `json:"halfDayAllowance" binding:"required"`
}

// SettingsResponse defines the data returned for the payroll settings.
type SettingsResponse struct {
	MonthlyLateAllowance int `json:"monthlyLateAllowance"`
	HalfDayAllowance     int `json:"halfDayAllowance"`
}

// ToSettingsResponse converts domain.CompanySettings to its DTO
func ToSettingsResponse(s *domain.CompanySettings) SettingsResponse {
	return SettingsResponse{
		MonthlyLateAllowance: s.MonthlyLateAllowance,
		HalfDayAllowance:     s.HalfDayAllowance,
	}
}
