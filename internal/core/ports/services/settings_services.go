package services

import (
	"context"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
)

// SettingsSvc defines the payroll settings operations.
type SettingsSvc interface {
	// GetSettings returns the current payroll settings.
	GetSettings(ctx context.Context) (*domain.CompanySettings, error)

	// UpdateSettings replaces the payroll settings.
	UpdateSettings(ctx context.Context, settings domain.CompanySettings, actingUserID string) (*domain.CompanySettings, error)
}
