package repositories

import (
	"context"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
)

// SettingsRepositoryFacade defines persistence operations for company payroll settings.
type SettingsRepositoryFacade interface {
	// GetCompanySettings retrieves the current payroll settings.
	GetCompanySettings(ctx context.Context) (*domain.CompanySettings, error)

	// UpdateCompanySettings replaces the payroll settings.
	UpdateCompanySettings(ctx context.Context, settings domain.CompanySettings) error
}
