package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/crewpay/crewpay-backend/internal/apperrors"
	"github.com/crewpay/crewpay-backend/internal/core/domain"
	portsrepo "github.com/crewpay/crewpay-backend/internal/core/ports/repositories"
	portssvc "github.com/crewpay/crewpay-backend/internal/core/ports/services"
)

// settingsService exposes the configurable payroll business rules.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a new payroll settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvc {
	return &settingsService{
		BaseService:  newBaseService(),
		settingsRepo: settingsRepo,
	}
}

var _ portssvc.SettingsSvc = (*settingsService)(nil)

// GetSettings returns the current payroll settings, falling back to the
// built-in defaults when none have been persisted yet.
func (s *settingsService) GetSettings(ctx context.Context) (*domain.CompanySettings, error) {
	settings, err := s.settingsRepo.GetCompanySettings(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		return &domain.CompanySettings{
			MonthlyLateAllowance: domain.DefaultMonthlyLateAllowance,
			HalfDayAllowance:     domain.DefaultHalfDayAllowance,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load payroll settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings replaces the payroll settings.
func (s *settingsService) UpdateSettings(ctx context.Context, settings domain.CompanySettings, actingUserID string) (*domain.CompanySettings, error) {
	if settings.MonthlyLateAllowance < 0 || settings.HalfDayAllowance < 0 {
		return nil, fmt.Errorf("allowances must not be negative: %w", apperrors.ErrValidation)
	}

	now := s.Now()
	settings.LastUpdatedAt = now
	settings.LastUpdatedBy = actingUserID
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = now
		settings.CreatedBy = actingUserID
	}

	if err := s.settingsRepo.UpdateCompanySettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to update payroll settings: %w", err)
	}

	s.LogInfo(ctx, "Payroll settings updated",
		slog.Int("monthly_late_allowance", settings.MonthlyLateAllowance),
		slog.Int("half_day_allowance", settings.HalfDayAllowance),
		slog.String("acting_user_id", actingUserID),
	)
	return &settings, nil
}
