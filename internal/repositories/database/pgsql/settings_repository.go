package pgsql

import (
	"context"
	"errors"

	"github.com/crewpay/crewpay-backend/internal/apperrors"
	"github.com/crewpay/crewpay-backend/internal/core/domain"
	portsrepo "github.com/crewpay/crewpay-backend/internal/core/ports/repositories"
	"github.com/crewpay/crewpay-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	BaseRepository
}

// newPgxSettingsRepository creates a new repository for company payroll settings.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

// GetCompanySettings retrieves the current payroll settings.
// The table holds a single row.
func (r *PgxSettingsRepository) GetCompanySettings(ctx context.Context) (*domain.CompanySettings, error) {
	query := `
		SELECT monthly_late_allowance, half_day_allowance, created_at, created_by, last_updated_at, last_updated_by
		FROM company_settings
		WHERE id = 1;
	`
	var m models.CompanySettings
	err := r.Pool.QueryRow(ctx, query).Scan(
		&m.MonthlyLateAllowance, &m.HalfDayAllowance,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to get company settings", err)
	}

	settings := domain.CompanySettings{
		MonthlyLateAllowance: m.MonthlyLateAllowance,
		HalfDayAllowance:     m.HalfDayAllowance,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	return &settings, nil
}

// UpdateCompanySettings replaces the payroll settings.
func (r *PgxSettingsRepository) UpdateCompanySettings(ctx context.Context, settings domain.CompanySettings) error {
	query := `
		INSERT INTO company_settings (id, monthly_late_allowance, half_day_allowance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET monthly_late_allowance = EXCLUDED.monthly_late_allowance,
		    half_day_allowance = EXCLUDED.half_day_allowance,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		settings.MonthlyLateAllowance, settings.HalfDayAllowance,
		settings.CreatedAt, settings.CreatedBy, settings.LastUpdatedAt, settings.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update company settings", err)
	}
	return nil
}
