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

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for sales project data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectReader {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProjectReader = (*PgxProjectRepository)(nil)

// FindProjectByID retrieves a project by its unique identifier.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `
		SELECT project_id, name, status, cracked_lead_id, closed_by_employee_id, created_at, created_by, last_updated_at, last_updated_by
		FROM projects
		WHERE project_id = $1;
	`
	var m models.Project
	err := r.Pool.QueryRow(ctx, query, projectID).Scan(
		&m.ProjectID,
		&m.Name,
		&m.Status,
		&m.CrackedLeadID,
		&m.ClosedByEmployeeID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find project "+projectID, err)
	}

	project := domain.Project{
		ProjectID:          m.ProjectID,
		Name:               m.Name,
		Status:             domain.ProjectStatus(m.Status),
		CrackedLeadID:      m.CrackedLeadID,
		ClosedByEmployeeID: m.ClosedByEmployeeID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	return &project, nil
}

// FindCrackedLeadByID retrieves the cracked lead a project was closed against.
func (r *PgxProjectRepository) FindCrackedLeadByID(ctx context.Context, crackedLeadID string) (*domain.CrackedLead, error) {
	query := `
		SELECT cracked_lead_id, client_name, amount, created_at, created_by, last_updated_at, last_updated_by
		FROM cracked_leads
		WHERE cracked_lead_id = $1;
	`
	var m models.CrackedLead
	err := r.Pool.QueryRow(ctx, query, crackedLeadID).Scan(
		&m.CrackedLeadID,
		&m.ClientName,
		&m.Amount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find cracked lead "+crackedLeadID, err)
	}

	lead := domain.CrackedLead{
		CrackedLeadID: m.CrackedLeadID,
		ClientName:    m.ClientName,
		Amount:        m.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	return &lead, nil
}
