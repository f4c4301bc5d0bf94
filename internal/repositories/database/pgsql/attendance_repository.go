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

type PgxAttendanceRepository struct {
	BaseRepository
}

// newPgxAttendanceRepository creates a new repository for attendance-derived payroll inputs.
func newPgxAttendanceRepository(pool *pgxpool.Pool) portsrepo.AttendanceRepositoryFacade {
	return &PgxAttendanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AttendanceRepositoryFacade = (*PgxAttendanceRepository)(nil)

func toDomainAttendanceSummary(m models.AttendanceSummary) domain.AttendanceSummary {
	return domain.AttendanceSummary{
		EmployeeID: m.EmployeeID,
		Month:      m.Month,
		AbsentDays: m.AbsentDays,
		LateDays:   m.LateDays,
		HalfDays:   m.HalfDays,
	}
}

// FindAttendanceSummary retrieves the attendance summary for an employee and
// month. Returns nil when no summary exists.
func (r *PgxAttendanceRepository) FindAttendanceSummary(ctx context.Context, employeeID string, month string) (*domain.AttendanceSummary, error) {
	query := `
		SELECT employee_id, month, absent_days, late_days, half_days
		FROM attendance_summaries
		WHERE employee_id = $1 AND month = $2;
	`
	var m models.AttendanceSummary
	err := r.Pool.QueryRow(ctx, query, employeeID, month).Scan(
		&m.EmployeeID, &m.Month, &m.AbsentDays, &m.LateDays, &m.HalfDays,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find attendance summary for employee "+employeeID, err)
	}

	summary := toDomainAttendanceSummary(m)
	return &summary, nil
}

// ListAttendanceSummariesByMonth retrieves all attendance summaries for a month,
// keyed by employee ID.
func (r *PgxAttendanceRepository) ListAttendanceSummariesByMonth(ctx context.Context, month string) (map[string]domain.AttendanceSummary, error) {
	query := `
		SELECT employee_id, month, absent_days, late_days, half_days
		FROM attendance_summaries
		WHERE month = $1;
	`
	rows, err := r.Pool.Query(ctx, query, month)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list attendance summaries for month "+month, err)
	}
	defer rows.Close()

	summaries := make(map[string]domain.AttendanceSummary)
	for rows.Next() {
		var m models.AttendanceSummary
		if err := rows.Scan(&m.EmployeeID, &m.Month, &m.AbsentDays, &m.LateDays, &m.HalfDays); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan attendance summary row", err)
		}
		summaries[m.EmployeeID] = toDomainAttendanceSummary(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating attendance summary rows", err)
	}

	return summaries, nil
}

// ListAdjustments retrieves chargeback and refund entries for an employee and month.
func (r *PgxAttendanceRepository) ListAdjustments(ctx context.Context, employeeID string, month string) ([]domain.AdjustmentEntry, error) {
	query := `
		SELECT adjustment_id, employee_id, month, kind, amount, created_at, created_by, last_updated_at, last_updated_by
		FROM payroll_adjustments
		WHERE employee_id = $1 AND month = $2;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID, month)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list adjustments for employee "+employeeID, err)
	}
	defer rows.Close()

	entries := []domain.AdjustmentEntry{}
	for rows.Next() {
		var m models.AdjustmentEntry
		err := rows.Scan(
			&m.AdjustmentID, &m.EmployeeID, &m.Month, &m.Kind, &m.Amount,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan adjustment row", err)
		}
		entries = append(entries, domain.AdjustmentEntry{
			AdjustmentID: m.AdjustmentID,
			EmployeeID:   m.EmployeeID,
			Month:        m.Month,
			Kind:         domain.AdjustmentKind(m.Kind),
			Amount:       m.Amount,
			AuditFields: domain.AuditFields{
				CreatedAt:     m.CreatedAt,
				CreatedBy:     m.CreatedBy,
				LastUpdatedAt: m.LastUpdatedAt,
				LastUpdatedBy: m.LastUpdatedBy,
			},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating adjustment rows", err)
	}

	return entries, nil
}
