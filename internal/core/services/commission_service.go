package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/crewpay/crewpay-backend/internal/apperrors"
	"github.com/crewpay/crewpay-backend/internal/core/domain"
	portsrepo "github.com/crewpay/crewpay-backend/internal/core/ports/repositories"
	portssvc "github.com/crewpay/crewpay-backend/internal/core/ports/services"
	"github.com/crewpay/crewpay-backend/internal/utils/payroll"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// commissionService manages the per-employee commission ledger: assignment from
// completed projects, withhold routing and balance transfers.
type commissionService struct {
	BaseService
	salesDeptRepo portsrepo.SalesDepartmentRepositoryWithTx
	projectRepo   portsrepo.ProjectReader
}

// NewCommissionService creates a new commission ledger service.
func NewCommissionService(
	salesDeptRepo portsrepo.SalesDepartmentRepositoryWithTx,
	projectRepo portsrepo.ProjectReader,
) portssvc.CommissionSvc {
	return &commissionService{
		BaseService:   newBaseService(),
		salesDeptRepo: salesDeptRepo,
		projectRepo:   projectRepo,
	}
}

var _ portssvc.CommissionSvc = (*commissionService)(nil)

// AssignCommission credits the closing employee's ledger for a completed
// project. The credit lands on the available or withheld balance depending on
// the employee's withhold flag at assignment time.
func (s *commissionService) AssignCommission(ctx context.Context, projectID string) (*domain.CommissionAssignment, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}
	if project.Status != domain.ProjectCompleted {
		return nil, fmt.Errorf("project %s is %s, commission requires a completed project: %w", projectID, project.Status, apperrors.ErrInvalidState)
	}

	lead, err := s.projectRepo.FindCrackedLeadByID(ctx, project.CrackedLeadID)
	if err != nil {
		return nil, fmt.Errorf("failed to find cracked lead %s: %w", project.CrackedLeadID, err)
	}
	if !lead.Amount.IsPositive() {
		return nil, fmt.Errorf("cracked lead %s has non-positive amount: %w", lead.CrackedLeadID, apperrors.ErrInvalidState)
	}

	tx, err := s.salesDeptRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.salesDeptRepo.Rollback(ctx, tx) }()

	dept, err := s.salesDeptRepo.FindSalesDepartmentForUpdate(ctx, tx, project.ClosedByEmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock sales department for employee %s: %w", project.ClosedByEmployeeID, err)
	}
	if dept.CommissionRate == nil {
		return nil, fmt.Errorf("employee %s has no commission rate assigned: %w", project.ClosedByEmployeeID, apperrors.ErrInvalidState)
	}

	commission := payroll.RoundMoney(lead.Amount.Mul(*dept.CommissionRate).Div(oneHundred))
	if err := s.salesDeptRepo.IncrementBalanceInTx(ctx, tx, dept.SalesDepartmentID, commission, dept.WithholdFlag, domain.AdminProcessor, s.Now()); err != nil {
		return nil, fmt.Errorf("failed to credit commission for employee %s: %w", project.ClosedByEmployeeID, err)
	}

	if err := s.salesDeptRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit commission assignment: %w", err)
	}

	s.LogInfo(ctx, "Commission assigned",
		slog.String("project_id", projectID),
		slog.String("employee_id", project.ClosedByEmployeeID),
		slog.String("commission", commission.String()),
		slog.Bool("withheld", dept.WithholdFlag),
	)
	return &domain.CommissionAssignment{
		EmployeeID:       project.ClosedByEmployeeID,
		CommissionAmount: commission,
		Withheld:         dept.WithholdFlag,
	}, nil
}

// UpdateWithholdFlag flips the routing flag for newly assigned commission.
// Setting the flag to its current value is reported as a no-op.
func (s *commissionService) UpdateWithholdFlag(ctx context.Context, employeeID string, flag bool, actingUserID string) error {
	dept, err := s.salesDeptRepo.FindSalesDepartmentByEmployeeID(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to find sales department for employee %s: %w", employeeID, err)
	}
	if dept.WithholdFlag == flag {
		return fmt.Errorf("withhold flag for employee %s is already %t: %w", employeeID, flag, apperrors.ErrNoOp)
	}

	if err := s.salesDeptRepo.UpdateWithholdFlag(ctx, employeeID, flag, actingUserID, s.Now()); err != nil {
		return fmt.Errorf("failed to update withhold flag for employee %s: %w", employeeID, err)
	}

	s.LogInfo(ctx, "Withhold flag updated",
		slog.String("employee_id", employeeID),
		slog.Bool("withhold_flag", flag),
	)
	return nil
}

// TransferCommission moves funds between the withheld and available balances.
// A zero amount sweeps the entire source balance. The sum of the two balances
// is unchanged by the transfer.
func (s *commissionService) TransferCommission(ctx context.Context, employeeID string, amount decimal.Decimal, direction domain.TransferDirection, actingUserID string) (*domain.CommissionTransfer, error) {
	if direction != domain.TransferRelease && direction != domain.TransferWithhold {
		return nil, fmt.Errorf("unknown transfer direction %q: %w", direction, apperrors.ErrValidation)
	}
	if amount.IsNegative() {
		return nil, fmt.Errorf("transfer amount must not be negative: %w", apperrors.ErrValidation)
	}

	tx, err := s.salesDeptRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.salesDeptRepo.Rollback(ctx, tx) }()

	dept, err := s.salesDeptRepo.FindSalesDepartmentForUpdate(ctx, tx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock sales department for employee %s: %w", employeeID, err)
	}

	source := dept.WithholdCommission
	if direction == domain.TransferWithhold {
		source = dept.CommissionAmount
	}

	transferred := amount
	if amount.IsZero() {
		if !source.IsPositive() {
			return nil, fmt.Errorf("no funds to sweep for employee %s: %w", employeeID, apperrors.ErrNoFunds)
		}
		transferred = source
	} else if source.LessThan(amount) {
		return nil, fmt.Errorf("source balance %s is below transfer amount %s: %w", source, amount, apperrors.ErrInsufficientFunds)
	}

	available := dept.CommissionAmount
	withheld := dept.WithholdCommission
	if direction == domain.TransferRelease {
		available = available.Add(transferred)
		withheld = withheld.Sub(transferred)
	} else {
		available = available.Sub(transferred)
		withheld = withheld.Add(transferred)
	}

	if err := s.salesDeptRepo.UpdateBalancesInTx(ctx, tx, dept.SalesDepartmentID, available, withheld, actingUserID, s.Now()); err != nil {
		return nil, fmt.Errorf("failed to update balances for employee %s: %w", employeeID, err)
	}
	if err := s.salesDeptRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit commission transfer: %w", err)
	}

	s.LogInfo(ctx, "Commission transferred",
		slog.String("employee_id", employeeID),
		slog.String("direction", string(direction)),
		slog.String("amount", transferred.String()),
	)
	return &domain.CommissionTransfer{
		EmployeeID:        employeeID,
		Direction:         direction,
		TransferredAmount: transferred,
		AvailableBalance:  available,
		WithheldBalance:   withheld,
	}, nil
}

// UpdateSalesBonus sets the sales bonus accumulator for an employee.
func (s *commissionService) UpdateSalesBonus(ctx context.Context, employeeID string, amount decimal.Decimal, actingUserID string) error {
	if amount.IsNegative() {
		return fmt.Errorf("sales bonus must not be negative: %w", apperrors.ErrValidation)
	}
	if _, err := s.salesDeptRepo.FindSalesDepartmentByEmployeeID(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to find sales department for employee %s: %w", employeeID, err)
	}
	if err := s.salesDeptRepo.UpdateSalesBonus(ctx, employeeID, payroll.RoundMoney(amount), actingUserID, s.Now()); err != nil {
		return fmt.Errorf("failed to update sales bonus for employee %s: %w", employeeID, err)
	}
	s.LogInfo(ctx, "Sales bonus updated",
		slog.String("employee_id", employeeID),
		slog.String("amount", amount.String()),
	)
	return nil
}
