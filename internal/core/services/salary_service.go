package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/crewpay/crewpay-backend/internal/apperrors"
	"github.com/crewpay/crewpay-backend/internal/core/domain"
	portsrepo "github.com/crewpay/crewpay-backend/internal/core/ports/repositories"
	portssvc "github.com/crewpay/crewpay-backend/internal/core/ports/services"
	"github.com/crewpay/crewpay-backend/internal/utils/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// salaryService prorates base salary over the fixed 30-day cycle and folds in
// commission and bonuses to produce the monthly salary log.
type salaryService struct {
	BaseService
	employeeRepo  portsrepo.EmployeeRepositoryFacade
	accountRepo   portsrepo.AccountRepositoryFacade
	salaryLogRepo portsrepo.SalaryLogRepositoryWithTx
	salesDeptRepo portsrepo.SalesDepartmentReader
	hrLogRepo     portsrepo.HRLogWriter
	deductionSvc  portssvc.DeductionSvc
}

// NewSalaryService creates a new salary calculation and administration service.
func NewSalaryService(
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	salaryLogRepo portsrepo.SalaryLogRepositoryWithTx,
	salesDeptRepo portsrepo.SalesDepartmentReader,
	hrLogRepo portsrepo.HRLogWriter,
	deductionSvc portssvc.DeductionSvc,
) portssvc.SalarySvcFacade {
	return &salaryService{
		BaseService:   newBaseService(),
		employeeRepo:  employeeRepo,
		accountRepo:   accountRepo,
		salaryLogRepo: salaryLogRepo,
		salesDeptRepo: salesDeptRepo,
		hrLogRepo:     hrLogRepo,
		deductionSvc:  deductionSvc,
	}
}

var _ portssvc.SalarySvcFacade = (*salaryService)(nil)

// CalculateSalary computes and persists the salary log for one employee.
// The log is created with zero deductions; deductions are computed separately
// and folded in by the breakdown view.
func (s *salaryService) CalculateSalary(ctx context.Context, employeeID string, startDate *time.Time, endDate *time.Time) (*domain.NetSalaryLog, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}

	account, err := s.accountRepo.FindAccountByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account for employee %s: %w", employeeID, err)
	}
	if account.BaseSalary == nil {
		return nil, fmt.Errorf("employee %s has no base salary set: %w", employeeID, apperrors.ErrInvalidState)
	}
	baseSalary := *account.BaseSalary

	daysWorked := payroll.DaysWorked(startDate, endDate)
	prorated := payroll.Prorate(baseSalary, daysWorked)

	commission := decimal.Zero
	bonus := employee.Bonus
	dept, err := s.salesDeptRepo.FindSalesDepartmentByEmployeeID(ctx, employeeID)
	if err == nil {
		commission = dept.CommissionAmount
		bonus = bonus.Add(dept.SalesBonus)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load sales department for employee %s: %w", employeeID, err)
	}
	commission = payroll.RoundMoney(commission)
	bonus = payroll.RoundMoney(bonus)

	now := s.Now()
	month := payroll.MonthLabel(payroll.ReferenceDate(startDate, endDate, now))
	netSalary := payroll.RoundMoney(prorated.Add(commission).Add(bonus))

	log := domain.NetSalaryLog{
		SalaryLogID: uuid.NewString(),
		EmployeeID:  employeeID,
		Month:       month,
		BaseSalary:  payroll.RoundMoney(baseSalary),
		Commission:  commission,
		Bonus:       bonus,
		Deductions:  decimal.Zero,
		NetSalary:   netSalary,
		Status:      domain.SalaryUnpaid,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     domain.AdminProcessor,
			LastUpdatedAt: now,
			LastUpdatedBy: domain.AdminProcessor,
		},
	}

	saved, err := s.salaryLogRepo.UpsertSalaryLog(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("failed to persist salary log for employee %s: %w", employeeID, err)
	}

	s.LogInfo(ctx, "Salary calculated",
		slog.String("employee_id", employeeID),
		slog.String("month", month),
		slog.Int("days_worked", daysWorked),
		slog.String("net_salary", netSalary.String()),
	)
	return saved, nil
}

// CalculateAllEmployees runs the calculation for every active employee,
// isolating per-employee failures.
func (s *salaryService) CalculateAllEmployees(ctx context.Context) {
	employees, err := s.employeeRepo.ListActiveEmployees(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list active employees for salary batch")
		return
	}

	now := s.Now()
	currentMonth := payroll.MonthLabel(now)

	var succeeded, failed int
	for _, employee := range employees {
		var startDate, endDate *time.Time
		if payroll.MonthLabel(employee.StartDate) == currentMonth {
			joined := employee.StartDate
			startDate = &joined
		} else if employee.EndDate != nil && payroll.MonthLabel(*employee.EndDate) == currentMonth {
			ended := *employee.EndDate
			endDate = &ended
		}

		if _, err := s.CalculateSalary(ctx, employee.EmployeeID, startDate, endDate); err != nil {
			failed++
			s.LogError(ctx, err, "Salary calculation failed for employee",
				slog.String("employee_id", employee.EmployeeID))
			continue
		}
		succeeded++
	}

	s.LogInfo(ctx, "Salary batch completed",
		slog.String("month", currentMonth),
		slog.Int("succeeded", succeeded),
		slog.Int("failed", failed),
	)
}

// UpdateSalary sets an employee's base salary, enforcing role restrictions:
// nobody except an admin may set their own salary, and only an admin may set
// the salary of an HR employee who holds the salary permission.
func (s *salaryService) UpdateSalary(ctx context.Context, employeeID string, newBase decimal.Decimal, actingEmployeeID string, isAdmin bool) error {
	if newBase.IsNegative() {
		return fmt.Errorf("base salary must not be negative: %w", apperrors.ErrValidation)
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}
	if !employee.IsActive() {
		return fmt.Errorf("employee %s is not active: %w", employeeID, apperrors.ErrInvalidState)
	}

	if _, err := s.accountRepo.FindAccountByEmployeeID(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to find account for employee %s: %w", employeeID, err)
	}

	if !isAdmin {
		if actingEmployeeID == employeeID {
			return fmt.Errorf("employees cannot set their own salary: %w", apperrors.ErrForbidden)
		}
		if employee.Department == domain.DepartmentHR && employee.SalaryPermission {
			return fmt.Errorf("only an admin may set the salary of a salary-permitted HR employee: %w", apperrors.ErrForbidden)
		}
	}

	now := s.Now()
	actor := actingEmployeeID
	if isAdmin {
		actor = domain.AdminProcessor
	}

	if err := s.accountRepo.UpdateBaseSalary(ctx, employeeID, payroll.RoundMoney(newBase), actor, now); err != nil {
		return fmt.Errorf("failed to update base salary for employee %s: %w", employeeID, err)
	}

	if !isAdmin {
		entry := domain.HRLog{
			HRLogID:         uuid.NewString(),
			ActorEmployeeID: actingEmployeeID,
			Action:          "salary_updated",
			Details:         fmt.Sprintf("base salary of employee %s set to %s", employeeID, newBase.StringFixed(2)),
			CreatedAt:       now,
		}
		if err := s.hrLogRepo.SaveHRLog(ctx, entry); err != nil {
			// The salary change itself succeeded; surface the audit failure loudly.
			s.LogError(ctx, err, "Failed to write HR audit entry for salary update",
				slog.String("employee_id", employeeID))
		}
	}

	s.LogInfo(ctx, "Base salary updated",
		slog.String("employee_id", employeeID),
		slog.String("acting_employee_id", actor),
	)
	return nil
}

// GetSalaryBreakdown returns the detailed deduction breakdown for a month.
func (s *salaryService) GetSalaryBreakdown(ctx context.Context, employeeID string, month string) (*domain.DeductionBreakdown, error) {
	return s.deductionSvc.CalculateDeductions(ctx, employeeID, month)
}

// ListSalaryLogs returns the salary history of an employee, newest first.
func (s *salaryService) ListSalaryLogs(ctx context.Context, employeeID string, limit int, nextToken *string) ([]domain.NetSalaryLog, *string, error) {
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		return nil, nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}
	return s.salaryLogRepo.ListSalaryLogsByEmployee(ctx, employeeID, limit, nextToken)
}
