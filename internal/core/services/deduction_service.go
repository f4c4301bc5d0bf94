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
	"github.com/crewpay/crewpay-backend/internal/utils/payroll"
	"github.com/shopspring/decimal"
)

// deductionService turns attendance facts and pass-through adjustments into
// a total deduction for a month.
type deductionService struct {
	BaseService
	employeeRepo   portsrepo.EmployeeReader
	accountRepo    portsrepo.AccountReader
	salesDeptRepo  portsrepo.SalesDepartmentReader
	attendanceRepo portsrepo.AttendanceRepositoryFacade
	settingsRepo   portsrepo.SettingsRepositoryFacade
}

// NewDeductionService creates a new deduction calculation service.
func NewDeductionService(
	employeeRepo portsrepo.EmployeeReader,
	accountRepo portsrepo.AccountReader,
	salesDeptRepo portsrepo.SalesDepartmentReader,
	attendanceRepo portsrepo.AttendanceRepositoryFacade,
	settingsRepo portsrepo.SettingsRepositoryFacade,
) portssvc.DeductionSvc {
	return &deductionService{
		BaseService:    newBaseService(),
		employeeRepo:   employeeRepo,
		accountRepo:    accountRepo,
		salesDeptRepo:  salesDeptRepo,
		attendanceRepo: attendanceRepo,
		settingsRepo:   settingsRepo,
	}
}

var _ portssvc.DeductionSvc = (*deductionService)(nil)

// settingsOrDefaults loads the company payroll settings, falling back to the
// built-in defaults when none are persisted yet.
func (s *deductionService) settingsOrDefaults(ctx context.Context) domain.CompanySettings {
	settings, err := s.settingsRepo.GetCompanySettings(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Failed to load company settings, using defaults", slog.String("error", err.Error()))
		}
		return domain.CompanySettings{
			MonthlyLateAllowance: domain.DefaultMonthlyLateAllowance,
			HalfDayAllowance:     domain.DefaultHalfDayAllowance,
		}
	}
	return *settings
}

// progressiveDeduction charges excessDays at an increasing fraction of the
// per-day salary: 0.5x for the first excess day, 1.0x for the second, and so on.
func progressiveDeduction(perDay decimal.Decimal, excessDays int) (decimal.Decimal, []domain.LateDayDetail) {
	total := decimal.Zero
	details := make([]domain.LateDayDetail, 0, excessDays)
	for i := 0; i < excessDays; i++ {
		multiplier := payroll.ProgressiveMultiplier(i)
		amount := payroll.RoundMoney(perDay.Mul(multiplier))
		total = total.Add(amount)
		details = append(details, domain.LateDayDetail{
			DayNumber:  i + 1,
			Multiplier: multiplier,
			Amount:     amount,
		})
	}
	return total, details
}

// CalculateDeductions computes the deduction breakdown for one employee.
func (s *deductionService) CalculateDeductions(ctx context.Context, employeeID string, month string) (*domain.DeductionBreakdown, error) {
	if month == "" {
		month = payroll.MonthLabel(s.Now())
	}

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

	summary, err := s.attendanceRepo.FindAttendanceSummary(ctx, employeeID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load attendance summary for employee %s: %w", employeeID, err)
	}
	if summary == nil {
		// No recorded facts for the month means nothing to deduct.
		summary = &domain.AttendanceSummary{EmployeeID: employeeID, Month: month}
	}

	adjustments, err := s.attendanceRepo.ListAdjustments(ctx, employeeID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load adjustments for employee %s: %w", employeeID, err)
	}

	settings := s.settingsOrDefaults(ctx)

	breakdown := s.buildBreakdown(ctx, *employee, *account.BaseSalary, *summary, adjustments, settings)
	return &breakdown, nil
}

// buildBreakdown assembles the full deduction breakdown from already-loaded inputs.
func (s *deductionService) buildBreakdown(
	ctx context.Context,
	employee domain.Employee,
	baseSalary decimal.Decimal,
	summary domain.AttendanceSummary,
	adjustments []domain.AdjustmentEntry,
	settings domain.CompanySettings,
) domain.DeductionBreakdown {
	perDay := payroll.DailyRate(baseSalary)

	// Each absent day costs double the per-day salary.
	absentDeduction := payroll.RoundMoney(perDay.Mul(decimal.NewFromInt(2)).Mul(decimal.NewFromInt(int64(summary.AbsentDays))))

	excessLate := summary.LateDays - settings.MonthlyLateAllowance
	if excessLate < 0 {
		excessLate = 0
	}
	lateDeduction, lateDetails := progressiveDeduction(perDay, excessLate)

	excessHalf := summary.HalfDays - settings.HalfDayAllowance
	if excessHalf < 0 {
		excessHalf = 0
	}
	halfDayDeduction, _ := progressiveDeduction(perDay, excessHalf)

	chargeback := decimal.Zero
	refund := decimal.Zero
	for _, adj := range adjustments {
		switch adj.Kind {
		case domain.AdjustmentChargeback:
			chargeback = chargeback.Add(adj.Amount)
		case domain.AdjustmentRefund:
			refund = refund.Add(adj.Amount)
		}
	}
	chargeback = payroll.RoundMoney(chargeback)
	refund = payroll.RoundMoney(refund)

	total := absentDeduction.Add(lateDeduction).Add(halfDayDeduction).Add(chargeback).Add(refund)

	commission := decimal.Zero
	bonus := employee.Bonus
	dept, err := s.salesDeptRepo.FindSalesDepartmentByEmployeeID(ctx, employee.EmployeeID)
	if err == nil {
		commission = dept.CommissionAmount
		bonus = bonus.Add(dept.SalesBonus)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogWarn(ctx, "Failed to load sales department for payroll view",
			slog.String("employee_id", employee.EmployeeID), slog.String("error", err.Error()))
	}

	return domain.DeductionBreakdown{
		EmployeeID:          employee.EmployeeID,
		Month:               summary.Month,
		BaseSalary:          payroll.RoundMoney(baseSalary),
		PerDaySalary:        payroll.RoundMoney(perDay),
		AbsentDays:          summary.AbsentDays,
		LateDays:            summary.LateDays,
		HalfDays:            summary.HalfDays,
		LateAllowance:       settings.MonthlyLateAllowance,
		HalfDayAllowance:    settings.HalfDayAllowance,
		AbsentDeduction:     absentDeduction,
		LateDeduction:       lateDeduction,
		HalfDayDeduction:    halfDayDeduction,
		ChargebackDeduction: chargeback,
		RefundDeduction:     refund,
		TotalDeduction:      total,
		LateDetails:         lateDetails,

		DeductionOnlyFinalSalary: payroll.RoundMoney(baseSalary.Sub(total)),
		PayrollFinalSalary:       payroll.RoundMoney(baseSalary.Add(commission).Add(bonus).Sub(total)),
	}
}

// CalculateAllEmployeesDeductions aggregates deductions across all active
// employees for a month. Employees without an attendance summary are skipped.
func (s *deductionService) CalculateAllEmployeesDeductions(ctx context.Context, month string) (*domain.BatchDeductionResult, error) {
	if month == "" {
		month = payroll.MonthLabel(s.Now())
	}

	employees, err := s.employeeRepo.ListActiveEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	summaries, err := s.attendanceRepo.ListAttendanceSummariesByMonth(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance summaries for %s: %w", month, err)
	}

	settings := s.settingsOrDefaults(ctx)

	result := &domain.BatchDeductionResult{
		Month:           month,
		TotalDeductions: decimal.Zero,
		TotalNetSalary:  decimal.Zero,
	}

	for _, employee := range employees {
		summary, ok := summaries[employee.EmployeeID]
		if !ok {
			continue
		}

		account, err := s.accountRepo.FindAccountByEmployeeID(ctx, employee.EmployeeID)
		if err != nil || account.BaseSalary == nil {
			s.LogWarn(ctx, "Skipping employee without usable payroll account in deduction batch",
				slog.String("employee_id", employee.EmployeeID))
			continue
		}

		adjustments, err := s.attendanceRepo.ListAdjustments(ctx, employee.EmployeeID, month)
		if err != nil {
			s.LogError(ctx, err, "Failed to load adjustments in deduction batch",
				slog.String("employee_id", employee.EmployeeID))
			continue
		}

		breakdown := s.buildBreakdown(ctx, employee, *account.BaseSalary, summary, adjustments, settings)
		result.Results = append(result.Results, breakdown)
		result.TotalDeductions = result.TotalDeductions.Add(breakdown.TotalDeduction)
		// The batch summary tracks what attendance cost the company, so it
		// sums the deduction-only figure rather than the payroll net.
		result.TotalNetSalary = result.TotalNetSalary.Add(breakdown.DeductionOnlyFinalSalary)
	}

	result.TotalEmployees = len(result.Results)
	return result, nil
}
