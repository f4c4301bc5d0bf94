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
	"github.com/google/uuid"
)

// paymentService finalizes salary payments. All writes of a single payment
// happen in one database transaction so a failure leaves no partial state.
type paymentService struct {
	BaseService
	employeeRepo  portsrepo.EmployeeRepositoryFacade
	salaryLogRepo portsrepo.SalaryLogRepositoryWithTx
	salesDeptRepo portsrepo.SalesDepartmentRepositoryFacade
	financeRepo   portsrepo.FinanceRepositoryFacade
	hrLogRepo     portsrepo.HRLogWriter
}

// NewPaymentService creates a new salary payment finalization service.
func NewPaymentService(
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	salaryLogRepo portsrepo.SalaryLogRepositoryWithTx,
	salesDeptRepo portsrepo.SalesDepartmentRepositoryFacade,
	financeRepo portsrepo.FinanceRepositoryFacade,
	hrLogRepo portsrepo.HRLogWriter,
) portssvc.PaymentSvc {
	return &paymentService{
		BaseService:   newBaseService(),
		employeeRepo:  employeeRepo,
		salaryLogRepo: salaryLogRepo,
		salesDeptRepo: salesDeptRepo,
		financeRepo:   financeRepo,
		hrLogRepo:     hrLogRepo,
	}
}

var _ portssvc.PaymentSvc = (*paymentService)(nil)

// MarkSalaryPaid finalizes the current month's unpaid salary log for an
// employee: the log is marked paid, the employee's bonus and sales bonus are
// reset to zero, and a completed transaction plus a salary expense are
// recorded. Everything commits together or not at all.
func (s *paymentService) MarkSalaryPaid(ctx context.Context, employeeID string, paymentMethod string, actingUserID string, isAdmin bool) (*domain.PaymentReceipt, error) {
	if paymentMethod == "" {
		paymentMethod = domain.PaymentMethodCash
	}

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}
	if !employee.IsActive() {
		return nil, fmt.Errorf("employee %s is not active: %w", employeeID, apperrors.ErrInvalidState)
	}

	now := s.Now()
	month := payroll.MonthLabel(now)
	processedBy := actingUserID
	if isAdmin {
		processedBy = domain.AdminProcessor
	}

	tx, err := s.salaryLogRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = s.salaryLogRepo.Rollback(ctx, tx) }()

	log, err := s.salaryLogRepo.FindUnpaidLogForUpdate(ctx, tx, employeeID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to lock salary log for employee %s: %w", employeeID, err)
	}
	if log == nil {
		return nil, fmt.Errorf("no unpaid salary log for employee %s in %s: %w", employeeID, month, apperrors.ErrNoUnpaidSalary)
	}

	if err := s.salaryLogRepo.MarkPaidInTx(ctx, tx, log.SalaryLogID, now, processedBy, paymentMethod); err != nil {
		return nil, fmt.Errorf("failed to mark salary log %s paid: %w", log.SalaryLogID, err)
	}

	if err := s.employeeRepo.ResetBonusInTx(ctx, tx, employeeID, processedBy, now); err != nil {
		return nil, fmt.Errorf("failed to reset bonus for employee %s: %w", employeeID, err)
	}
	if employee.Department == domain.DepartmentSales {
		if err := s.salesDeptRepo.ResetSalesBonusInTx(ctx, tx, employeeID, processedBy, now); err != nil {
			return nil, fmt.Errorf("failed to reset sales bonus for employee %s: %w", employeeID, err)
		}
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		EmployeeID:    employeeID,
		Type:          domain.TransactionSalary,
		Status:        domain.TransactionCompleted,
		Amount:        log.NetSalary,
		Method:        paymentMethod,
		CreatedAt:     now,
	}
	if err := s.financeRepo.CreateTransactionInTx(ctx, tx, txn); err != nil {
		return nil, fmt.Errorf("failed to record salary transaction for employee %s: %w", employeeID, err)
	}

	expense := domain.Expense{
		ExpenseID:     uuid.NewString(),
		TransactionID: txn.TransactionID,
		Category:      domain.ExpenseSalary,
		Amount:        log.NetSalary,
		Description:   fmt.Sprintf("salary payment for %s (%s)", employee.Name, month),
		CreatedAt:     now,
	}
	if err := s.financeRepo.CreateExpenseInTx(ctx, tx, expense); err != nil {
		return nil, fmt.Errorf("failed to record salary expense for employee %s: %w", employeeID, err)
	}

	if !isAdmin {
		entry := domain.HRLog{
			HRLogID:         uuid.NewString(),
			ActorEmployeeID: actingUserID,
			Action:          "salary_paid",
			Details:         fmt.Sprintf("salary of employee %s for %s paid via %s", employeeID, month, paymentMethod),
			CreatedAt:       now,
		}
		if err := s.hrLogRepo.SaveHRLogInTx(ctx, tx, entry); err != nil {
			return nil, fmt.Errorf("failed to record HR audit entry for employee %s: %w", employeeID, err)
		}
	}

	if err := s.salaryLogRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit salary payment for employee %s: %w", employeeID, err)
	}

	s.LogInfo(ctx, "Salary paid",
		slog.String("employee_id", employeeID),
		slog.String("month", month),
		slog.String("amount", log.NetSalary.String()),
		slog.String("processed_by", processedBy),
	)
	return &domain.PaymentReceipt{
		EmployeeID:    employeeID,
		SalaryLogID:   log.SalaryLogID,
		TransactionID: txn.TransactionID,
		ExpenseID:     expense.ExpenseID,
		Amount:        log.NetSalary,
		PaymentMethod: paymentMethod,
		PaidOn:        now,
	}, nil
}

// MarkSalariesPaidBulk finalizes payments for multiple employees. Each
// employee is processed in its own transaction so one failure does not roll
// back the others.
func (s *paymentService) MarkSalariesPaidBulk(ctx context.Context, employeeIDs []string, paymentMethod string, actingUserID string, isAdmin bool) []domain.BulkPaymentRow {
	rows := make([]domain.BulkPaymentRow, 0, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		receipt, err := s.MarkSalaryPaid(ctx, employeeID, paymentMethod, actingUserID, isAdmin)
		row := domain.BulkPaymentRow{EmployeeID: employeeID, Receipt: receipt}
		if err != nil {
			row.Error = bulkErrorMessage(err)
			s.LogWarn(ctx, "Bulk payment skipped employee",
				slog.String("employee_id", employeeID),
				slog.String("reason", row.Error),
			)
		}
		rows = append(rows, row)
	}
	return rows
}

// bulkErrorMessage keeps expected business outcomes readable in bulk results
// without leaking wrapped internals.
func bulkErrorMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrNoUnpaidSalary):
		return "no unpaid salary for the current month"
	case errors.Is(err, apperrors.ErrNotFound):
		return "employee not found"
	default:
		return err.Error()
	}
}
