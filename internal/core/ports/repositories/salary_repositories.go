package repositories

import (
	"context"
	"time"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// SalaryLogReader defines read operations for salary log data
type SalaryLogReader interface {
	// FindSalaryLogByEmployeeAndMonth retrieves the salary log for an employee and month.
	FindSalaryLogByEmployeeAndMonth(ctx context.Context, employeeID string, month string) (*domain.NetSalaryLog, error)

	// ListSalaryLogsByEmployee retrieves the salary history of an employee,
	// newest first, using token-based pagination. It returns the logs, a token
	// for the next page, and an error.
	ListSalaryLogsByEmployee(ctx context.Context, employeeID string, limit int, nextToken *string) ([]domain.NetSalaryLog, *string, error)
}

// SalaryLogWriter defines write operations for salary log data
type SalaryLogWriter interface {
	// UpsertSalaryLog inserts the salary log for (employee, month), or updates the
	// existing row in place if one already exists and is still unpaid.
	UpsertSalaryLog(ctx context.Context, log domain.NetSalaryLog) (*domain.NetSalaryLog, error)
}

// SalaryLogTransactionSupport defines salary log operations scoped to a database transaction
type SalaryLogTransactionSupport interface {
	// FindUnpaidLogForUpdate selects the unpaid salary log for (employee, month)
	// and locks the row for update within the transaction. Returns nil when no
	// unpaid log exists.
	FindUnpaidLogForUpdate(ctx context.Context, tx pgx.Tx, employeeID string, month string) (*domain.NetSalaryLog, error)

	// MarkPaidInTx transitions a salary log to paid within the transaction.
	MarkPaidInTx(ctx context.Context, tx pgx.Tx, salaryLogID string, paidOn time.Time, processedBy string, method string) error
}

// SalaryLogRepositoryFacade combines all salary-log-related repository interfaces
type SalaryLogRepositoryFacade interface {
	SalaryLogReader
	SalaryLogWriter
	SalaryLogTransactionSupport
}

// SalaryLogRepositoryWithTx extends SalaryLogRepositoryFacade with transaction capabilities
type SalaryLogRepositoryWithTx interface {
	SalaryLogRepositoryFacade
	TransactionManager
}
