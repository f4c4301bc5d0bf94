package repositories

import (
	"context"
	"time"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// SalesDepartmentReader defines read operations for sales department data
type SalesDepartmentReader interface {
	// FindSalesDepartmentByEmployeeID retrieves the sales department record of an employee.
	FindSalesDepartmentByEmployeeID(ctx context.Context, employeeID string) (*domain.SalesDepartment, error)
}

// SalesDepartmentWriter defines write operations for sales department data
type SalesDepartmentWriter interface {
	// SaveSalesDepartment persists a new sales department record.
	SaveSalesDepartment(ctx context.Context, dept domain.SalesDepartment) error

	// UpdateWithholdFlag flips the withhold routing flag.
	UpdateWithholdFlag(ctx context.Context, employeeID string, flag bool, userID string, now time.Time) error

	// UpdateSalesBonus sets the sales bonus accumulator.
	UpdateSalesBonus(ctx context.Context, employeeID string, amount decimal.Decimal, userID string, now time.Time) error
}

// SalesDepartmentTransactionSupport defines ledger operations scoped to a database transaction
type SalesDepartmentTransactionSupport interface {
	// FindSalesDepartmentForUpdate selects the sales department row for an
	// employee and locks it for update within the transaction.
	FindSalesDepartmentForUpdate(ctx context.Context, tx pgx.Tx, employeeID string) (*domain.SalesDepartment, error)

	// UpdateBalancesInTx writes both commission balances within the transaction.
	UpdateBalancesInTx(ctx context.Context, tx pgx.Tx, salesDepartmentID string, available decimal.Decimal, withheld decimal.Decimal, userID string, now time.Time) error

	// IncrementBalanceInTx atomically adds to one commission balance within the
	// transaction. Withheld selects the withheld balance over the available one.
	IncrementBalanceInTx(ctx context.Context, tx pgx.Tx, salesDepartmentID string, amount decimal.Decimal, withheld bool, userID string, now time.Time) error

	// ResetSalesBonusInTx zeroes the sales bonus within the transaction.
	ResetSalesBonusInTx(ctx context.Context, tx pgx.Tx, employeeID string, userID string, now time.Time) error
}

// SalesDepartmentRepositoryFacade combines all sales-department repository interfaces
type SalesDepartmentRepositoryFacade interface {
	SalesDepartmentReader
	SalesDepartmentWriter
	SalesDepartmentTransactionSupport
}

// SalesDepartmentRepositoryWithTx extends the facade with transaction capabilities
type SalesDepartmentRepositoryWithTx interface {
	SalesDepartmentRepositoryFacade
	TransactionManager
}

// ProjectReader defines read operations for sales project data
type ProjectReader interface {
	// FindProjectByID retrieves a project by its unique identifier.
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// FindCrackedLeadByID retrieves the cracked lead a project was closed against.
	FindCrackedLeadByID(ctx context.Context, crackedLeadID string) (*domain.CrackedLead, error)
}
