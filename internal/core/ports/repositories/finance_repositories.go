package repositories

import (
	"context"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionWriter defines write operations for accounting transactions
type TransactionWriter interface {
	// CreateTransactionInTx persists a new accounting transaction within the transaction.
	CreateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error
}

// ExpenseWriter defines write operations for expense records
type ExpenseWriter interface {
	// CreateExpenseInTx persists a new expense within the transaction.
	CreateExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.Expense) error
}

// FinanceReader defines read operations for accounting records
type FinanceReader interface {
	// FindTransactionByID retrieves a transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
}

// FinanceRepositoryFacade combines the accounting-record repository interfaces
type FinanceRepositoryFacade interface {
	TransactionWriter
	ExpenseWriter
	FinanceReader
}
