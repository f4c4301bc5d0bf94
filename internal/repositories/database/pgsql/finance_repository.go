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

type PgxFinanceRepository struct {
	BaseRepository
}

// newPgxFinanceRepository creates a new repository for accounting records.
func newPgxFinanceRepository(pool *pgxpool.Pool) portsrepo.FinanceRepositoryFacade {
	return &PgxFinanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FinanceRepositoryFacade = (*PgxFinanceRepository)(nil)

// CreateTransactionInTx persists a new accounting transaction within the transaction.
func (r *PgxFinanceRepository) CreateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, employee_id, type, status, amount, method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := tx.Exec(ctx, query,
		txn.TransactionID, txn.EmployeeID, string(txn.Type), string(txn.Status),
		txn.Amount, txn.Method, txn.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to create transaction "+txn.TransactionID, err)
	}
	return nil
}

// CreateExpenseInTx persists a new expense within the transaction.
func (r *PgxFinanceRepository) CreateExpenseInTx(ctx context.Context, tx pgx.Tx, expense domain.Expense) error {
	query := `
		INSERT INTO expenses (expense_id, transaction_id, category, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := tx.Exec(ctx, query,
		expense.ExpenseID, expense.TransactionID, string(expense.Category),
		expense.Amount, expense.Description, expense.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to create expense "+expense.ExpenseID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its unique identifier.
func (r *PgxFinanceRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, employee_id, type, status, amount, method, created_at
		FROM transactions
		WHERE transaction_id = $1;
	`
	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID, &m.EmployeeID, &m.Type, &m.Status, &m.Amount, &m.Method, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction "+transactionID, err)
	}

	txn := domain.Transaction{
		TransactionID: m.TransactionID,
		EmployeeID:    m.EmployeeID,
		Type:          domain.TransactionType(m.Type),
		Status:        domain.TransactionStatus(m.Status),
		Amount:        m.Amount,
		Method:        m.Method,
		CreatedAt:     m.CreatedAt,
	}
	return &txn, nil
}
