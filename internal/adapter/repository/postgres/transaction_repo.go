package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/infrastructure/postgres/generated"
	"github.com/iho/ledgerbook/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new transaction header.
func (r *TransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) error {
	row, err := r.queries.CreateTransaction(ctx, generated.CreateTransactionParams{
		OccurredAt:  timeToPgTimestamptz(transaction.OccurredAt),
		Description: transaction.Description,
		Kind:        string(transaction.Kind),
		Currency:    transaction.Currency,
		Category:    transaction.Category,
		CreatedBy:   transaction.CreatedBy,
		CreatedAt:   timeToPgTimestamptz(transaction.CreatedAt),
		PeriodID:    int64PtrToPgInt8(transaction.PeriodID),
	})
	if err != nil {
		return mapConstraintError(err)
	}

	transaction.ID = row.ID

	return nil
}

// GetByID retrieves a transaction by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	row, err := r.queries.GetTransactionByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return rowToTransaction(row), nil
}

// List lists transactions matching the filter, newest first.
func (r *TransactionRepository) List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	var kind pgtype.Text
	if filter.Kind != nil {
		kind = pgtype.Text{String: string(*filter.Kind), Valid: true}
	}

	rows, err := r.queries.ListTransactions(ctx, generated.ListTransactionsParams{
		From:     timePtrToPgTimestamptz(filter.From),
		To:       timePtrToPgTimestamptz(filter.To),
		PeriodID: int64PtrToPgInt8(filter.PeriodID),
		Kind:     kind,
		Limit:    int32(filter.Limit),
		Offset:   int32(filter.Offset),
	})
	if err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, rowToTransaction(row))
	}

	return transactions, nil
}

// Update updates a transaction header.
func (r *TransactionRepository) Update(ctx context.Context, transaction *domain.Transaction) error {
	return r.queries.UpdateTransaction(ctx, generated.UpdateTransactionParams{
		ID:          transaction.ID,
		OccurredAt:  timeToPgTimestamptz(transaction.OccurredAt),
		Description: transaction.Description,
		Kind:        string(transaction.Kind),
		Category:    transaction.Category,
		PeriodID:    int64PtrToPgInt8(transaction.PeriodID),
	})
}

// Delete removes a transaction header within the given transaction.
func (r *TransactionRepository) Delete(ctx context.Context, tx usecase.Transaction, id int64) error {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	affected, err := queries.DeleteTransaction(ctx, id)
	if err != nil {
		return mapConstraintError(err)
	}
	if affected == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

func rowToTransaction(row generated.Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:          row.ID,
		OccurredAt:  row.OccurredAt.Time,
		Description: row.Description,
		Kind:        domain.TransactionKind(row.Kind),
		Currency:    row.Currency,
		Category:    row.Category,
		CreatedBy:   row.CreatedBy,
		CreatedAt:   row.CreatedAt.Time,
		PeriodID:    pgInt8ToInt64Ptr(row.PeriodID),
	}
}
