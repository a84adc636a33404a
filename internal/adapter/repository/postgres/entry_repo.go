package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/infrastructure/postgres/generated"
	"github.com/iho/ledgerbook/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create inserts a journal entry.
func (r *EntryRepository) Create(ctx context.Context, entry *domain.JournalEntry) error {
	row, err := r.queries.CreateEntry(ctx, generated.CreateEntryParams{
		TransactionID: entry.TransactionID,
		AccountID:     entry.AccountID,
		Debit:         decimalToNumeric(entry.Debit),
		Credit:        decimalToNumeric(entry.Credit),
	})
	if err != nil {
		return mapConstraintError(err)
	}

	entry.ID = row.ID

	return nil
}

// GetByID retrieves a journal entry by ID.
func (r *EntryRepository) GetByID(ctx context.Context, id int64) (*domain.JournalEntry, error) {
	row, err := r.queries.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	return rowToEntry(row), nil
}

// Update updates an entry's account and amounts.
func (r *EntryRepository) Update(ctx context.Context, entry *domain.JournalEntry) error {
	return r.queries.UpdateEntry(ctx, generated.UpdateEntryParams{
		ID:        entry.ID,
		AccountID: entry.AccountID,
		Debit:     decimalToNumeric(entry.Debit),
		Credit:    decimalToNumeric(entry.Credit),
	})
}

// Delete removes a journal entry.
func (r *EntryRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.queries.DeleteEntry(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

// List lists entries matching the filter.
func (r *EntryRepository) List(ctx context.Context, filter domain.EntryFilter) ([]*domain.JournalEntry, error) {
	rows, err := r.queries.ListEntries(ctx, generated.ListEntriesParams{
		TransactionID: int64PtrToPgInt8(filter.TransactionID),
		AccountID:     int64PtrToPgInt8(filter.AccountID),
		Limit:         int32(filter.Limit),
		Offset:        int32(filter.Offset),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.JournalEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row))
	}

	return entries, nil
}

// SumByTransaction sums debit and credit over one transaction's entries.
func (r *EntryRepository) SumByTransaction(ctx context.Context, transactionID int64) (decimal.Decimal, decimal.Decimal, error) {
	row, err := r.queries.SumEntriesByTransaction(ctx, transactionID)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return numericToDecimal(row.TotalDebit), numericToDecimal(row.TotalCredit), nil
}

// CountByTransaction counts the entries referencing a transaction, inside the
// given database transaction.
func (r *EntryRepository) CountByTransaction(ctx context.Context, tx usecase.Transaction, transactionID int64) (int64, error) {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())
	return queries.CountEntriesByTransaction(ctx, transactionID)
}

// DeleteByTransaction removes all entries of a transaction, inside the given
// database transaction.
func (r *EntryRepository) DeleteByTransaction(ctx context.Context, tx usecase.Transaction, transactionID int64) error {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())
	return queries.DeleteEntriesByTransaction(ctx, transactionID)
}

func rowToEntry(row generated.Entry) *domain.JournalEntry {
	return &domain.JournalEntry{
		ID:            row.ID,
		TransactionID: row.TransactionID,
		AccountID:     row.AccountID,
		Debit:         numericToDecimal(row.Debit),
		Credit:        numericToDecimal(row.Credit),
	}
}
