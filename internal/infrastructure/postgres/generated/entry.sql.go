package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const countEntriesByTransaction = `-- name: CountEntriesByTransaction :one
SELECT COUNT(*) FROM entries WHERE transaction_id = $1
`

func (q *Queries) CountEntriesByTransaction(ctx context.Context, transactionID int64) (int64, error) {
	row := q.db.QueryRow(ctx, countEntriesByTransaction, transactionID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const createEntry = `-- name: CreateEntry :one
INSERT INTO entries (transaction_id, account_id, debit, credit)
VALUES ($1, $2, $3, $4)
RETURNING id, transaction_id, account_id, debit, credit
`

type CreateEntryParams struct {
	TransactionID int64          `json:"transaction_id"`
	AccountID     int64          `json:"account_id"`
	Debit         pgtype.Numeric `json:"debit"`
	Credit        pgtype.Numeric `json:"credit"`
}

func (q *Queries) CreateEntry(ctx context.Context, arg CreateEntryParams) (Entry, error) {
	row := q.db.QueryRow(ctx, createEntry,
		arg.TransactionID,
		arg.AccountID,
		arg.Debit,
		arg.Credit,
	)
	var i Entry
	err := row.Scan(
		&i.ID,
		&i.TransactionID,
		&i.AccountID,
		&i.Debit,
		&i.Credit,
	)
	return i, err
}

const deleteEntriesByTransaction = `-- name: DeleteEntriesByTransaction :exec
DELETE FROM entries WHERE transaction_id = $1
`

func (q *Queries) DeleteEntriesByTransaction(ctx context.Context, transactionID int64) error {
	_, err := q.db.Exec(ctx, deleteEntriesByTransaction, transactionID)
	return err
}

const deleteEntry = `-- name: DeleteEntry :execrows
DELETE FROM entries WHERE id = $1
`

func (q *Queries) DeleteEntry(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteEntry, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getEntryByID = `-- name: GetEntryByID :one
SELECT id, transaction_id, account_id, debit, credit FROM entries WHERE id = $1
`

func (q *Queries) GetEntryByID(ctx context.Context, id int64) (Entry, error) {
	row := q.db.QueryRow(ctx, getEntryByID, id)
	var i Entry
	err := row.Scan(
		&i.ID,
		&i.TransactionID,
		&i.AccountID,
		&i.Debit,
		&i.Credit,
	)
	return i, err
}

const listEntries = `-- name: ListEntries :many
SELECT id, transaction_id, account_id, debit, credit FROM entries
WHERE ($1::bigint IS NULL OR transaction_id = $1)
  AND ($2::bigint IS NULL OR account_id = $2)
ORDER BY id
LIMIT $3 OFFSET $4
`

type ListEntriesParams struct {
	TransactionID pgtype.Int8 `json:"transaction_id"`
	AccountID     pgtype.Int8 `json:"account_id"`
	Limit         int32       `json:"limit"`
	Offset        int32       `json:"offset"`
}

func (q *Queries) ListEntries(ctx context.Context, arg ListEntriesParams) ([]Entry, error) {
	rows, err := q.db.Query(ctx, listEntries,
		arg.TransactionID,
		arg.AccountID,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Entry{}
	for rows.Next() {
		var i Entry
		if err := rows.Scan(
			&i.ID,
			&i.TransactionID,
			&i.AccountID,
			&i.Debit,
			&i.Credit,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const sumEntriesByTransaction = `-- name: SumEntriesByTransaction :one
SELECT COALESCE(SUM(debit), 0)::NUMERIC AS total_debit,
       COALESCE(SUM(credit), 0)::NUMERIC AS total_credit
FROM entries
WHERE transaction_id = $1
`

type SumEntriesByTransactionRow struct {
	TotalDebit  pgtype.Numeric `json:"total_debit"`
	TotalCredit pgtype.Numeric `json:"total_credit"`
}

func (q *Queries) SumEntriesByTransaction(ctx context.Context, transactionID int64) (SumEntriesByTransactionRow, error) {
	row := q.db.QueryRow(ctx, sumEntriesByTransaction, transactionID)
	var i SumEntriesByTransactionRow
	err := row.Scan(&i.TotalDebit, &i.TotalCredit)
	return i, err
}

const updateEntry = `-- name: UpdateEntry :exec
UPDATE entries SET account_id = $2, debit = $3, credit = $4 WHERE id = $1
`

type UpdateEntryParams struct {
	ID        int64          `json:"id"`
	AccountID int64          `json:"account_id"`
	Debit     pgtype.Numeric `json:"debit"`
	Credit    pgtype.Numeric `json:"credit"`
}

func (q *Queries) UpdateEntry(ctx context.Context, arg UpdateEntryParams) error {
	_, err := q.db.Exec(ctx, updateEntry,
		arg.ID,
		arg.AccountID,
		arg.Debit,
		arg.Credit,
	)
	return err
}
