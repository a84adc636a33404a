package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createTransaction = `-- name: CreateTransaction :one
INSERT INTO transactions (occurred_at, description, kind, currency, category, created_by, created_at, period_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, occurred_at, description, kind, currency, category, created_by, created_at, period_id
`

type CreateTransactionParams struct {
	OccurredAt  pgtype.Timestamptz `json:"occurred_at"`
	Description string             `json:"description"`
	Kind        string             `json:"kind"`
	Currency    string             `json:"currency"`
	Category    string             `json:"category"`
	CreatedBy   string             `json:"created_by"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	PeriodID    pgtype.Int8        `json:"period_id"`
}

func (q *Queries) CreateTransaction(ctx context.Context, arg CreateTransactionParams) (Transaction, error) {
	row := q.db.QueryRow(ctx, createTransaction,
		arg.OccurredAt,
		arg.Description,
		arg.Kind,
		arg.Currency,
		arg.Category,
		arg.CreatedBy,
		arg.CreatedAt,
		arg.PeriodID,
	)
	var i Transaction
	err := row.Scan(
		&i.ID,
		&i.OccurredAt,
		&i.Description,
		&i.Kind,
		&i.Currency,
		&i.Category,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.PeriodID,
	)
	return i, err
}

const deleteTransaction = `-- name: DeleteTransaction :execrows
DELETE FROM transactions WHERE id = $1
`

func (q *Queries) DeleteTransaction(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteTransaction, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getTransactionByID = `-- name: GetTransactionByID :one
SELECT id, occurred_at, description, kind, currency, category, created_by, created_at, period_id FROM transactions WHERE id = $1
`

func (q *Queries) GetTransactionByID(ctx context.Context, id int64) (Transaction, error) {
	row := q.db.QueryRow(ctx, getTransactionByID, id)
	var i Transaction
	err := row.Scan(
		&i.ID,
		&i.OccurredAt,
		&i.Description,
		&i.Kind,
		&i.Currency,
		&i.Category,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.PeriodID,
	)
	return i, err
}

const listTransactions = `-- name: ListTransactions :many
SELECT id, occurred_at, description, kind, currency, category, created_by, created_at, period_id FROM transactions
WHERE ($1::timestamptz IS NULL OR occurred_at >= $1)
  AND ($2::timestamptz IS NULL OR occurred_at <= $2)
  AND ($3::bigint IS NULL OR period_id = $3)
  AND ($4::text IS NULL OR kind = $4)
ORDER BY occurred_at DESC, id DESC
LIMIT $5 OFFSET $6
`

type ListTransactionsParams struct {
	From     pgtype.Timestamptz `json:"from"`
	To       pgtype.Timestamptz `json:"to"`
	PeriodID pgtype.Int8        `json:"period_id"`
	Kind     pgtype.Text        `json:"kind"`
	Limit    int32              `json:"limit"`
	Offset   int32              `json:"offset"`
}

func (q *Queries) ListTransactions(ctx context.Context, arg ListTransactionsParams) ([]Transaction, error) {
	rows, err := q.db.Query(ctx, listTransactions,
		arg.From,
		arg.To,
		arg.PeriodID,
		arg.Kind,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Transaction{}
	for rows.Next() {
		var i Transaction
		if err := rows.Scan(
			&i.ID,
			&i.OccurredAt,
			&i.Description,
			&i.Kind,
			&i.Currency,
			&i.Category,
			&i.CreatedBy,
			&i.CreatedAt,
			&i.PeriodID,
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

const updateTransaction = `-- name: UpdateTransaction :exec
UPDATE transactions
SET occurred_at = $2, description = $3, kind = $4, category = $5, period_id = $6
WHERE id = $1
`

type UpdateTransactionParams struct {
	ID          int64              `json:"id"`
	OccurredAt  pgtype.Timestamptz `json:"occurred_at"`
	Description string             `json:"description"`
	Kind        string             `json:"kind"`
	Category    string             `json:"category"`
	PeriodID    pgtype.Int8        `json:"period_id"`
}

func (q *Queries) UpdateTransaction(ctx context.Context, arg UpdateTransactionParams) error {
	_, err := q.db.Exec(ctx, updateTransaction,
		arg.ID,
		arg.OccurredAt,
		arg.Description,
		arg.Kind,
		arg.Category,
		arg.PeriodID,
	)
	return err
}
