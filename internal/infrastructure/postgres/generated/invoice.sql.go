package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createInvoice = `-- name: CreateInvoice :one
INSERT INTO invoices (id, number, client_id, transaction_id, subtotal, discount, tax, grand_total, payment_terms, salesperson, notes, issued_at, due_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id, number, client_id, transaction_id, subtotal, discount, tax, grand_total, payment_terms, salesperson, notes, issued_at, due_at
`

type CreateInvoiceParams struct {
	ID            string             `json:"id"`
	Number        string             `json:"number"`
	ClientID      pgtype.Int8        `json:"client_id"`
	TransactionID pgtype.Int8        `json:"transaction_id"`
	Subtotal      pgtype.Numeric     `json:"subtotal"`
	Discount      pgtype.Numeric     `json:"discount"`
	Tax           pgtype.Numeric     `json:"tax"`
	GrandTotal    pgtype.Numeric     `json:"grand_total"`
	PaymentTerms  string             `json:"payment_terms"`
	Salesperson   string             `json:"salesperson"`
	Notes         string             `json:"notes"`
	IssuedAt      pgtype.Timestamptz `json:"issued_at"`
	DueAt         pgtype.Timestamptz `json:"due_at"`
}

func (q *Queries) CreateInvoice(ctx context.Context, arg CreateInvoiceParams) (Invoice, error) {
	row := q.db.QueryRow(ctx, createInvoice,
		arg.ID,
		arg.Number,
		arg.ClientID,
		arg.TransactionID,
		arg.Subtotal,
		arg.Discount,
		arg.Tax,
		arg.GrandTotal,
		arg.PaymentTerms,
		arg.Salesperson,
		arg.Notes,
		arg.IssuedAt,
		arg.DueAt,
	)
	var i Invoice
	err := row.Scan(
		&i.ID,
		&i.Number,
		&i.ClientID,
		&i.TransactionID,
		&i.Subtotal,
		&i.Discount,
		&i.Tax,
		&i.GrandTotal,
		&i.PaymentTerms,
		&i.Salesperson,
		&i.Notes,
		&i.IssuedAt,
		&i.DueAt,
	)
	return i, err
}

const deleteInvoice = `-- name: DeleteInvoice :execrows
DELETE FROM invoices WHERE id = $1
`

func (q *Queries) DeleteInvoice(ctx context.Context, id string) (int64, error) {
	result, err := q.db.Exec(ctx, deleteInvoice, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getInvoiceByID = `-- name: GetInvoiceByID :one
SELECT id, number, client_id, transaction_id, subtotal, discount, tax, grand_total, payment_terms, salesperson, notes, issued_at, due_at FROM invoices WHERE id = $1
`

func (q *Queries) GetInvoiceByID(ctx context.Context, id string) (Invoice, error) {
	row := q.db.QueryRow(ctx, getInvoiceByID, id)
	var i Invoice
	err := row.Scan(
		&i.ID,
		&i.Number,
		&i.ClientID,
		&i.TransactionID,
		&i.Subtotal,
		&i.Discount,
		&i.Tax,
		&i.GrandTotal,
		&i.PaymentTerms,
		&i.Salesperson,
		&i.Notes,
		&i.IssuedAt,
		&i.DueAt,
	)
	return i, err
}

const getInvoiceByIDForUpdate = `-- name: GetInvoiceByIDForUpdate :one
SELECT id, number, client_id, transaction_id, subtotal, discount, tax, grand_total, payment_terms, salesperson, notes, issued_at, due_at FROM invoices WHERE id = $1 FOR UPDATE
`

func (q *Queries) GetInvoiceByIDForUpdate(ctx context.Context, id string) (Invoice, error) {
	row := q.db.QueryRow(ctx, getInvoiceByIDForUpdate, id)
	var i Invoice
	err := row.Scan(
		&i.ID,
		&i.Number,
		&i.ClientID,
		&i.TransactionID,
		&i.Subtotal,
		&i.Discount,
		&i.Tax,
		&i.GrandTotal,
		&i.PaymentTerms,
		&i.Salesperson,
		&i.Notes,
		&i.IssuedAt,
		&i.DueAt,
	)
	return i, err
}

const getInvoiceByNumber = `-- name: GetInvoiceByNumber :one
SELECT id, number, client_id, transaction_id, subtotal, discount, tax, grand_total, payment_terms, salesperson, notes, issued_at, due_at FROM invoices WHERE number = $1
`

func (q *Queries) GetInvoiceByNumber(ctx context.Context, number string) (Invoice, error) {
	row := q.db.QueryRow(ctx, getInvoiceByNumber, number)
	var i Invoice
	err := row.Scan(
		&i.ID,
		&i.Number,
		&i.ClientID,
		&i.TransactionID,
		&i.Subtotal,
		&i.Discount,
		&i.Tax,
		&i.GrandTotal,
		&i.PaymentTerms,
		&i.Salesperson,
		&i.Notes,
		&i.IssuedAt,
		&i.DueAt,
	)
	return i, err
}

const listInvoices = `-- name: ListInvoices :many
SELECT id, number, client_id, transaction_id, subtotal, discount, tax, grand_total, payment_terms, salesperson, notes, issued_at, due_at FROM invoices
WHERE ($1::bigint IS NULL OR client_id = $1)
  AND ($2::timestamptz IS NULL OR issued_at >= $2)
  AND ($3::timestamptz IS NULL OR issued_at <= $3)
ORDER BY issued_at DESC, number DESC
LIMIT $4 OFFSET $5
`

type ListInvoicesParams struct {
	ClientID pgtype.Int8        `json:"client_id"`
	From     pgtype.Timestamptz `json:"from"`
	To       pgtype.Timestamptz `json:"to"`
	Limit    int32              `json:"limit"`
	Offset   int32              `json:"offset"`
}

func (q *Queries) ListInvoices(ctx context.Context, arg ListInvoicesParams) ([]Invoice, error) {
	rows, err := q.db.Query(ctx, listInvoices,
		arg.ClientID,
		arg.From,
		arg.To,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Invoice{}
	for rows.Next() {
		var i Invoice
		if err := rows.Scan(
			&i.ID,
			&i.Number,
			&i.ClientID,
			&i.TransactionID,
			&i.Subtotal,
			&i.Discount,
			&i.Tax,
			&i.GrandTotal,
			&i.PaymentTerms,
			&i.Salesperson,
			&i.Notes,
			&i.IssuedAt,
			&i.DueAt,
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

const maxInvoiceNumberForYear = `-- name: MaxInvoiceNumberForYear :one
SELECT COALESCE(MAX(number), '')::TEXT FROM invoices WHERE number LIKE $1
`

func (q *Queries) MaxInvoiceNumberForYear(ctx context.Context, pattern string) (string, error) {
	row := q.db.QueryRow(ctx, maxInvoiceNumberForYear, pattern)
	var column_1 string
	err := row.Scan(&column_1)
	return column_1, err
}

const updateInvoiceHeader = `-- name: UpdateInvoiceHeader :exec
UPDATE invoices
SET discount = $2, payment_terms = $3, salesperson = $4, notes = $5, due_at = $6
WHERE id = $1
`

type UpdateInvoiceHeaderParams struct {
	ID           string             `json:"id"`
	Discount     pgtype.Numeric     `json:"discount"`
	PaymentTerms string             `json:"payment_terms"`
	Salesperson  string             `json:"salesperson"`
	Notes        string             `json:"notes"`
	DueAt        pgtype.Timestamptz `json:"due_at"`
}

func (q *Queries) UpdateInvoiceHeader(ctx context.Context, arg UpdateInvoiceHeaderParams) error {
	_, err := q.db.Exec(ctx, updateInvoiceHeader,
		arg.ID,
		arg.Discount,
		arg.PaymentTerms,
		arg.Salesperson,
		arg.Notes,
		arg.DueAt,
	)
	return err
}

const updateInvoiceTotals = `-- name: UpdateInvoiceTotals :exec
UPDATE invoices
SET subtotal = $2, tax = $3, grand_total = $4
WHERE id = $1
`

type UpdateInvoiceTotalsParams struct {
	ID         string         `json:"id"`
	Subtotal   pgtype.Numeric `json:"subtotal"`
	Tax        pgtype.Numeric `json:"tax"`
	GrandTotal pgtype.Numeric `json:"grand_total"`
}

func (q *Queries) UpdateInvoiceTotals(ctx context.Context, arg UpdateInvoiceTotalsParams) error {
	_, err := q.db.Exec(ctx, updateInvoiceTotals,
		arg.ID,
		arg.Subtotal,
		arg.Tax,
		arg.GrandTotal,
	)
	return err
}
