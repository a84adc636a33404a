package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createInvoiceLine = `-- name: CreateInvoiceLine :one
INSERT INTO invoice_lines (invoice_id, product_id, description, quantity, unit_price, discount_percent, discount_amount, subtotal, tax, total)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id, invoice_id, product_id, description, quantity, unit_price, discount_percent, discount_amount, subtotal, tax, total
`

type CreateInvoiceLineParams struct {
	InvoiceID       string         `json:"invoice_id"`
	ProductID       int64          `json:"product_id"`
	Description     string         `json:"description"`
	Quantity        pgtype.Numeric `json:"quantity"`
	UnitPrice       pgtype.Numeric `json:"unit_price"`
	DiscountPercent pgtype.Numeric `json:"discount_percent"`
	DiscountAmount  pgtype.Numeric `json:"discount_amount"`
	Subtotal        pgtype.Numeric `json:"subtotal"`
	Tax             pgtype.Numeric `json:"tax"`
	Total           pgtype.Numeric `json:"total"`
}

func (q *Queries) CreateInvoiceLine(ctx context.Context, arg CreateInvoiceLineParams) (InvoiceLine, error) {
	row := q.db.QueryRow(ctx, createInvoiceLine,
		arg.InvoiceID,
		arg.ProductID,
		arg.Description,
		arg.Quantity,
		arg.UnitPrice,
		arg.DiscountPercent,
		arg.DiscountAmount,
		arg.Subtotal,
		arg.Tax,
		arg.Total,
	)
	var i InvoiceLine
	err := row.Scan(
		&i.ID,
		&i.InvoiceID,
		&i.ProductID,
		&i.Description,
		&i.Quantity,
		&i.UnitPrice,
		&i.DiscountPercent,
		&i.DiscountAmount,
		&i.Subtotal,
		&i.Tax,
		&i.Total,
	)
	return i, err
}

const deleteInvoiceLine = `-- name: DeleteInvoiceLine :execrows
DELETE FROM invoice_lines WHERE id = $1
`

func (q *Queries) DeleteInvoiceLine(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteInvoiceLine, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getInvoiceLineByID = `-- name: GetInvoiceLineByID :one
SELECT id, invoice_id, product_id, description, quantity, unit_price, discount_percent, discount_amount, subtotal, tax, total FROM invoice_lines WHERE id = $1
`

func (q *Queries) GetInvoiceLineByID(ctx context.Context, id int64) (InvoiceLine, error) {
	row := q.db.QueryRow(ctx, getInvoiceLineByID, id)
	var i InvoiceLine
	err := row.Scan(
		&i.ID,
		&i.InvoiceID,
		&i.ProductID,
		&i.Description,
		&i.Quantity,
		&i.UnitPrice,
		&i.DiscountPercent,
		&i.DiscountAmount,
		&i.Subtotal,
		&i.Tax,
		&i.Total,
	)
	return i, err
}

const listInvoiceLines = `-- name: ListInvoiceLines :many
SELECT id, invoice_id, product_id, description, quantity, unit_price, discount_percent, discount_amount, subtotal, tax, total FROM invoice_lines WHERE invoice_id = $1 ORDER BY id
`

func (q *Queries) ListInvoiceLines(ctx context.Context, invoiceID string) ([]InvoiceLine, error) {
	rows, err := q.db.Query(ctx, listInvoiceLines, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []InvoiceLine{}
	for rows.Next() {
		var i InvoiceLine
		if err := rows.Scan(
			&i.ID,
			&i.InvoiceID,
			&i.ProductID,
			&i.Description,
			&i.Quantity,
			&i.UnitPrice,
			&i.DiscountPercent,
			&i.DiscountAmount,
			&i.Subtotal,
			&i.Tax,
			&i.Total,
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

const updateInvoiceLine = `-- name: UpdateInvoiceLine :exec
UPDATE invoice_lines
SET description = $2, quantity = $3, unit_price = $4, discount_percent = $5, discount_amount = $6, subtotal = $7, tax = $8, total = $9
WHERE id = $1
`

type UpdateInvoiceLineParams struct {
	ID              int64          `json:"id"`
	Description     string         `json:"description"`
	Quantity        pgtype.Numeric `json:"quantity"`
	UnitPrice       pgtype.Numeric `json:"unit_price"`
	DiscountPercent pgtype.Numeric `json:"discount_percent"`
	DiscountAmount  pgtype.Numeric `json:"discount_amount"`
	Subtotal        pgtype.Numeric `json:"subtotal"`
	Tax             pgtype.Numeric `json:"tax"`
	Total           pgtype.Numeric `json:"total"`
}

func (q *Queries) UpdateInvoiceLine(ctx context.Context, arg UpdateInvoiceLineParams) error {
	_, err := q.db.Exec(ctx, updateInvoiceLine,
		arg.ID,
		arg.Description,
		arg.Quantity,
		arg.UnitPrice,
		arg.DiscountPercent,
		arg.DiscountAmount,
		arg.Subtotal,
		arg.Tax,
		arg.Total,
	)
	return err
}
