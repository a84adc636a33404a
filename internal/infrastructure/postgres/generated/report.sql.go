package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const accountMovements = `-- name: AccountMovements :many
SELECT a.code AS account_code,
       a.name AS account_name,
       a.class AS account_class,
       COALESCE(SUM(e.debit), 0)::NUMERIC AS total_debit,
       COALESCE(SUM(e.credit), 0)::NUMERIC AS total_credit
FROM entries e
JOIN accounts a ON a.id = e.account_id
JOIN transactions t ON t.id = e.transaction_id
WHERE ($1::timestamptz IS NULL OR t.occurred_at >= $1)
  AND ($2::timestamptz IS NULL OR t.occurred_at <= $2)
GROUP BY a.code, a.name, a.class
ORDER BY a.code
`

type AccountMovementsParams struct {
	From pgtype.Timestamptz `json:"from"`
	To   pgtype.Timestamptz `json:"to"`
}

type AccountMovementsRow struct {
	AccountCode  string         `json:"account_code"`
	AccountName  string         `json:"account_name"`
	AccountClass string         `json:"account_class"`
	TotalDebit   pgtype.Numeric `json:"total_debit"`
	TotalCredit  pgtype.Numeric `json:"total_credit"`
}

func (q *Queries) AccountMovements(ctx context.Context, arg AccountMovementsParams) ([]AccountMovementsRow, error) {
	rows, err := q.db.Query(ctx, accountMovements, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []AccountMovementsRow{}
	for rows.Next() {
		var i AccountMovementsRow
		if err := rows.Scan(
			&i.AccountCode,
			&i.AccountName,
			&i.AccountClass,
			&i.TotalDebit,
			&i.TotalCredit,
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

const billingStats = `-- name: BillingStats :one
SELECT COUNT(*)::BIGINT AS invoice_count,
       COALESCE(SUM(grand_total), 0)::NUMERIC AS total_sales,
       COALESCE(SUM(subtotal), 0)::NUMERIC AS total_subtotal,
       COALESCE(SUM(tax), 0)::NUMERIC AS total_tax,
       COALESCE(SUM(discount), 0)::NUMERIC AS total_discounts,
       COALESCE(AVG(grand_total), 0)::NUMERIC AS average_sale
FROM invoices
WHERE ($1::timestamptz IS NULL OR issued_at >= $1)
  AND ($2::timestamptz IS NULL OR issued_at <= $2)
`

type BillingStatsParams struct {
	From pgtype.Timestamptz `json:"from"`
	To   pgtype.Timestamptz `json:"to"`
}

type BillingStatsRow struct {
	InvoiceCount   int64          `json:"invoice_count"`
	TotalSales     pgtype.Numeric `json:"total_sales"`
	TotalSubtotal  pgtype.Numeric `json:"total_subtotal"`
	TotalTax       pgtype.Numeric `json:"total_tax"`
	TotalDiscounts pgtype.Numeric `json:"total_discounts"`
	AverageSale    pgtype.Numeric `json:"average_sale"`
}

func (q *Queries) BillingStats(ctx context.Context, arg BillingStatsParams) (BillingStatsRow, error) {
	row := q.db.QueryRow(ctx, billingStats, arg.From, arg.To)
	var i BillingStatsRow
	err := row.Scan(
		&i.InvoiceCount,
		&i.TotalSales,
		&i.TotalSubtotal,
		&i.TotalTax,
		&i.TotalDiscounts,
		&i.AverageSale,
	)
	return i, err
}

const majorAccountName = `-- name: MajorAccountName :one
SELECT COALESCE(
    (SELECT name FROM accounts WHERE code = $1 LIMIT 1),
    ''
)::TEXT AS name
`

func (q *Queries) MajorAccountName(ctx context.Context, code string) (string, error) {
	row := q.db.QueryRow(ctx, majorAccountName, code)
	var name string
	err := row.Scan(&name)
	return name, err
}

const topClients = `-- name: TopClients :many
SELECT c.id AS client_id,
       c.name AS name,
       c.tax_id AS tax_id,
       COUNT(i.id)::BIGINT AS invoice_count,
       COALESCE(SUM(i.grand_total), 0)::NUMERIC AS total_amount
FROM invoices i
JOIN clients c ON c.id = i.client_id
WHERE ($1::timestamptz IS NULL OR i.issued_at >= $1)
  AND ($2::timestamptz IS NULL OR i.issued_at <= $2)
GROUP BY c.id, c.name, c.tax_id
ORDER BY total_amount DESC
LIMIT $3
`

type TopClientsParams struct {
	From  pgtype.Timestamptz `json:"from"`
	To    pgtype.Timestamptz `json:"to"`
	Limit int32              `json:"limit"`
}

type TopClientsRow struct {
	ClientID     int64          `json:"client_id"`
	Name         string         `json:"name"`
	TaxID        string         `json:"tax_id"`
	InvoiceCount int64          `json:"invoice_count"`
	TotalAmount  pgtype.Numeric `json:"total_amount"`
}

func (q *Queries) TopClients(ctx context.Context, arg TopClientsParams) ([]TopClientsRow, error) {
	rows, err := q.db.Query(ctx, topClients, arg.From, arg.To, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []TopClientsRow{}
	for rows.Next() {
		var i TopClientsRow
		if err := rows.Scan(
			&i.ClientID,
			&i.Name,
			&i.TaxID,
			&i.InvoiceCount,
			&i.TotalAmount,
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
