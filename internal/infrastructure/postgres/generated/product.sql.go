package generated

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createProduct = `-- name: CreateProduct :one
INSERT INTO products (code, name, description, kind, category, unit_price, cost_price, unit, stock_on_hand, minimum_stock, taxable, active, registered_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id, code, name, description, kind, category, unit_price, cost_price, unit, stock_on_hand, minimum_stock, taxable, active, registered_at
`

type CreateProductParams struct {
	Code         string             `json:"code"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Kind         string             `json:"kind"`
	Category     string             `json:"category"`
	UnitPrice    pgtype.Numeric     `json:"unit_price"`
	CostPrice    pgtype.Numeric     `json:"cost_price"`
	Unit         string             `json:"unit"`
	StockOnHand  pgtype.Numeric     `json:"stock_on_hand"`
	MinimumStock pgtype.Numeric     `json:"minimum_stock"`
	Taxable      bool               `json:"taxable"`
	Active       bool               `json:"active"`
	RegisteredAt pgtype.Timestamptz `json:"registered_at"`
}

func (q *Queries) CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, createProduct,
		arg.Code,
		arg.Name,
		arg.Description,
		arg.Kind,
		arg.Category,
		arg.UnitPrice,
		arg.CostPrice,
		arg.Unit,
		arg.StockOnHand,
		arg.MinimumStock,
		arg.Taxable,
		arg.Active,
		arg.RegisteredAt,
	)
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.Name,
		&i.Description,
		&i.Kind,
		&i.Category,
		&i.UnitPrice,
		&i.CostPrice,
		&i.Unit,
		&i.StockOnHand,
		&i.MinimumStock,
		&i.Taxable,
		&i.Active,
		&i.RegisteredAt,
	)
	return i, err
}

const deleteProduct = `-- name: DeleteProduct :execrows
DELETE FROM products WHERE id = $1
`

func (q *Queries) DeleteProduct(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.Exec(ctx, deleteProduct, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const getProductByID = `-- name: GetProductByID :one
SELECT id, code, name, description, kind, category, unit_price, cost_price, unit, stock_on_hand, minimum_stock, taxable, active, registered_at FROM products WHERE id = $1
`

func (q *Queries) GetProductByID(ctx context.Context, id int64) (Product, error) {
	row := q.db.QueryRow(ctx, getProductByID, id)
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.Name,
		&i.Description,
		&i.Kind,
		&i.Category,
		&i.UnitPrice,
		&i.CostPrice,
		&i.Unit,
		&i.StockOnHand,
		&i.MinimumStock,
		&i.Taxable,
		&i.Active,
		&i.RegisteredAt,
	)
	return i, err
}

const getProductByIDForUpdate = `-- name: GetProductByIDForUpdate :one
SELECT id, code, name, description, kind, category, unit_price, cost_price, unit, stock_on_hand, minimum_stock, taxable, active, registered_at FROM products WHERE id = $1 FOR UPDATE
`

func (q *Queries) GetProductByIDForUpdate(ctx context.Context, id int64) (Product, error) {
	row := q.db.QueryRow(ctx, getProductByIDForUpdate, id)
	var i Product
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.Name,
		&i.Description,
		&i.Kind,
		&i.Category,
		&i.UnitPrice,
		&i.CostPrice,
		&i.Unit,
		&i.StockOnHand,
		&i.MinimumStock,
		&i.Taxable,
		&i.Active,
		&i.RegisteredAt,
	)
	return i, err
}

const listProducts = `-- name: ListProducts :many
SELECT id, code, name, description, kind, category, unit_price, cost_price, unit, stock_on_hand, minimum_stock, taxable, active, registered_at FROM products ORDER BY code LIMIT $1 OFFSET $2
`

type ListProductsParams struct {
	Limit  int32 `json:"limit"`
	Offset int32 `json:"offset"`
}

func (q *Queries) ListProducts(ctx context.Context, arg ListProductsParams) ([]Product, error) {
	rows, err := q.db.Query(ctx, listProducts, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Product{}
	for rows.Next() {
		var i Product
		if err := rows.Scan(
			&i.ID,
			&i.Code,
			&i.Name,
			&i.Description,
			&i.Kind,
			&i.Category,
			&i.UnitPrice,
			&i.CostPrice,
			&i.Unit,
			&i.StockOnHand,
			&i.MinimumStock,
			&i.Taxable,
			&i.Active,
			&i.RegisteredAt,
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

const updateProduct = `-- name: UpdateProduct :exec
UPDATE products
SET name = $2, description = $3, category = $4, unit_price = $5, cost_price = $6, unit = $7, minimum_stock = $8, taxable = $9, active = $10
WHERE id = $1
`

type UpdateProductParams struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	UnitPrice    pgtype.Numeric `json:"unit_price"`
	CostPrice    pgtype.Numeric `json:"cost_price"`
	Unit         string         `json:"unit"`
	MinimumStock pgtype.Numeric `json:"minimum_stock"`
	Taxable      bool           `json:"taxable"`
	Active       bool           `json:"active"`
}

func (q *Queries) UpdateProduct(ctx context.Context, arg UpdateProductParams) error {
	_, err := q.db.Exec(ctx, updateProduct,
		arg.ID,
		arg.Name,
		arg.Description,
		arg.Category,
		arg.UnitPrice,
		arg.CostPrice,
		arg.Unit,
		arg.MinimumStock,
		arg.Taxable,
		arg.Active,
	)
	return err
}

const updateProductStock = `-- name: UpdateProductStock :exec
UPDATE products SET stock_on_hand = $2 WHERE id = $1
`

type UpdateProductStockParams struct {
	ID          int64          `json:"id"`
	StockOnHand pgtype.Numeric `json:"stock_on_hand"`
}

func (q *Queries) UpdateProductStock(ctx context.Context, arg UpdateProductStockParams) error {
	_, err := q.db.Exec(ctx, updateProductStock, arg.ID, arg.StockOnHand)
	return err
}
