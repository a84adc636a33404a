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

// ProductRepository implements usecase.ProductRepository.
type ProductRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new product.
func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	row, err := r.queries.CreateProduct(ctx, generated.CreateProductParams{
		Code:         product.Code,
		Name:         product.Name,
		Description:  product.Description,
		Kind:         string(product.Kind),
		Category:     product.Category,
		UnitPrice:    decimalToNumeric(product.UnitPrice),
		CostPrice:    decimalToNumeric(product.CostPrice),
		Unit:         product.Unit,
		StockOnHand:  decimalToNumeric(product.StockOnHand),
		MinimumStock: decimalToNumeric(product.MinimumStock),
		Taxable:      product.Taxable,
		Active:       product.Active,
		RegisteredAt: timeToPgTimestamptz(product.RegisteredAt),
	})
	if err != nil {
		return mapConstraintError(err)
	}

	product.ID = row.ID

	return nil
}

// GetByID retrieves a product by ID.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	row, err := r.queries.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}

		return nil, err
	}

	return rowToProduct(row), nil
}

// GetByIDForUpdate retrieves a product with a FOR UPDATE lock, protecting the
// stock level for the duration of the transaction.
func (r *ProductRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Product, error) {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	row, err := queries.GetProductByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}

		return nil, err
	}

	return rowToProduct(row), nil
}

// List lists products ordered by code.
func (r *ProductRepository) List(ctx context.Context, limit, offset int) ([]*domain.Product, error) {
	rows, err := r.queries.ListProducts(ctx, generated.ListProductsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, rowToProduct(row))
	}

	return products, nil
}

// Update updates a product's catalog fields. Stock is written only through
// UpdateStock.
func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.queries.UpdateProduct(ctx, generated.UpdateProductParams{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Category:     product.Category,
		UnitPrice:    decimalToNumeric(product.UnitPrice),
		CostPrice:    decimalToNumeric(product.CostPrice),
		Unit:         product.Unit,
		MinimumStock: decimalToNumeric(product.MinimumStock),
		Taxable:      product.Taxable,
		Active:       product.Active,
	})
}

// UpdateStock sets a product's stock level within the given transaction.
func (r *ProductRepository) UpdateStock(ctx context.Context, tx usecase.Transaction, id int64, stock decimal.Decimal) error {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	return queries.UpdateProductStock(ctx, generated.UpdateProductStockParams{
		ID:          id,
		StockOnHand: decimalToNumeric(stock),
	})
}

// Delete removes a product. The foreign key on invoice lines restricts
// deletion of referenced products.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.queries.DeleteProduct(ctx, id)
	if err != nil {
		return mapConstraintError(err)
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

func rowToProduct(row generated.Product) *domain.Product {
	return &domain.Product{
		ID:           row.ID,
		Code:         row.Code,
		Name:         row.Name,
		Description:  row.Description,
		Kind:         domain.ProductKind(row.Kind),
		Category:     row.Category,
		UnitPrice:    numericToDecimal(row.UnitPrice),
		CostPrice:    numericToDecimal(row.CostPrice),
		Unit:         row.Unit,
		StockOnHand:  numericToDecimal(row.StockOnHand),
		MinimumStock: numericToDecimal(row.MinimumStock),
		Taxable:      row.Taxable,
		Active:       row.Active,
		RegisteredAt: row.RegisteredAt.Time,
	}
}
