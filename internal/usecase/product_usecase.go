package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerbook/internal/domain"
)

// ProductUseCase handles the product/service catalog.
type ProductUseCase struct {
	productRepo ProductRepository
}

// NewProductUseCase creates a new ProductUseCase.
func NewProductUseCase(productRepo ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// CreateProductInput represents input for creating a product or service.
type CreateProductInput struct {
	Code         string
	Name         string
	Description  string
	Kind         domain.ProductKind
	Category     string
	UnitPrice    decimal.Decimal
	CostPrice    decimal.Decimal
	Unit         string
	StockOnHand  decimal.Decimal
	MinimumStock decimal.Decimal
	Taxable      bool
}

// CreateProduct registers a sellable product or service.
func (uc *ProductUseCase) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	if err := domain.ValidateAmount(input.UnitPrice); err != nil {
		return nil, err
	}

	kind := input.Kind
	if kind == "" {
		kind = domain.KindProduct
	}

	unit := input.Unit
	if unit == "" {
		unit = "UNIT"
	}

	product := &domain.Product{
		Code:         input.Code,
		Name:         input.Name,
		Description:  input.Description,
		Kind:         kind,
		Category:     input.Category,
		UnitPrice:    input.UnitPrice,
		CostPrice:    input.CostPrice,
		Unit:         unit,
		StockOnHand:  input.StockOnHand,
		MinimumStock: input.MinimumStock,
		Taxable:      input.Taxable,
		Active:       true,
		RegisteredAt: time.Now().UTC(),
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// GetProduct retrieves a product by ID.
func (uc *ProductUseCase) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

// ListProducts lists products with pagination.
func (uc *ProductUseCase) ListProducts(ctx context.Context, limit, offset int) ([]*domain.Product, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.productRepo.List(ctx, limit, offset)
}

// UpdateProductInput represents changes to a product. Nil fields keep their
// current value.
type UpdateProductInput struct {
	Name         *string
	Description  *string
	Category     *string
	UnitPrice    *decimal.Decimal
	CostPrice    *decimal.Decimal
	MinimumStock *decimal.Decimal
	Taxable      *bool
	Active       *bool
}

// UpdateProduct updates catalog fields of a product. Stock is maintained by
// invoicing, not settable here.
func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id int64, input UpdateProductInput) (*domain.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := domain.ValidateName(*input.Name); err != nil {
			return nil, err
		}
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.UnitPrice != nil {
		if err := domain.ValidateAmount(*input.UnitPrice); err != nil {
			return nil, err
		}
		product.UnitPrice = *input.UnitPrice
	}
	if input.CostPrice != nil {
		product.CostPrice = *input.CostPrice
	}
	if input.MinimumStock != nil {
		product.MinimumStock = *input.MinimumStock
	}
	if input.Taxable != nil {
		product.Taxable = *input.Taxable
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product. Products referenced by invoice lines
// cannot be removed.
func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id int64) error {
	if _, err := uc.productRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.productRepo.Delete(ctx, id)
}
