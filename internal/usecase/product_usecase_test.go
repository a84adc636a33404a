package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/usecase"
	"github.com/iho/ledgerbook/internal/usecase/mocks"
)

func TestProductUseCase_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults applied", func(t *testing.T) {
		uc := usecase.NewProductUseCase(mocks.NewMockProductRepository())

		product, err := uc.CreateProduct(ctx, usecase.CreateProductInput{
			Code:      "PRD-001",
			Name:      "Widget",
			UnitPrice: decimal.RequireFromString("25.00"),
			Taxable:   true,
		})
		require.NoError(t, err)

		assert.Equal(t, domain.KindProduct, product.Kind)
		assert.Equal(t, "UNIT", product.Unit)
		assert.True(t, product.Active)
		assert.NotZero(t, product.ID)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		uc := usecase.NewProductUseCase(mocks.NewMockProductRepository())

		_, err := uc.CreateProduct(ctx, usecase.CreateProductInput{
			Code:      "PRD-002",
			UnitPrice: decimal.RequireFromString("10.00"),
		})
		require.ErrorIs(t, err, domain.ErrInvalidName)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		uc := usecase.NewProductUseCase(mocks.NewMockProductRepository())

		_, err := uc.CreateProduct(ctx, usecase.CreateProductInput{
			Code:      "PRD-003",
			Name:      "Widget",
			UnitPrice: decimal.RequireFromString("-1"),
		})
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestProductUseCase_UpdateProduct(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockProductRepository()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.CreateProduct(ctx, usecase.CreateProductInput{
		Code:      "PRD-010",
		Name:      "Service hour",
		Kind:      domain.KindService,
		UnitPrice: decimal.RequireFromString("80.00"),
		Taxable:   true,
	})
	require.NoError(t, err)

	newName := "Consulting hour"
	newPrice := decimal.RequireFromString("95.00")
	inactive := false

	updated, err := uc.UpdateProduct(ctx, created.ID, usecase.UpdateProductInput{
		Name:      &newName,
		UnitPrice: &newPrice,
		Active:    &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, "Consulting hour", updated.Name)
	assert.True(t, updated.UnitPrice.Equal(newPrice))
	assert.False(t, updated.Active)

	t.Run("unknown product", func(t *testing.T) {
		_, err := uc.UpdateProduct(ctx, 9999, usecase.UpdateProductInput{Name: &newName})
		require.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestProductUseCase_DeleteProduct(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewMockProductRepository()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.CreateProduct(ctx, usecase.CreateProductInput{
		Code:      "PRD-020",
		Name:      "Widget",
		UnitPrice: decimal.RequireFromString("5.00"),
	})
	require.NoError(t, err)

	t.Run("referenced product blocked", func(t *testing.T) {
		repo.DeleteFunc = func(ctx context.Context, id int64) error {
			return domain.ErrProductInUse
		}
		defer func() { repo.DeleteFunc = nil }()

		err := uc.DeleteProduct(ctx, created.ID)
		require.ErrorIs(t, err, domain.ErrProductInUse)
	})

	t.Run("unreferenced product removed", func(t *testing.T) {
		require.NoError(t, uc.DeleteProduct(ctx, created.ID))

		_, err := uc.GetProduct(ctx, created.ID)
		require.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("unknown product", func(t *testing.T) {
		err := uc.DeleteProduct(ctx, 9999)
		require.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}
