package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/usecase"
	"github.com/iho/ledgerbook/internal/usecase/mocks"
)

func TestPeriodUseCase_CreatePeriod(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid monthly period opens", func(t *testing.T) {
		uc := usecase.NewPeriodUseCase(mocks.NewMockPeriodRepository())

		period, err := uc.CreatePeriod(ctx, usecase.CreatePeriodInput{
			StartDate: start,
			EndDate:   start.AddDate(0, 1, 0),
			Type:      domain.PeriodMonthly,
		})
		require.NoError(t, err)

		assert.Equal(t, domain.PeriodOpen, period.State)
		assert.NotZero(t, period.ID)
	})

	t.Run("unknown type rejected", func(t *testing.T) {
		uc := usecase.NewPeriodUseCase(mocks.NewMockPeriodRepository())

		_, err := uc.CreatePeriod(ctx, usecase.CreatePeriodInput{
			StartDate: start,
			EndDate:   start.AddDate(0, 1, 0),
			Type:      "WEEKLY",
		})
		require.ErrorIs(t, err, domain.ErrInvalidPeriodType)
	})

	t.Run("inverted range rejected", func(t *testing.T) {
		uc := usecase.NewPeriodUseCase(mocks.NewMockPeriodRepository())

		_, err := uc.CreatePeriod(ctx, usecase.CreatePeriodInput{
			StartDate: start,
			EndDate:   start.AddDate(0, -1, 0),
			Type:      domain.PeriodMonthly,
		})
		require.ErrorIs(t, err, domain.ErrInvalidPeriodRange)
	})
}

func TestPeriodUseCase_GetPeriod(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewPeriodUseCase(mocks.NewMockPeriodRepository())

	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	created, err := uc.CreatePeriod(ctx, usecase.CreatePeriodInput{
		StartDate: start,
		EndDate:   start.AddDate(0, 3, 0),
		Type:      domain.PeriodQuarterly,
	})
	require.NoError(t, err)

	got, err := uc.GetPeriod(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PeriodQuarterly, got.Type)

	_, err = uc.GetPeriod(ctx, 9999)
	require.ErrorIs(t, err, domain.ErrPeriodNotFound)
}
