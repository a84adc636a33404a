package usecase

import (
	"context"
	"time"

	"github.com/iho/ledgerbook/internal/domain"
)

// PeriodUseCase handles accounting period operations.
type PeriodUseCase struct {
	periodRepo PeriodRepository
}

// NewPeriodUseCase creates a new PeriodUseCase.
func NewPeriodUseCase(periodRepo PeriodRepository) *PeriodUseCase {
	return &PeriodUseCase{periodRepo: periodRepo}
}

// CreatePeriodInput represents input for creating a period.
type CreatePeriodInput struct {
	StartDate time.Time
	EndDate   time.Time
	Type      domain.PeriodType
}

// CreatePeriod registers an accounting period. New periods start open.
func (uc *PeriodUseCase) CreatePeriod(ctx context.Context, input CreatePeriodInput) (*domain.Period, error) {
	period := &domain.Period{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Type:      input.Type,
		State:     domain.PeriodOpen,
	}

	if err := period.Validate(); err != nil {
		return nil, err
	}

	if err := uc.periodRepo.Create(ctx, period); err != nil {
		return nil, err
	}

	return period, nil
}

// GetPeriod retrieves a period by ID.
func (uc *PeriodUseCase) GetPeriod(ctx context.Context, id int64) (*domain.Period, error) {
	return uc.periodRepo.GetByID(ctx, id)
}

// ListPeriods lists periods with pagination.
func (uc *PeriodUseCase) ListPeriods(ctx context.Context, limit, offset int) ([]*domain.Period, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.periodRepo.List(ctx, limit, offset)
}
