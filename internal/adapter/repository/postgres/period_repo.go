package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/infrastructure/postgres/generated"
)

// PeriodRepository implements usecase.PeriodRepository.
type PeriodRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewPeriodRepository creates a new PeriodRepository.
func NewPeriodRepository(pool *pgxpool.Pool) *PeriodRepository {
	return &PeriodRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new accounting period.
func (r *PeriodRepository) Create(ctx context.Context, period *domain.Period) error {
	row, err := r.queries.CreatePeriod(ctx, generated.CreatePeriodParams{
		StartDate: timeToPgTimestamptz(period.StartDate),
		EndDate:   timeToPgTimestamptz(period.EndDate),
		Kind:      string(period.Type),
		State:     string(period.State),
	})
	if err != nil {
		return err
	}

	period.ID = row.ID

	return nil
}

// GetByID retrieves a period by ID.
func (r *PeriodRepository) GetByID(ctx context.Context, id int64) (*domain.Period, error) {
	row, err := r.queries.GetPeriodByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPeriodNotFound
		}

		return nil, err
	}

	return rowToPeriod(row), nil
}

// List lists periods, newest first.
func (r *PeriodRepository) List(ctx context.Context, limit, offset int) ([]*domain.Period, error) {
	rows, err := r.queries.ListPeriods(ctx, generated.ListPeriodsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	periods := make([]*domain.Period, 0, len(rows))
	for _, row := range rows {
		periods = append(periods, rowToPeriod(row))
	}

	return periods, nil
}

func rowToPeriod(row generated.Period) *domain.Period {
	return &domain.Period{
		ID:        row.ID,
		StartDate: row.StartDate.Time,
		EndDate:   row.EndDate.Time,
		Type:      domain.PeriodType(row.Kind),
		State:     domain.PeriodState(row.State),
	}
}
