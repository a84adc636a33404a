package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/infrastructure/postgres/generated"
)

// ReportRepository implements usecase.ReportRepository with read-only
// aggregate queries.
type ReportRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// AccountMovements sums debits and credits per account over the date range.
func (r *ReportRepository) AccountMovements(ctx context.Context, from, to *time.Time) ([]*domain.AccountMovement, error) {
	rows, err := r.queries.AccountMovements(ctx, generated.AccountMovementsParams{
		From: timePtrToPgTimestamptz(from),
		To:   timePtrToPgTimestamptz(to),
	})
	if err != nil {
		return nil, err
	}

	movements := make([]*domain.AccountMovement, 0, len(rows))
	for _, row := range rows {
		movements = append(movements, &domain.AccountMovement{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			Class:       domain.AccountClass(row.AccountClass),
			TotalDebit:  numericToDecimal(row.TotalDebit),
			TotalCredit: numericToDecimal(row.TotalCredit),
		})
	}

	return movements, nil
}

// MajorAccountName looks up the name of the account whose code equals the
// major prefix, or "" when no such account exists.
func (r *ReportRepository) MajorAccountName(ctx context.Context, code string) (string, error) {
	return r.queries.MajorAccountName(ctx, code)
}

// BillingStats aggregates invoice totals over the date range.
func (r *ReportRepository) BillingStats(ctx context.Context, from, to *time.Time) (*domain.BillingStats, error) {
	row, err := r.queries.BillingStats(ctx, generated.BillingStatsParams{
		From: timePtrToPgTimestamptz(from),
		To:   timePtrToPgTimestamptz(to),
	})
	if err != nil {
		return nil, err
	}

	return &domain.BillingStats{
		InvoiceCount:   row.InvoiceCount,
		TotalSales:     numericToDecimal(row.TotalSales),
		TotalSubtotal:  numericToDecimal(row.TotalSubtotal),
		TotalTax:       numericToDecimal(row.TotalTax),
		TotalDiscounts: numericToDecimal(row.TotalDiscounts),
		AverageSale:    numericToDecimal(row.AverageSale).Round(2),
	}, nil
}

// TopClients returns the clients with the highest invoiced totals.
func (r *ReportRepository) TopClients(ctx context.Context, limit int, from, to *time.Time) ([]*domain.ClientSales, error) {
	rows, err := r.queries.TopClients(ctx, generated.TopClientsParams{
		From:  timePtrToPgTimestamptz(from),
		To:    timePtrToPgTimestamptz(to),
		Limit: int32(limit),
	})
	if err != nil {
		return nil, err
	}

	clients := make([]*domain.ClientSales, 0, len(rows))
	for _, row := range rows {
		clients = append(clients, &domain.ClientSales{
			ClientID:     row.ClientID,
			Name:         row.Name,
			TaxID:        row.TaxID,
			InvoiceCount: row.InvoiceCount,
			TotalAmount:  numericToDecimal(row.TotalAmount),
		})
	}

	return clients, nil
}
