package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/infrastructure/postgres/generated"
	"github.com/iho/ledgerbook/internal/usecase"
)

// InvoiceRepository implements usecase.InvoiceRepository.
type InvoiceRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create inserts an invoice header within the given transaction.
func (r *InvoiceRepository) Create(ctx context.Context, tx usecase.Transaction, invoice *domain.Invoice) error {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	_, err := queries.CreateInvoice(ctx, generated.CreateInvoiceParams{
		ID:            invoice.ID,
		Number:        invoice.Number,
		ClientID:      int64PtrToPgInt8(invoice.ClientID),
		TransactionID: int64PtrToPgInt8(invoice.TransactionID),
		Subtotal:      decimalToNumeric(invoice.Subtotal),
		Discount:      decimalToNumeric(invoice.Discount),
		Tax:           decimalToNumeric(invoice.Tax),
		GrandTotal:    decimalToNumeric(invoice.GrandTotal),
		PaymentTerms:  invoice.PaymentTerms,
		Salesperson:   invoice.Salesperson,
		Notes:         invoice.Notes,
		IssuedAt:      timeToPgTimestamptz(invoice.IssuedAt),
		DueAt:         timePtrToPgTimestamptz(invoice.DueAt),
	})
	if err != nil {
		return mapConstraintError(err)
	}

	return nil
}

// GetByID retrieves an invoice by ID.
func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	row, err := r.queries.GetInvoiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}

		return nil, err
	}

	return rowToInvoice(row), nil
}

// GetByIDForUpdate retrieves an invoice header with a FOR UPDATE lock. All
// line mutations take this lock first, serializing writers per invoice.
func (r *InvoiceRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Invoice, error) {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	row, err := queries.GetInvoiceByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}

		return nil, err
	}

	return rowToInvoice(row), nil
}

// GetByNumber retrieves an invoice by its human-facing number.
func (r *InvoiceRepository) GetByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	row, err := r.queries.GetInvoiceByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}

		return nil, err
	}

	return rowToInvoice(row), nil
}

// List lists invoices matching the filter, newest first.
func (r *InvoiceRepository) List(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.Invoice, error) {
	rows, err := r.queries.ListInvoices(ctx, generated.ListInvoicesParams{
		ClientID: int64PtrToPgInt8(filter.ClientID),
		From:     timePtrToPgTimestamptz(filter.From),
		To:       timePtrToPgTimestamptz(filter.To),
		Limit:    int32(filter.Limit),
		Offset:   int32(filter.Offset),
	})
	if err != nil {
		return nil, err
	}

	invoices := make([]*domain.Invoice, 0, len(rows))
	for _, row := range rows {
		invoices = append(invoices, rowToInvoice(row))
	}

	return invoices, nil
}

// UpdateHeader writes the caller-settable header fields. The derived totals
// are excluded; UpdateTotals is their only writer.
func (r *InvoiceRepository) UpdateHeader(ctx context.Context, tx usecase.Transaction, invoice *domain.Invoice) error {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	return queries.UpdateInvoiceHeader(ctx, generated.UpdateInvoiceHeaderParams{
		ID:           invoice.ID,
		Discount:     decimalToNumeric(invoice.Discount),
		PaymentTerms: invoice.PaymentTerms,
		Salesperson:  invoice.Salesperson,
		Notes:        invoice.Notes,
		DueAt:        timePtrToPgTimestamptz(invoice.DueAt),
	})
}

// UpdateTotals writes the derived header aggregates.
func (r *InvoiceRepository) UpdateTotals(ctx context.Context, tx usecase.Transaction, id string, totals domain.InvoiceTotals) error {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	return queries.UpdateInvoiceTotals(ctx, generated.UpdateInvoiceTotalsParams{
		ID:         id,
		Subtotal:   decimalToNumeric(totals.Subtotal),
		Tax:        decimalToNumeric(totals.Tax),
		GrandTotal: decimalToNumeric(totals.GrandTotal),
	})
}

// Delete removes an invoice. Lines go with it via ON DELETE CASCADE.
func (r *InvoiceRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	affected, err := queries.DeleteInvoice(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrInvoiceNotFound
	}

	return nil
}

// MaxNumberForYear returns the highest invoice number issued in the year, or
// "" when none exists. The numbers' fixed-width sequence makes MAX correct.
func (r *InvoiceRepository) MaxNumberForYear(ctx context.Context, tx usecase.Transaction, year int) (string, error) {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	return queries.MaxInvoiceNumberForYear(ctx, fmt.Sprintf("INV-%d-%%", year))
}

func rowToInvoice(row generated.Invoice) *domain.Invoice {
	return &domain.Invoice{
		ID:            row.ID,
		Number:        row.Number,
		ClientID:      pgInt8ToInt64Ptr(row.ClientID),
		TransactionID: pgInt8ToInt64Ptr(row.TransactionID),
		Subtotal:      numericToDecimal(row.Subtotal),
		Discount:      numericToDecimal(row.Discount),
		Tax:           numericToDecimal(row.Tax),
		GrandTotal:    numericToDecimal(row.GrandTotal),
		PaymentTerms:  row.PaymentTerms,
		Salesperson:   row.Salesperson,
		Notes:         row.Notes,
		IssuedAt:      row.IssuedAt.Time,
		DueAt:         pgTimestamptzToTimePtr(row.DueAt),
	}
}
