package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/infrastructure/postgres/generated"
	"github.com/iho/ledgerbook/internal/usecase"
)

// InvoiceLineRepository implements usecase.InvoiceLineRepository.
type InvoiceLineRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewInvoiceLineRepository creates a new InvoiceLineRepository.
func NewInvoiceLineRepository(pool *pgxpool.Pool) *InvoiceLineRepository {
	return &InvoiceLineRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create inserts an invoice line within the given transaction.
func (r *InvoiceLineRepository) Create(ctx context.Context, tx usecase.Transaction, line *domain.InvoiceLine) error {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	row, err := queries.CreateInvoiceLine(ctx, generated.CreateInvoiceLineParams{
		InvoiceID:       line.InvoiceID,
		ProductID:       line.ProductID,
		Description:     line.Description,
		Quantity:        decimalToNumeric(line.Quantity),
		UnitPrice:       decimalToNumeric(line.UnitPrice),
		DiscountPercent: decimalToNumeric(line.DiscountPercent),
		DiscountAmount:  decimalToNumeric(line.DiscountAmount),
		Subtotal:        decimalToNumeric(line.Subtotal),
		Tax:             decimalToNumeric(line.Tax),
		Total:           decimalToNumeric(line.Total),
	})
	if err != nil {
		return mapConstraintError(err)
	}

	line.ID = row.ID

	return nil
}

// GetByID retrieves an invoice line within the given transaction.
func (r *InvoiceLineRepository) GetByID(ctx context.Context, tx usecase.Transaction, id int64) (*domain.InvoiceLine, error) {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	row, err := queries.GetInvoiceLineByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceLineNotFound
		}

		return nil, err
	}

	return rowToInvoiceLine(row), nil
}

// ListByInvoice lists an invoice's lines in insertion order.
func (r *InvoiceLineRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]*domain.InvoiceLine, error) {
	rows, err := r.queries.ListInvoiceLines(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	return rowsToInvoiceLines(rows), nil
}

// ListByInvoiceTx lists an invoice's lines within the given transaction, so
// totals recomputation sees the mutation it follows.
func (r *InvoiceLineRepository) ListByInvoiceTx(ctx context.Context, tx usecase.Transaction, invoiceID string) ([]*domain.InvoiceLine, error) {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	rows, err := queries.ListInvoiceLines(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	return rowsToInvoiceLines(rows), nil
}

// Update writes a line's inputs and derived amounts within the transaction.
func (r *InvoiceLineRepository) Update(ctx context.Context, tx usecase.Transaction, line *domain.InvoiceLine) error {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	return queries.UpdateInvoiceLine(ctx, generated.UpdateInvoiceLineParams{
		ID:              line.ID,
		Description:     line.Description,
		Quantity:        decimalToNumeric(line.Quantity),
		UnitPrice:       decimalToNumeric(line.UnitPrice),
		DiscountPercent: decimalToNumeric(line.DiscountPercent),
		DiscountAmount:  decimalToNumeric(line.DiscountAmount),
		Subtotal:        decimalToNumeric(line.Subtotal),
		Tax:             decimalToNumeric(line.Tax),
		Total:           decimalToNumeric(line.Total),
	})
}

// Delete removes an invoice line within the given transaction.
func (r *InvoiceLineRepository) Delete(ctx context.Context, tx usecase.Transaction, id int64) error {
	queries := r.queries.WithTx(tx.(*Tx).PgxTx())

	affected, err := queries.DeleteInvoiceLine(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrInvoiceLineNotFound
	}

	return nil
}

func rowsToInvoiceLines(rows []generated.InvoiceLine) []*domain.InvoiceLine {
	lines := make([]*domain.InvoiceLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, rowToInvoiceLine(row))
	}
	return lines
}

func rowToInvoiceLine(row generated.InvoiceLine) *domain.InvoiceLine {
	return &domain.InvoiceLine{
		ID:              row.ID,
		InvoiceID:       row.InvoiceID,
		ProductID:       row.ProductID,
		Description:     row.Description,
		Quantity:        numericToDecimal(row.Quantity),
		UnitPrice:       numericToDecimal(row.UnitPrice),
		DiscountPercent: numericToDecimal(row.DiscountPercent),
		DiscountAmount:  numericToDecimal(row.DiscountAmount),
		Subtotal:        numericToDecimal(row.Subtotal),
		Tax:             numericToDecimal(row.Tax),
		Total:           numericToDecimal(row.Total),
	}
}
