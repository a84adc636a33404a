package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/infrastructure/metrics"
)

// InvoiceUseCase handles invoices and their lines.
//
// Every line mutation runs inside one database transaction that locks the
// invoice header row first, applies the mutation, re-derives the header's
// subtotal, tax, and grand total from the full current line set, and commits.
// The header totals are therefore never observable out of step with the
// lines, and two concurrent mutations of the same invoice serialize on the
// header lock instead of overwriting each other's totals.
type InvoiceUseCase struct {
	txManager       TransactionManager
	invoiceRepo     InvoiceRepository
	lineRepo        InvoiceLineRepository
	productRepo     ProductRepository
	clientRepo      ClientRepository
	transactionRepo TransactionRepository
	idGen           IDGenerator
	retrier         Retrier
	taxRate         decimal.Decimal
	metrics         *metrics.Metrics
}

// NewInvoiceUseCase creates a new InvoiceUseCase. taxRate is the global tax
// rate applied to taxable products, e.g. 0.13.
func NewInvoiceUseCase(
	txManager TransactionManager,
	invoiceRepo InvoiceRepository,
	lineRepo InvoiceLineRepository,
	productRepo ProductRepository,
	clientRepo ClientRepository,
	transactionRepo TransactionRepository,
	idGen IDGenerator,
	retrier Retrier,
	taxRate decimal.Decimal,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		txManager:       txManager,
		invoiceRepo:     invoiceRepo,
		lineRepo:        lineRepo,
		productRepo:     productRepo,
		clientRepo:      clientRepo,
		transactionRepo: transactionRepo,
		idGen:           idGen,
		retrier:         retrier,
		taxRate:         taxRate,
	}
}

// WithMetrics attaches Prometheus counters. A nil receiver field means no
// instrumentation.
func (uc *InvoiceUseCase) WithMetrics(m *metrics.Metrics) *InvoiceUseCase {
	uc.metrics = m
	return uc
}

// LineInput represents one requested invoice line. UnitPrice nil means the
// product's list price. A positive DiscountPercent overrides DiscountAmount.
type LineInput struct {
	ProductID       int64
	Description     string
	Quantity        decimal.Decimal
	UnitPrice       *decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
}

// CreateInvoiceInput represents input for creating an invoice.
type CreateInvoiceInput struct {
	ClientID      *int64
	TransactionID *int64
	Discount      decimal.Decimal
	PaymentTerms  string
	Salesperson   string
	Notes         string
	IssuedAt      *time.Time
	DueAt         *time.Time
	Lines         []LineInput
}

// CreateInvoice creates an invoice header, its lines, and the derived totals
// in one atomic unit. The invoice number is generated per year.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error) {
	if input.Discount.IsNegative() {
		return nil, domain.ErrInvalidDiscountAmount
	}

	if input.ClientID != nil {
		client, err := uc.clientRepo.GetByID(ctx, *input.ClientID)
		if err != nil {
			return nil, err
		}
		if !client.Active {
			return nil, domain.ErrInactiveClient
		}
	}

	if input.TransactionID != nil {
		if _, err := uc.transactionRepo.GetByID(ctx, *input.TransactionID); err != nil {
			return nil, err
		}
	}

	issuedAt := time.Now().UTC()
	if input.IssuedAt != nil {
		issuedAt = *input.IssuedAt
	}

	dueAt := input.DueAt
	if dueAt == nil && !strings.EqualFold(input.PaymentTerms, PaymentTermsCash) {
		d := issuedAt.AddDate(0, 0, DefaultPaymentTermDays)
		dueAt = &d
	}

	var invoice *domain.Invoice

	// Two concurrent creations can draw the same number for the year; the
	// unique index rejects one and the retrier re-runs it.
	err := uc.retrier.Retry(ctx, func() error {
		invoice = nil

		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		number, err := uc.nextNumber(ctx, tx, issuedAt.Year())
		if err != nil {
			return err
		}

		inv := &domain.Invoice{
			ID:            uc.idGen.Generate(),
			Number:        number,
			ClientID:      input.ClientID,
			TransactionID: input.TransactionID,
			Subtotal:      decimal.Zero,
			Discount:      input.Discount,
			Tax:           decimal.Zero,
			GrandTotal:    decimal.Zero,
			PaymentTerms:  input.PaymentTerms,
			Salesperson:   input.Salesperson,
			Notes:         input.Notes,
			IssuedAt:      issuedAt,
			DueAt:         dueAt,
		}

		if err := uc.invoiceRepo.Create(ctx, tx, inv); err != nil {
			return err
		}

		for _, li := range input.Lines {
			if _, err := uc.insertLine(ctx, tx, inv.ID, li); err != nil {
				return err
			}
		}

		if err := uc.recomputeTotals(ctx, tx, inv); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		invoice = inv

		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.InvoicesCreated.Inc()
		uc.metrics.InvoiceTotalAmount.Observe(invoice.GrandTotal.InexactFloat64())
	}

	return invoice, nil
}

// AddLine appends a line to an invoice and recomputes the invoice totals in
// the same transaction.
func (uc *InvoiceUseCase) AddLine(ctx context.Context, invoiceID string, input LineInput) (*domain.InvoiceLine, error) {
	var line *domain.InvoiceLine

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		invoice, err := uc.invoiceRepo.GetByIDForUpdate(ctx, tx, invoiceID)
		if err != nil {
			return err
		}

		line, err = uc.insertLine(ctx, tx, invoice.ID, input)
		if err != nil {
			return err
		}

		if err := uc.recomputeTotals(ctx, tx, invoice); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.InvoiceLinesWritten.WithLabelValues("add").Inc()
	}

	return line, nil
}

// UpdateLineInput represents changes to an existing line. Nil fields keep
// their current value; the derived fields are always recomputed.
type UpdateLineInput struct {
	Description     *string
	Quantity        *decimal.Decimal
	UnitPrice       *decimal.Decimal
	DiscountPercent *decimal.Decimal
	DiscountAmount  *decimal.Decimal
}

// UpdateLine changes a line's inputs, re-derives its amounts, and recomputes
// the invoice totals, all in one transaction.
func (uc *InvoiceUseCase) UpdateLine(ctx context.Context, invoiceID string, lineID int64, input UpdateLineInput) (*domain.InvoiceLine, error) {
	var line *domain.InvoiceLine

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		invoice, err := uc.invoiceRepo.GetByIDForUpdate(ctx, tx, invoiceID)
		if err != nil {
			return err
		}

		line, err = uc.lineRepo.GetByID(ctx, tx, lineID)
		if err != nil {
			return err
		}
		if line.InvoiceID != invoice.ID {
			return domain.ErrInvoiceLineNotFound
		}

		product, err := uc.productRepo.GetByIDForUpdate(ctx, tx, line.ProductID)
		if err != nil {
			return err
		}

		oldQuantity := line.Quantity

		if input.Description != nil {
			line.Description = *input.Description
		}
		if input.Quantity != nil {
			line.Quantity = *input.Quantity
		}
		if input.UnitPrice != nil {
			line.UnitPrice = *input.UnitPrice
		}
		if input.DiscountPercent != nil {
			line.DiscountPercent = *input.DiscountPercent
		}
		if input.DiscountAmount != nil {
			line.DiscountAmount = *input.DiscountAmount
		}

		amounts, err := domain.ComputeLine(line.Quantity, line.UnitPrice, line.DiscountPercent, line.DiscountAmount, product.Taxable, uc.taxRate)
		if err != nil {
			return err
		}

		line.DiscountAmount = amounts.DiscountAmount
		line.Subtotal = amounts.Subtotal
		line.Tax = amounts.Tax
		line.Total = amounts.Total

		if product.Tracked() && !line.Quantity.Equal(oldQuantity) {
			delta := line.Quantity.Sub(oldQuantity)
			if err := product.CheckStock(delta); err != nil {
				return err
			}
			if err := uc.productRepo.UpdateStock(ctx, tx, product.ID, product.StockOnHand.Sub(delta)); err != nil {
				return err
			}
		}

		if err := uc.lineRepo.Update(ctx, tx, line); err != nil {
			return err
		}

		if err := uc.recomputeTotals(ctx, tx, invoice); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.InvoiceLinesWritten.WithLabelValues("update").Inc()
	}

	return line, nil
}

// RemoveLine deletes a line, restores product stock, and recomputes the
// invoice totals in the same transaction.
func (uc *InvoiceUseCase) RemoveLine(ctx context.Context, invoiceID string, lineID int64) error {
	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		invoice, err := uc.invoiceRepo.GetByIDForUpdate(ctx, tx, invoiceID)
		if err != nil {
			return err
		}

		line, err := uc.lineRepo.GetByID(ctx, tx, lineID)
		if err != nil {
			return err
		}
		if line.InvoiceID != invoice.ID {
			return domain.ErrInvoiceLineNotFound
		}

		product, err := uc.productRepo.GetByIDForUpdate(ctx, tx, line.ProductID)
		if err != nil {
			return err
		}

		if err := uc.lineRepo.Delete(ctx, tx, line.ID); err != nil {
			return err
		}

		if product.Tracked() {
			if err := uc.productRepo.UpdateStock(ctx, tx, product.ID, product.StockOnHand.Add(line.Quantity)); err != nil {
				return err
			}
		}

		if err := uc.recomputeTotals(ctx, tx, invoice); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.InvoiceLinesWritten.WithLabelValues("remove").Inc()
	}

	return nil
}

// UpdateInvoiceInput represents caller-settable header changes. The header
// discount is among them; it feeds the grand total, so totals are recomputed.
type UpdateInvoiceInput struct {
	Discount     *decimal.Decimal
	PaymentTerms *string
	Salesperson  *string
	Notes        *string
	DueAt        *time.Time
}

// UpdateInvoice updates header metadata. Derived totals cannot be set here;
// when the discount changes the grand total is re-derived from the lines.
func (uc *InvoiceUseCase) UpdateInvoice(ctx context.Context, id string, input UpdateInvoiceInput) (*domain.Invoice, error) {
	var invoice *domain.Invoice

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		invoice, err = uc.invoiceRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if input.Discount != nil {
			if input.Discount.IsNegative() {
				return domain.ErrInvalidDiscountAmount
			}
			invoice.Discount = *input.Discount
		}
		if input.PaymentTerms != nil {
			invoice.PaymentTerms = *input.PaymentTerms
		}
		if input.Salesperson != nil {
			invoice.Salesperson = *input.Salesperson
		}
		if input.Notes != nil {
			invoice.Notes = *input.Notes
		}
		if input.DueAt != nil {
			invoice.DueAt = input.DueAt
		}

		if err := uc.invoiceRepo.UpdateHeader(ctx, tx, invoice); err != nil {
			return err
		}

		if err := uc.recomputeTotals(ctx, tx, invoice); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		return nil, err
	}

	return invoice, nil
}

// DeleteInvoice removes an invoice and all its lines, restoring stock for
// tracked products.
func (uc *InvoiceUseCase) DeleteInvoice(ctx context.Context, id string) error {
	return uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		invoice, err := uc.invoiceRepo.GetByIDForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		lines, err := uc.lineRepo.ListByInvoiceTx(ctx, tx, invoice.ID)
		if err != nil {
			return err
		}

		for _, line := range lines {
			product, err := uc.productRepo.GetByIDForUpdate(ctx, tx, line.ProductID)
			if err != nil {
				return err
			}
			if product.Tracked() {
				if err := uc.productRepo.UpdateStock(ctx, tx, product.ID, product.StockOnHand.Add(line.Quantity)); err != nil {
					return err
				}
			}
		}

		if err := uc.invoiceRepo.Delete(ctx, tx, invoice.ID); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
}

// GetInvoice retrieves an invoice with its lines.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, id string) (*domain.Invoice, []*domain.InvoiceLine, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	lines, err := uc.lineRepo.ListByInvoice(ctx, invoice.ID)
	if err != nil {
		return nil, nil, err
	}

	return invoice, lines, nil
}

// GetInvoiceByNumber retrieves an invoice by its human-facing number.
func (uc *InvoiceUseCase) GetInvoiceByNumber(ctx context.Context, number string) (*domain.Invoice, []*domain.InvoiceLine, error) {
	invoice, err := uc.invoiceRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, nil, err
	}

	lines, err := uc.lineRepo.ListByInvoice(ctx, invoice.ID)
	if err != nil {
		return nil, nil, err
	}

	return invoice, lines, nil
}

// ListInvoices lists invoices matching the filter.
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.Invoice, error) {
	filter.Limit, filter.Offset = domain.ValidatePagination(filter.Limit, filter.Offset)
	return uc.invoiceRepo.List(ctx, filter)
}

// insertLine validates a line request against its product, derives the line
// amounts, persists the line, and decrements stock. Caller holds the header
// lock and owns the transaction.
func (uc *InvoiceUseCase) insertLine(ctx context.Context, tx Transaction, invoiceID string, input LineInput) (*domain.InvoiceLine, error) {
	product, err := uc.productRepo.GetByIDForUpdate(ctx, tx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if !product.Active {
		return nil, domain.ErrInactiveProduct
	}

	if err := product.CheckStock(input.Quantity); err != nil {
		return nil, err
	}

	unitPrice := product.UnitPrice
	if input.UnitPrice != nil {
		unitPrice = *input.UnitPrice
	}

	amounts, err := domain.ComputeLine(input.Quantity, unitPrice, input.DiscountPercent, input.DiscountAmount, product.Taxable, uc.taxRate)
	if err != nil {
		return nil, err
	}

	line := &domain.InvoiceLine{
		InvoiceID:       invoiceID,
		ProductID:       product.ID,
		Description:     input.Description,
		Quantity:        input.Quantity,
		UnitPrice:       unitPrice,
		DiscountPercent: input.DiscountPercent,
		DiscountAmount:  amounts.DiscountAmount,
		Subtotal:        amounts.Subtotal,
		Tax:             amounts.Tax,
		Total:           amounts.Total,
	}

	if err := uc.lineRepo.Create(ctx, tx, line); err != nil {
		return nil, err
	}

	if product.Tracked() {
		if err := uc.productRepo.UpdateStock(ctx, tx, product.ID, product.StockOnHand.Sub(input.Quantity)); err != nil {
			return nil, err
		}
	}

	return line, nil
}

// recomputeTotals re-derives the header aggregates from the invoice's full
// current line set and writes them through the sole totals writer. Caller
// holds the header lock.
func (uc *InvoiceUseCase) recomputeTotals(ctx context.Context, tx Transaction, invoice *domain.Invoice) error {
	lines, err := uc.lineRepo.ListByInvoiceTx(ctx, tx, invoice.ID)
	if err != nil {
		return err
	}

	totals := domain.SumLines(lines, invoice.Discount)

	if err := uc.invoiceRepo.UpdateTotals(ctx, tx, invoice.ID, totals); err != nil {
		return err
	}

	invoice.Subtotal = totals.Subtotal
	invoice.Tax = totals.Tax
	invoice.GrandTotal = totals.GrandTotal

	if uc.metrics != nil {
		uc.metrics.InvoiceRecalculations.Inc()
	}

	return nil
}

// nextNumber builds the next invoice number for the year, format INV-YYYY-NNNN.
func (uc *InvoiceUseCase) nextNumber(ctx context.Context, tx Transaction, year int) (string, error) {
	last, err := uc.invoiceRepo.MaxNumberForYear(ctx, tx, year)
	if err != nil {
		return "", err
	}

	seq := 1
	if last != "" {
		parts := strings.Split(last, "-")
		if len(parts) == 3 {
			if n, err := strconv.Atoi(parts[2]); err == nil {
				seq = n + 1
			}
		}
	}

	return fmt.Sprintf("INV-%d-%04d", year, seq), nil
}
