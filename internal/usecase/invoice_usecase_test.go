package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/usecase"
	"github.com/iho/ledgerbook/internal/usecase/mocks"
)

type invoiceFixture struct {
	uc          *usecase.InvoiceUseCase
	invoiceRepo *mocks.MockInvoiceRepository
	lineRepo    *mocks.MockInvoiceLineRepository
	productRepo *mocks.MockProductRepository
	clientRepo  *mocks.MockClientRepository

	client   *domain.Client
	widget   *domain.Product // tracked, taxable, 5.00, stock 100
	support  *domain.Product // service, tax-exempt, 40.00
	obsolete *domain.Product // inactive
}

func newInvoiceFixture(t *testing.T) *invoiceFixture {
	t.Helper()

	f := &invoiceFixture{
		invoiceRepo: mocks.NewMockInvoiceRepository(),
		lineRepo:    mocks.NewMockInvoiceLineRepository(),
		productRepo: mocks.NewMockProductRepository(),
		clientRepo:  mocks.NewMockClientRepository(),
	}
	f.invoiceRepo.Lines = f.lineRepo

	ctx := context.Background()

	f.client = &domain.Client{Name: "Acme Corp", Kind: domain.ClientCompany, Active: true}
	if err := f.clientRepo.Create(ctx, f.client); err != nil {
		t.Fatalf("seed client: %v", err)
	}

	f.widget = &domain.Product{
		Code: "WID-1", Name: "Widget", Kind: domain.KindProduct,
		UnitPrice: decimal.RequireFromString("5.00"), Unit: "UNIT",
		StockOnHand: decimal.NewFromInt(100), Taxable: true, Active: true,
	}
	f.support = &domain.Product{
		Code: "SUP-1", Name: "Support hour", Kind: domain.KindService,
		UnitPrice: decimal.RequireFromString("40.00"), Unit: "HOUR",
		Taxable: false, Active: true,
	}
	f.obsolete = &domain.Product{
		Code: "OLD-1", Name: "Discontinued", Kind: domain.KindProduct,
		UnitPrice: decimal.RequireFromString("1.00"), Unit: "UNIT",
		StockOnHand: decimal.NewFromInt(10), Taxable: true, Active: false,
	}
	for _, p := range []*domain.Product{f.widget, f.support, f.obsolete} {
		if err := f.productRepo.Create(ctx, p); err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}

	f.uc = usecase.NewInvoiceUseCase(
		mocks.NewMockTransactionManager(),
		f.invoiceRepo,
		f.lineRepo,
		f.productRepo,
		f.clientRepo,
		mocks.NewMockTransactionRepository(),
		mocks.NewMockIDGenerator(),
		mocks.NewMockRetrier(),
		decimal.RequireFromString("0.13"),
	)

	return f
}

func (f *invoiceFixture) createInvoice(t *testing.T, lines ...usecase.LineInput) *domain.Invoice {
	t.Helper()
	invoice, err := f.uc.CreateInvoice(context.Background(), usecase.CreateInvoiceInput{
		ClientID: &f.client.ID,
		Lines:    lines,
	})
	if err != nil {
		t.Fatalf("create invoice: %v", err)
	}
	return invoice
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("expected %s %s, got %s", field, want, got)
	}
}

func TestInvoiceUseCase_CreateInvoice(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice := f.createInvoice(t, usecase.LineInput{
		ProductID:       f.widget.ID,
		Quantity:        decimal.NewFromInt(10),
		DiscountPercent: decimal.NewFromInt(10),
	})

	// 10 x 5.00, 10% off -> 45.00; 13% tax -> 5.85
	requireDecimal(t, "45.00", invoice.Subtotal, "subtotal")
	requireDecimal(t, "5.85", invoice.Tax, "tax")
	requireDecimal(t, "50.85", invoice.GrandTotal, "grand total")

	year := time.Now().UTC().Year()
	want := fmt.Sprintf("INV-%d-0001", year)
	if invoice.Number != want {
		t.Errorf("expected number %s, got %s", want, invoice.Number)
	}

	second := f.createInvoice(t)
	wantSecond := fmt.Sprintf("INV-%d-0002", year)
	if second.Number != wantSecond {
		t.Errorf("expected number %s, got %s", wantSecond, second.Number)
	}

	product, err := f.productRepo.GetByID(context.Background(), f.widget.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	requireDecimal(t, "90", product.StockOnHand, "stock on hand")

	if invoice.DueAt == nil {
		t.Fatal("expected default due date")
	}
	if got := invoice.DueAt.Sub(invoice.IssuedAt); got != 30*24*time.Hour {
		t.Errorf("expected due date 30 days out, got %v", got)
	}
}

func TestInvoiceUseCase_CreateInvoice_CashHasNoDueDate(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice, err := f.uc.CreateInvoice(context.Background(), usecase.CreateInvoiceInput{
		ClientID:     &f.client.ID,
		PaymentTerms: "CASH",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if invoice.DueAt != nil {
		t.Errorf("expected no due date for cash terms, got %v", invoice.DueAt)
	}
}

func TestInvoiceUseCase_CreateInvoice_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*invoiceFixture, *usecase.CreateInvoiceInput)
		expectErr error
	}{
		{
			name: "negative header discount",
			mutate: func(f *invoiceFixture, in *usecase.CreateInvoiceInput) {
				in.Discount = decimal.NewFromInt(-1)
			},
			expectErr: domain.ErrInvalidDiscountAmount,
		},
		{
			name: "inactive client",
			mutate: func(f *invoiceFixture, in *usecase.CreateInvoiceInput) {
				f.client.Active = false
				_ = f.clientRepo.Update(context.Background(), f.client)
			},
			expectErr: domain.ErrInactiveClient,
		},
		{
			name: "unknown client",
			mutate: func(f *invoiceFixture, in *usecase.CreateInvoiceInput) {
				unknown := f.client.ID + 99
				in.ClientID = &unknown
			},
			expectErr: domain.ErrClientNotFound,
		},
		{
			name: "inactive product",
			mutate: func(f *invoiceFixture, in *usecase.CreateInvoiceInput) {
				in.Lines = []usecase.LineInput{{ProductID: f.obsolete.ID, Quantity: decimal.NewFromInt(1)}}
			},
			expectErr: domain.ErrInactiveProduct,
		},
		{
			name: "insufficient stock",
			mutate: func(f *invoiceFixture, in *usecase.CreateInvoiceInput) {
				in.Lines = []usecase.LineInput{{ProductID: f.widget.ID, Quantity: decimal.NewFromInt(101)}}
			},
			expectErr: domain.ErrInsufficientStock,
		},
		{
			name: "zero quantity",
			mutate: func(f *invoiceFixture, in *usecase.CreateInvoiceInput) {
				in.Lines = []usecase.LineInput{{ProductID: f.widget.ID, Quantity: decimal.Zero}}
			},
			expectErr: domain.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInvoiceFixture(t)
			input := usecase.CreateInvoiceInput{ClientID: &f.client.ID}
			tt.mutate(f, &input)

			_, err := f.uc.CreateInvoice(context.Background(), input)
			if !errors.Is(err, tt.expectErr) {
				t.Fatalf("expected %v, got %v", tt.expectErr, err)
			}
		})
	}
}

func TestInvoiceUseCase_AddLine_RecomputesTotals(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice := f.createInvoice(t, usecase.LineInput{
		ProductID: f.widget.ID,
		Quantity:  decimal.NewFromInt(2),
	})
	requireDecimal(t, "10.00", invoice.Subtotal, "subtotal")

	// tax-exempt service line: raises subtotal but not tax
	if _, err := f.uc.AddLine(context.Background(), invoice.ID, usecase.LineInput{
		ProductID: f.support.ID,
		Quantity:  decimal.NewFromInt(1),
	}); err != nil {
		t.Fatalf("add line: %v", err)
	}

	stored, _, err := f.uc.GetInvoice(context.Background(), invoice.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}
	requireDecimal(t, "50.00", stored.Subtotal, "subtotal")
	requireDecimal(t, "1.30", stored.Tax, "tax")
	requireDecimal(t, "51.30", stored.GrandTotal, "grand total")
}

func TestInvoiceUseCase_AddLine_UnknownInvoice(t *testing.T) {
	f := newInvoiceFixture(t)

	_, err := f.uc.AddLine(context.Background(), "missing", usecase.LineInput{
		ProductID: f.widget.ID,
		Quantity:  decimal.NewFromInt(1),
	})
	if !errors.Is(err, domain.ErrInvoiceNotFound) {
		t.Errorf("expected ErrInvoiceNotFound, got %v", err)
	}
}

func TestInvoiceUseCase_UpdateLine(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice := f.createInvoice(t, usecase.LineInput{
		ProductID: f.widget.ID,
		Quantity:  decimal.NewFromInt(2),
	})
	_, lines, err := f.uc.GetInvoice(context.Background(), invoice.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	qty := decimal.NewFromInt(5)
	line, err := f.uc.UpdateLine(context.Background(), invoice.ID, lines[0].ID, usecase.UpdateLineInput{
		Quantity: &qty,
	})
	if err != nil {
		t.Fatalf("update line: %v", err)
	}
	requireDecimal(t, "25.00", line.Subtotal, "line subtotal")

	stored, _, err := f.uc.GetInvoice(context.Background(), invoice.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}
	requireDecimal(t, "25.00", stored.Subtotal, "subtotal")
	requireDecimal(t, "3.25", stored.Tax, "tax")
	requireDecimal(t, "28.25", stored.GrandTotal, "grand total")

	// three more units were taken from stock
	product, err := f.productRepo.GetByID(context.Background(), f.widget.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	requireDecimal(t, "95", product.StockOnHand, "stock on hand")
}

func TestInvoiceUseCase_UpdateLine_WrongInvoice(t *testing.T) {
	f := newInvoiceFixture(t)

	first := f.createInvoice(t, usecase.LineInput{ProductID: f.widget.ID, Quantity: decimal.NewFromInt(1)})
	second := f.createInvoice(t)

	_, lines, err := f.uc.GetInvoice(context.Background(), first.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}

	qty := decimal.NewFromInt(2)
	_, err = f.uc.UpdateLine(context.Background(), second.ID, lines[0].ID, usecase.UpdateLineInput{Quantity: &qty})
	if !errors.Is(err, domain.ErrInvoiceLineNotFound) {
		t.Errorf("expected ErrInvoiceLineNotFound, got %v", err)
	}
}

func TestInvoiceUseCase_RemoveLine(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice := f.createInvoice(t,
		usecase.LineInput{ProductID: f.widget.ID, Quantity: decimal.NewFromInt(4)},
		usecase.LineInput{ProductID: f.support.ID, Quantity: decimal.NewFromInt(1)},
	)

	_, lines, err := f.uc.GetInvoice(context.Background(), invoice.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}

	var widgetLine *domain.InvoiceLine
	for _, l := range lines {
		if l.ProductID == f.widget.ID {
			widgetLine = l
		}
	}
	if widgetLine == nil {
		t.Fatal("widget line not found")
	}

	if err := f.uc.RemoveLine(context.Background(), invoice.ID, widgetLine.ID); err != nil {
		t.Fatalf("remove line: %v", err)
	}

	stored, remaining, err := f.uc.GetInvoice(context.Background(), invoice.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("expected 1 remaining line, got %d", len(remaining))
	}
	requireDecimal(t, "40.00", stored.Subtotal, "subtotal")
	requireDecimal(t, "0", stored.Tax, "tax")
	requireDecimal(t, "40.00", stored.GrandTotal, "grand total")

	product, err := f.productRepo.GetByID(context.Background(), f.widget.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	requireDecimal(t, "100", product.StockOnHand, "stock on hand")
}

func TestInvoiceUseCase_UpdateInvoice_DiscountRecomputesGrandTotal(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice := f.createInvoice(t, usecase.LineInput{
		ProductID: f.widget.ID,
		Quantity:  decimal.NewFromInt(10),
	})
	requireDecimal(t, "56.50", invoice.GrandTotal, "grand total")

	discount := decimal.RequireFromString("6.50")
	updated, err := f.uc.UpdateInvoice(context.Background(), invoice.ID, usecase.UpdateInvoiceInput{
		Discount: &discount,
	})
	if err != nil {
		t.Fatalf("update invoice: %v", err)
	}

	// subtotal and tax come from the lines, untouched by the header change
	requireDecimal(t, "50.00", updated.Subtotal, "subtotal")
	requireDecimal(t, "6.50", updated.Tax, "tax")
	requireDecimal(t, "50.00", updated.GrandTotal, "grand total")
}

func TestInvoiceUseCase_DeleteInvoice(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice := f.createInvoice(t, usecase.LineInput{
		ProductID: f.widget.ID,
		Quantity:  decimal.NewFromInt(10),
	})

	if err := f.uc.DeleteInvoice(context.Background(), invoice.ID); err != nil {
		t.Fatalf("delete invoice: %v", err)
	}

	if _, _, err := f.uc.GetInvoice(context.Background(), invoice.ID); !errors.Is(err, domain.ErrInvoiceNotFound) {
		t.Errorf("expected ErrInvoiceNotFound, got %v", err)
	}

	// The lines must go with the invoice; none may survive as orphans.
	lines, err := f.lineRepo.ListByInvoice(context.Background(), invoice.ID)
	if err != nil {
		t.Fatalf("list lines: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected no lines after invoice deletion, got %d", len(lines))
	}

	product, err := f.productRepo.GetByID(context.Background(), f.widget.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	requireDecimal(t, "100", product.StockOnHand, "stock on hand")
}

// Two concurrent line additions must serialize on the invoice header lock so
// that the final totals reflect both lines, not just the last writer's view.
func TestInvoiceUseCase_ConcurrentAddLines(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice := f.createInvoice(t)

	var wg sync.WaitGroup
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.AddLine(context.Background(), invoice.ID, usecase.LineInput{
				ProductID: f.widget.ID,
				Quantity:  decimal.NewFromInt(3),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("add line: %v", err)
		}
	}

	stored, lines, err := f.uc.GetInvoice(context.Background(), invoice.ID)
	if err != nil {
		t.Fatalf("get invoice: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	requireDecimal(t, "30.00", stored.Subtotal, "subtotal")
	requireDecimal(t, "3.90", stored.Tax, "tax")
	requireDecimal(t, "33.90", stored.GrandTotal, "grand total")

	product, err := f.productRepo.GetByID(context.Background(), f.widget.ID)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	requireDecimal(t, "94", product.StockOnHand, "stock on hand")
}

func TestInvoiceUseCase_GetInvoiceByNumber(t *testing.T) {
	f := newInvoiceFixture(t)

	invoice := f.createInvoice(t)

	found, _, err := f.uc.GetInvoiceByNumber(context.Background(), invoice.Number)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != invoice.ID {
		t.Errorf("expected invoice %s, got %s", invoice.ID, found.ID)
	}

	if _, _, err := f.uc.GetInvoiceByNumber(context.Background(), "INV-1999-0001"); !errors.Is(err, domain.ErrInvoiceNotFound) {
		t.Errorf("expected ErrInvoiceNotFound, got %v", err)
	}
}
