package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerbook/internal/adapter/http/dto"
	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/usecase"
)

type invoiceServiceStub struct {
	createFn      func(ctx context.Context, input usecase.CreateInvoiceInput) (*domain.Invoice, error)
	getFn         func(ctx context.Context, id string) (*domain.Invoice, []*domain.InvoiceLine, error)
	getByNumberFn func(ctx context.Context, number string) (*domain.Invoice, []*domain.InvoiceLine, error)
	listFn        func(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.Invoice, error)
	updateFn      func(ctx context.Context, id string, input usecase.UpdateInvoiceInput) (*domain.Invoice, error)
	deleteFn      func(ctx context.Context, id string) error
	addLineFn     func(ctx context.Context, invoiceID string, input usecase.LineInput) (*domain.InvoiceLine, error)
	updateLineFn  func(ctx context.Context, invoiceID string, lineID int64, input usecase.UpdateLineInput) (*domain.InvoiceLine, error)
	removeLineFn  func(ctx context.Context, invoiceID string, lineID int64) error
}

func (s *invoiceServiceStub) CreateInvoice(ctx context.Context, input usecase.CreateInvoiceInput) (*domain.Invoice, error) {
	return s.createFn(ctx, input)
}

func (s *invoiceServiceStub) GetInvoice(ctx context.Context, id string) (*domain.Invoice, []*domain.InvoiceLine, error) {
	return s.getFn(ctx, id)
}

func (s *invoiceServiceStub) GetInvoiceByNumber(ctx context.Context, number string) (*domain.Invoice, []*domain.InvoiceLine, error) {
	return s.getByNumberFn(ctx, number)
}

func (s *invoiceServiceStub) ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.Invoice, error) {
	return s.listFn(ctx, filter)
}

func (s *invoiceServiceStub) UpdateInvoice(ctx context.Context, id string, input usecase.UpdateInvoiceInput) (*domain.Invoice, error) {
	return s.updateFn(ctx, id, input)
}

func (s *invoiceServiceStub) DeleteInvoice(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *invoiceServiceStub) AddLine(ctx context.Context, invoiceID string, input usecase.LineInput) (*domain.InvoiceLine, error) {
	return s.addLineFn(ctx, invoiceID, input)
}

func (s *invoiceServiceStub) UpdateLine(ctx context.Context, invoiceID string, lineID int64, input usecase.UpdateLineInput) (*domain.InvoiceLine, error) {
	return s.updateLineFn(ctx, invoiceID, lineID, input)
}

func (s *invoiceServiceStub) RemoveLine(ctx context.Context, invoiceID string, lineID int64) error {
	return s.removeLineFn(ctx, invoiceID, lineID)
}

func TestInvoiceHandler_Create_Success(t *testing.T) {
	invoice := &domain.Invoice{
		ID:         "01INV",
		Number:     "INV-2026-0001",
		Subtotal:   decimal.RequireFromString("45.00"),
		Tax:        decimal.RequireFromString("5.85"),
		GrandTotal: decimal.RequireFromString("50.85"),
	}

	var captured usecase.CreateInvoiceInput
	handler := NewInvoiceHandler(&invoiceServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateInvoiceInput) (*domain.Invoice, error) {
			captured = input
			return invoice, nil
		},
	})

	clientID := int64(1)
	body, _ := json.Marshal(dto.CreateInvoiceRequest{
		ClientID: &clientID,
		Lines: []dto.InvoiceLineRequest{
			{ProductID: 2, Quantity: decimal.RequireFromString("10")},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/invoices", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(captured.Lines) != 1 || captured.Lines[0].ProductID != 2 {
		t.Fatalf("expected line input to pass through, got %+v", captured.Lines)
	}

	var resp dto.InvoiceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Number != "INV-2026-0001" {
		t.Fatalf("expected number INV-2026-0001, got %s", resp.Number)
	}
}

func TestInvoiceHandler_Create_InsufficientStock(t *testing.T) {
	handler := NewInvoiceHandler(&invoiceServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateInvoiceInput) (*domain.Invoice, error) {
			return nil, domain.ErrInsufficientStock
		},
	})

	body, _ := json.Marshal(dto.CreateInvoiceRequest{
		Lines: []dto.InvoiceLineRequest{{ProductID: 2, Quantity: decimal.RequireFromString("500")}},
	})

	req := httptest.NewRequest(http.MethodPost, "/invoices", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestInvoiceHandler_Get_WithLines(t *testing.T) {
	handler := NewInvoiceHandler(&invoiceServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.Invoice, []*domain.InvoiceLine, error) {
			return &domain.Invoice{ID: id, Number: "INV-2026-0002"},
				[]*domain.InvoiceLine{{ID: 1, InvoiceID: id, ProductID: 2}}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/invoices/01INV", nil)
	req = withURLParam(req, "id", "01INV")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp dto.InvoiceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(resp.Lines))
	}
}

func TestInvoiceHandler_AddLine_ConcurrencyConflict(t *testing.T) {
	handler := NewInvoiceHandler(&invoiceServiceStub{
		addLineFn: func(ctx context.Context, invoiceID string, input usecase.LineInput) (*domain.InvoiceLine, error) {
			return nil, domain.ErrConcurrencyConflict
		},
	})

	body, _ := json.Marshal(dto.InvoiceLineRequest{ProductID: 2, Quantity: decimal.RequireFromString("1")})
	req := httptest.NewRequest(http.MethodPost, "/invoices/01INV/lines", bytes.NewReader(body))
	req = withURLParam(req, "id", "01INV")
	rec := httptest.NewRecorder()

	handler.AddLine(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestInvoiceHandler_UpdateLine_WrongInvoice(t *testing.T) {
	handler := NewInvoiceHandler(&invoiceServiceStub{
		updateLineFn: func(ctx context.Context, invoiceID string, lineID int64, input usecase.UpdateLineInput) (*domain.InvoiceLine, error) {
			return nil, domain.ErrInvoiceLineNotFound
		},
	})

	body, _ := json.Marshal(dto.UpdateInvoiceLineRequest{})
	req := httptest.NewRequest(http.MethodPatch, "/invoices/01INV/lines/9", bytes.NewReader(body))
	req = withURLParam(req, "id", "01INV", "lineID", "9")
	rec := httptest.NewRecorder()

	handler.UpdateLine(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestInvoiceHandler_RemoveLine_Success(t *testing.T) {
	var removedInvoice string
	var removedLine int64
	handler := NewInvoiceHandler(&invoiceServiceStub{
		removeLineFn: func(ctx context.Context, invoiceID string, lineID int64) error {
			removedInvoice = invoiceID
			removedLine = lineID
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/invoices/01INV/lines/9", nil)
	req = withURLParam(req, "id", "01INV", "lineID", "9")
	rec := httptest.NewRecorder()

	handler.RemoveLine(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if removedInvoice != "01INV" || removedLine != 9 {
		t.Fatalf("expected removal of line 9 on 01INV, got %s/%d", removedInvoice, removedLine)
	}
}
