package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/ledgerbook/internal/adapter/http/dto"
	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/usecase"
)

// InvoiceService defines the behavior needed by InvoiceHandler.
type InvoiceService interface {
	CreateInvoice(ctx context.Context, input usecase.CreateInvoiceInput) (*domain.Invoice, error)
	GetInvoice(ctx context.Context, id string) (*domain.Invoice, []*domain.InvoiceLine, error)
	GetInvoiceByNumber(ctx context.Context, number string) (*domain.Invoice, []*domain.InvoiceLine, error)
	ListInvoices(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.Invoice, error)
	UpdateInvoice(ctx context.Context, id string, input usecase.UpdateInvoiceInput) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, id string) error
	AddLine(ctx context.Context, invoiceID string, input usecase.LineInput) (*domain.InvoiceLine, error)
	UpdateLine(ctx context.Context, invoiceID string, lineID int64, input usecase.UpdateLineInput) (*domain.InvoiceLine, error)
	RemoveLine(ctx context.Context, invoiceID string, lineID int64) error
}

// InvoiceHandler handles invoicing HTTP requests.
type InvoiceHandler struct {
	invoiceUC InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceUC InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceUC: invoiceUC}
}

// Create creates an invoice with its lines and derived totals in one unit.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	invoice, err := h.invoiceUC.CreateInvoice(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to create invoice", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.InvoiceFromDomain(invoice))
}

// Get retrieves an invoice with its lines.
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing invoice ID", "")
		return
	}

	invoice, lines, err := h.invoiceUC.GetInvoice(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get invoice", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoiceWithLinesFromDomain(invoice, lines))
}

// GetByNumber retrieves an invoice by its formatted number.
func (h *InvoiceHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "number")
	if number == "" {
		writeError(w, http.StatusBadRequest, "missing invoice number", "")
		return
	}

	invoice, lines, err := h.invoiceUC.GetInvoiceByNumber(r.Context(), number)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get invoice", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoiceWithLinesFromDomain(invoice, lines))
}

// List lists invoices, optionally filtered by client or issue date range.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	from, err := parseTimeQuery(r, "from")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date", err.Error())
		return
	}
	to, err := parseTimeQuery(r, "to")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date", err.Error())
		return
	}

	invoices, err := h.invoiceUC.ListInvoices(r.Context(), domain.InvoiceFilter{
		ClientID: parseInt64Query(r, "client_id"),
		From:     from,
		To:       to,
		Limit:    parseIntQuery(r, "limit", 20),
		Offset:   parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list invoices", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoicesFromDomain(invoices))
}

// Update updates invoice header metadata. Totals are derived from lines and
// cannot be set directly.
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing invoice ID", "")
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	invoice, err := h.invoiceUC.UpdateInvoice(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update invoice", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoiceFromDomain(invoice))
}

// Delete removes an invoice and all of its lines.
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing invoice ID", "")
		return
	}

	if err := h.invoiceUC.DeleteInvoice(r.Context(), id); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to delete invoice", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddLine appends a line to an invoice and recomputes the totals.
func (h *InvoiceHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing invoice ID", "")
		return
	}

	var req dto.InvoiceLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	line, err := h.invoiceUC.AddLine(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to add invoice line", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.InvoiceLineFromDomain(line))
}

// UpdateLine changes a line and recomputes the invoice totals.
func (h *InvoiceHandler) UpdateLine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing invoice ID", "")
		return
	}

	lineID, err := parseIDParam(chi.URLParam(r, "lineID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid line ID", err.Error())
		return
	}

	var req dto.UpdateInvoiceLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	line, err := h.invoiceUC.UpdateLine(r.Context(), id, lineID, req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to update invoice line", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.InvoiceLineFromDomain(line))
}

// RemoveLine deletes a line and recomputes the invoice totals.
func (h *InvoiceHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing invoice ID", "")
		return
	}

	lineID, err := parseIDParam(chi.URLParam(r, "lineID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid line ID", err.Error())
		return
	}

	if err := h.invoiceUC.RemoveLine(r.Context(), id, lineID); err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to remove invoice line", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
