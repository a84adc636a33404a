package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/iho/ledgerbook/internal/adapter/http/dto"
	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/usecase"
)

// ReportService defines the behavior needed by ReportHandler.
type ReportService interface {
	GeneralLedger(ctx context.Context, input usecase.GeneralLedgerInput) (*domain.GeneralLedger, error)
	BillingStats(ctx context.Context, from, to *time.Time) (*domain.BillingStats, error)
	TopClients(ctx context.Context, limit int, from, to *time.Time) ([]*domain.ClientSales, error)
}

// ReportHandler handles reporting HTTP requests.
type ReportHandler struct {
	reportUC ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC ReportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// GeneralLedger produces the general ledger report grouped by major account.
func (h *ReportHandler) GeneralLedger(w http.ResponseWriter, r *http.Request) {
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

	ledger, err := h.reportUC.GeneralLedger(r.Context(), usecase.GeneralLedgerInput{
		Digits:        parseIntQuery(r, "digits", 1),
		From:          from,
		To:            to,
		IncludeDetail: r.URL.Query().Get("detail") == "true",
	})
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to generate ledger report", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.GeneralLedgerFromDomain(ledger))
}

// BillingStats summarizes invoicing activity over a date range.
func (h *ReportHandler) BillingStats(w http.ResponseWriter, r *http.Request) {
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

	stats, err := h.reportUC.BillingStats(r.Context(), from, to)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to compute billing stats", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// TopClients ranks clients by invoiced volume.
func (h *ReportHandler) TopClients(w http.ResponseWriter, r *http.Request) {
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

	clients, err := h.reportUC.TopClients(r.Context(), parseIntQuery(r, "limit", 10), from, to)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to rank clients", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, clients)
}
