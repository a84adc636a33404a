package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/usecase"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound},
		{"invoice not found", domain.ErrInvoiceNotFound, http.StatusNotFound},
		{"invoice line not found", domain.ErrInvoiceLineNotFound, http.StatusNotFound},
		{"debit credit exclusivity", domain.ErrDebitCreditExclusivity, http.StatusBadRequest},
		{"negative line subtotal", domain.ErrNegativeLineSubtotal, http.StatusBadRequest},
		{"invalid quantity", domain.ErrInvalidQuantity, http.StatusBadRequest},
		{"inactive client", domain.ErrInactiveClient, http.StatusBadRequest},
		{"insufficient stock", domain.ErrInsufficientStock, http.StatusBadRequest},
		{"invalid report digits", usecase.ErrInvalidDigits, http.StatusBadRequest},
		{"account in use", domain.ErrAccountInUse, http.StatusConflict},
		{"product in use", domain.ErrProductInUse, http.StatusConflict},
		{"transaction has entries", domain.ErrTransactionHasEntries, http.StatusConflict},
		{"duplicate account code", domain.ErrDuplicateAccountCode, http.StatusConflict},
		{"duplicate invoice number", domain.ErrDuplicateInvoiceNumber, http.StatusConflict},
		{"concurrency conflict", domain.ErrConcurrencyConflict, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.want {
				t.Fatalf("expected status %d, got %d", tt.want, got)
			}
		})
	}
}

func TestMapDomainError_Wrapped(t *testing.T) {
	err := errors.Join(errors.New("context"), domain.ErrConcurrencyConflict)
	if got := mapDomainError(err); got != http.StatusConflict {
		t.Fatalf("expected wrapped conflict to map to 409, got %d", got)
	}
}

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=50&bad=abc", nil)

	if got := parseIntQuery(req, "limit", 20); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
	if got := parseIntQuery(req, "bad", 20); got != 20 {
		t.Fatalf("expected default 20 for unparseable value, got %d", got)
	}
	if got := parseIntQuery(req, "missing", 20); got != 20 {
		t.Fatalf("expected default 20 for missing value, got %d", got)
	}
}

func TestParseTimeQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?from=2026-01-15&to=2026-01-31T12:00:00Z&bad=notadate", nil)

	from, err := parseTimeQuery(req, "from")
	if err != nil || from == nil {
		t.Fatalf("expected bare date to parse, got %v, %v", from, err)
	}
	if from.Year() != 2026 || from.Month() != 1 || from.Day() != 15 {
		t.Fatalf("unexpected date %v", from)
	}

	to, err := parseTimeQuery(req, "to")
	if err != nil || to == nil {
		t.Fatalf("expected RFC 3339 timestamp to parse, got %v, %v", to, err)
	}
	if to.Hour() != 12 {
		t.Fatalf("unexpected timestamp %v", to)
	}

	if _, err := parseTimeQuery(req, "bad"); err == nil {
		t.Fatal("expected error for unparseable timestamp")
	}

	missing, err := parseTimeQuery(req, "missing")
	if err != nil || missing != nil {
		t.Fatalf("expected nil for absent parameter, got %v, %v", missing, err)
	}
}
