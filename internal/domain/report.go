package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	From     *time.Time
	To       *time.Time
	PeriodID *int64
	Kind     *TransactionKind
	Limit    int
	Offset   int
}

// EntryFilter narrows journal entry listings.
type EntryFilter struct {
	TransactionID *int64
	AccountID     *int64
	Limit         int
	Offset        int
}

// InvoiceFilter narrows invoice listings.
type InvoiceFilter struct {
	ClientID *int64
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// AccountMovement is one account's summed ledger activity within a date range.
type AccountMovement struct {
	AccountCode string
	AccountName string
	Class       AccountClass
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// Balance is the account's debit-minus-credit movement.
func (m *AccountMovement) Balance() decimal.Decimal {
	return m.TotalDebit.Sub(m.TotalCredit)
}

// LedgerGroup aggregates the movements of all accounts sharing a code prefix
// (the "major account" of a general ledger report).
type LedgerGroup struct {
	MajorCode   string
	MajorName   string
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Balance     decimal.Decimal
	Subaccounts []*AccountMovement
}

// GeneralLedger is the full general ledger report.
type GeneralLedger struct {
	Groups      []*LedgerGroup
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Difference  decimal.Decimal
	GeneratedAt time.Time
}

// BillingStats summarizes invoicing activity over a date range.
type BillingStats struct {
	InvoiceCount   int64           `json:"invoice_count"`
	TotalSales     decimal.Decimal `json:"total_sales"`
	TotalSubtotal  decimal.Decimal `json:"total_subtotal"`
	TotalTax       decimal.Decimal `json:"total_tax"`
	TotalDiscounts decimal.Decimal `json:"total_discounts"`
	AverageSale    decimal.Decimal `json:"average_sale"`
}

// ClientSales is one client's invoiced volume, for the top-clients report.
type ClientSales struct {
	ClientID     int64           `json:"client_id"`
	Name         string          `json:"name"`
	TaxID        string          `json:"tax_id"`
	InvoiceCount int64           `json:"invoice_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
}
