package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is an invoice header. Subtotal, Tax, and GrandTotal are derived
// aggregates: at all times they equal the sums over the invoice's current
// lines, maintained by the total recomputation path and written by nothing
// else. Discount is a header-level field set by the caller; it is not derived
// from line discounts.
type Invoice struct {
	ID            string
	Number        string
	ClientID      *int64
	TransactionID *int64
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Tax           decimal.Decimal
	GrandTotal    decimal.Decimal
	PaymentTerms  string
	Salesperson   string
	Notes         string
	IssuedAt      time.Time
	DueAt         *time.Time
}

// InvoiceTotals is the aggregate of an invoice's lines.
type InvoiceTotals struct {
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	GrandTotal decimal.Decimal
}

// SumLines aggregates the derived fields of the given lines and applies the
// header discount: grand total = subtotal + tax - discount.
func SumLines(lines []*InvoiceLine, headerDiscount decimal.Decimal) InvoiceTotals {
	subtotal := decimal.Zero
	tax := decimal.Zero

	for _, l := range lines {
		subtotal = subtotal.Add(l.Subtotal)
		tax = tax.Add(l.Tax)
	}

	return InvoiceTotals{
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: subtotal.Add(tax).Sub(headerDiscount),
	}
}
