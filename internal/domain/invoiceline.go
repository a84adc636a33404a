package domain

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// InvoiceLine is one product line of an invoice. Subtotal, Tax, and Total are
// derived fields: they are always the output of ComputeLine for the line's
// current inputs, never caller-supplied.
type InvoiceLine struct {
	ID              int64
	InvoiceID       string
	ProductID       int64
	Description     string
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal
	DiscountAmount  decimal.Decimal
	Subtotal        decimal.Decimal
	Tax             decimal.Decimal
	Total           decimal.Decimal
}

// LineAmounts holds the derived monetary fields of an invoice line.
type LineAmounts struct {
	DiscountAmount decimal.Decimal
	Subtotal       decimal.Decimal
	Tax            decimal.Decimal
	Total          decimal.Decimal
}

// ComputeLine derives an invoice line's monetary fields. The computation is
// deterministic: it is re-run in full on every line update, not only on
// creation.
//
// Order of operations:
//  1. raw = quantity * unitPrice
//  2. a positive discount percentage overrides any supplied discount amount:
//     discountAmount = round(raw * pct / 100, 2)
//  3. subtotal = raw - discountAmount, which must not be negative
//  4. tax = round(subtotal * taxRate, 2) when the product is taxable, else 0
//  5. total = subtotal + tax
func ComputeLine(quantity, unitPrice, discountPercent, discountAmount decimal.Decimal, taxable bool, taxRate decimal.Decimal) (LineAmounts, error) {
	if !quantity.IsPositive() {
		return LineAmounts{}, ErrInvalidQuantity
	}

	if discountPercent.IsNegative() || discountPercent.GreaterThan(oneHundred) {
		return LineAmounts{}, ErrInvalidDiscountPercent
	}

	if discountAmount.IsNegative() {
		return LineAmounts{}, ErrInvalidDiscountAmount
	}

	raw := quantity.Mul(unitPrice)

	discount := discountAmount
	if discountPercent.IsPositive() {
		discount = raw.Mul(discountPercent).Div(oneHundred).Round(2)
	}

	subtotal := raw.Sub(discount)
	if subtotal.IsNegative() {
		return LineAmounts{}, ErrNegativeLineSubtotal
	}

	tax := decimal.Zero
	if taxable {
		tax = subtotal.Mul(taxRate).Round(2)
	}

	return LineAmounts{
		DiscountAmount: discount,
		Subtotal:       subtotal,
		Tax:            tax,
		Total:          subtotal.Add(tax),
	}, nil
}
