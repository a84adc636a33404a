package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductKind distinguishes stocked goods from services.
type ProductKind string

const (
	KindProduct ProductKind = "PRODUCT"
	KindService ProductKind = "SERVICE"
)

// Product is a sellable product or service referenced by invoice lines.
// Only physical products carry stock.
type Product struct {
	ID           int64
	Code         string
	Name         string
	Description  string
	Kind         ProductKind
	Category     string
	UnitPrice    decimal.Decimal
	CostPrice    decimal.Decimal
	Unit         string
	StockOnHand  decimal.Decimal
	MinimumStock decimal.Decimal
	Taxable      bool
	Active       bool
	RegisteredAt time.Time
}

// Tracked reports whether stock is maintained for this product.
func (p *Product) Tracked() bool {
	return p.Kind == KindProduct
}

// CheckStock verifies that qty units can be taken from stock. Services are
// never stock-limited.
func (p *Product) CheckStock(qty decimal.Decimal) error {
	if !p.Tracked() {
		return nil
	}

	if p.StockOnHand.LessThan(qty) {
		return ErrInsufficientStock
	}

	return nil
}
