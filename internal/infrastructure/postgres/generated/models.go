package generated

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Account struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Class string `json:"class"`
}

type Client struct {
	ID           int64              `json:"id"`
	Name         string             `json:"name"`
	TaxID        string             `json:"tax_id"`
	Address      string             `json:"address"`
	Phone        string             `json:"phone"`
	Email        string             `json:"email"`
	Kind         string             `json:"kind"`
	Notes        string             `json:"notes"`
	Active       bool               `json:"active"`
	RegisteredAt pgtype.Timestamptz `json:"registered_at"`
}

type Entry struct {
	ID            int64          `json:"id"`
	TransactionID int64          `json:"transaction_id"`
	AccountID     int64          `json:"account_id"`
	Debit         pgtype.Numeric `json:"debit"`
	Credit        pgtype.Numeric `json:"credit"`
}

type Invoice struct {
	ID            string             `json:"id"`
	Number        string             `json:"number"`
	ClientID      pgtype.Int8        `json:"client_id"`
	TransactionID pgtype.Int8        `json:"transaction_id"`
	Subtotal      pgtype.Numeric     `json:"subtotal"`
	Discount      pgtype.Numeric     `json:"discount"`
	Tax           pgtype.Numeric     `json:"tax"`
	GrandTotal    pgtype.Numeric     `json:"grand_total"`
	PaymentTerms  string             `json:"payment_terms"`
	Salesperson   string             `json:"salesperson"`
	Notes         string             `json:"notes"`
	IssuedAt      pgtype.Timestamptz `json:"issued_at"`
	DueAt         pgtype.Timestamptz `json:"due_at"`
}

type InvoiceLine struct {
	ID              int64          `json:"id"`
	InvoiceID       string         `json:"invoice_id"`
	ProductID       int64          `json:"product_id"`
	Description     string         `json:"description"`
	Quantity        pgtype.Numeric `json:"quantity"`
	UnitPrice       pgtype.Numeric `json:"unit_price"`
	DiscountPercent pgtype.Numeric `json:"discount_percent"`
	DiscountAmount  pgtype.Numeric `json:"discount_amount"`
	Subtotal        pgtype.Numeric `json:"subtotal"`
	Tax             pgtype.Numeric `json:"tax"`
	Total           pgtype.Numeric `json:"total"`
}

type Period struct {
	ID        int64              `json:"id"`
	StartDate pgtype.Timestamptz `json:"start_date"`
	EndDate   pgtype.Timestamptz `json:"end_date"`
	Kind      string             `json:"kind"`
	State     string             `json:"state"`
}

type Product struct {
	ID           int64              `json:"id"`
	Code         string             `json:"code"`
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	Kind         string             `json:"kind"`
	Category     string             `json:"category"`
	UnitPrice    pgtype.Numeric     `json:"unit_price"`
	CostPrice    pgtype.Numeric     `json:"cost_price"`
	Unit         string             `json:"unit"`
	StockOnHand  pgtype.Numeric     `json:"stock_on_hand"`
	MinimumStock pgtype.Numeric     `json:"minimum_stock"`
	Taxable      bool               `json:"taxable"`
	Active       bool               `json:"active"`
	RegisteredAt pgtype.Timestamptz `json:"registered_at"`
}

type Transaction struct {
	ID          int64              `json:"id"`
	OccurredAt  pgtype.Timestamptz `json:"occurred_at"`
	Description string             `json:"description"`
	Kind        string             `json:"kind"`
	Currency    string             `json:"currency"`
	Category    string             `json:"category"`
	CreatedBy   string             `json:"created_by"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	PeriodID    pgtype.Int8        `json:"period_id"`
}
