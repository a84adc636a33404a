package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerbook/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID    int64  `json:"id"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Class string `json:"class"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:    a.ID,
		Code:  a.Code,
		Name:  a.Name,
		Class: string(a.Class),
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// PeriodResponse represents an accounting period in API responses.
type PeriodResponse struct {
	ID        int64     `json:"id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Type      string    `json:"type"`
	State     string    `json:"state"`
}

// PeriodFromDomain converts domain period to response.
func PeriodFromDomain(p *domain.Period) *PeriodResponse {
	return &PeriodResponse{
		ID:        p.ID,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Type:      string(p.Type),
		State:     string(p.State),
	}
}

// PeriodsFromDomain converts domain periods to responses.
func PeriodsFromDomain(periods []*domain.Period) []*PeriodResponse {
	result := make([]*PeriodResponse, len(periods))
	for i, p := range periods {
		result[i] = PeriodFromDomain(p)
	}
	return result
}

// TransactionResponse represents a transaction header in API responses.
type TransactionResponse struct {
	ID          int64     `json:"id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Description string    `json:"description"`
	Kind        string    `json:"kind"`
	Currency    string    `json:"currency"`
	Category    string    `json:"category,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	PeriodID    *int64    `json:"period_id,omitempty"`
}

// TransactionFromDomain converts domain transaction to response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		OccurredAt:  t.OccurredAt,
		Description: t.Description,
		Kind:        string(t.Kind),
		Currency:    t.Currency,
		Category:    t.Category,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		PeriodID:    t.PeriodID,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// EntryResponse represents a journal entry in API responses.
type EntryResponse struct {
	ID            int64           `json:"id"`
	TransactionID int64           `json:"transaction_id"`
	AccountID     int64           `json:"account_id"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}

// EntryFromDomain converts domain entry to response.
func EntryFromDomain(e *domain.JournalEntry) *EntryResponse {
	return &EntryResponse{
		ID:            e.ID,
		TransactionID: e.TransactionID,
		AccountID:     e.AccountID,
		Debit:         e.Debit,
		Credit:        e.Credit,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.JournalEntry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// BalanceResponse represents a transaction's debit/credit balance query.
type BalanceResponse struct {
	TransactionID int64           `json:"transaction_id"`
	TotalDebit    decimal.Decimal `json:"total_debit"`
	TotalCredit   decimal.Decimal `json:"total_credit"`
	Balanced      bool            `json:"balanced"`
}

// BalanceFromDomain converts a domain balance to response.
func BalanceFromDomain(b domain.TransactionBalance) *BalanceResponse {
	return &BalanceResponse{
		TransactionID: b.TransactionID,
		TotalDebit:    b.TotalDebit,
		TotalCredit:   b.TotalCredit,
		Balanced:      b.Balanced,
	}
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Kind         string          `json:"kind"`
	Category     string          `json:"category,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	Unit         string          `json:"unit,omitempty"`
	StockOnHand  decimal.Decimal `json:"stock_on_hand"`
	MinimumStock decimal.Decimal `json:"minimum_stock"`
	Taxable      bool            `json:"taxable"`
	Active       bool            `json:"active"`
	RegisteredAt time.Time       `json:"registered_at"`
}

// ProductFromDomain converts domain product to response.
func ProductFromDomain(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Description:  p.Description,
		Kind:         string(p.Kind),
		Category:     p.Category,
		UnitPrice:    p.UnitPrice,
		CostPrice:    p.CostPrice,
		Unit:         p.Unit,
		StockOnHand:  p.StockOnHand,
		MinimumStock: p.MinimumStock,
		Taxable:      p.Taxable,
		Active:       p.Active,
		RegisteredAt: p.RegisteredAt,
	}
}

// ProductsFromDomain converts domain products to responses.
func ProductsFromDomain(products []*domain.Product) []*ProductResponse {
	result := make([]*ProductResponse, len(products))
	for i, p := range products {
		result[i] = ProductFromDomain(p)
	}
	return result
}

// ClientResponse represents a client in API responses.
type ClientResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	TaxID        string    `json:"tax_id,omitempty"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	Kind         string    `json:"kind"`
	Notes        string    `json:"notes,omitempty"`
	Active       bool      `json:"active"`
	RegisteredAt time.Time `json:"registered_at"`
}

// ClientFromDomain converts domain client to response.
func ClientFromDomain(c *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		TaxID:        c.TaxID,
		Address:      c.Address,
		Phone:        c.Phone,
		Email:        c.Email,
		Kind:         string(c.Kind),
		Notes:        c.Notes,
		Active:       c.Active,
		RegisteredAt: c.RegisteredAt,
	}
}

// ClientsFromDomain converts domain clients to responses.
func ClientsFromDomain(clients []*domain.Client) []*ClientResponse {
	result := make([]*ClientResponse, len(clients))
	for i, c := range clients {
		result[i] = ClientFromDomain(c)
	}
	return result
}

// InvoiceLineResponse represents an invoice line in API responses.
type InvoiceLineResponse struct {
	ID              int64           `json:"id"`
	InvoiceID       string          `json:"invoice_id"`
	ProductID       int64           `json:"product_id"`
	Description     string          `json:"description,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
}

// InvoiceLineFromDomain converts domain invoice line to response.
func InvoiceLineFromDomain(l *domain.InvoiceLine) *InvoiceLineResponse {
	return &InvoiceLineResponse{
		ID:              l.ID,
		InvoiceID:       l.InvoiceID,
		ProductID:       l.ProductID,
		Description:     l.Description,
		Quantity:        l.Quantity,
		UnitPrice:       l.UnitPrice,
		DiscountPercent: l.DiscountPercent,
		DiscountAmount:  l.DiscountAmount,
		Subtotal:        l.Subtotal,
		Tax:             l.Tax,
		Total:           l.Total,
	}
}

// InvoiceLinesFromDomain converts domain invoice lines to responses.
func InvoiceLinesFromDomain(lines []*domain.InvoiceLine) []*InvoiceLineResponse {
	result := make([]*InvoiceLineResponse, len(lines))
	for i, l := range lines {
		result[i] = InvoiceLineFromDomain(l)
	}
	return result
}

// InvoiceResponse represents an invoice header in API responses.
type InvoiceResponse struct {
	ID            string                 `json:"id"`
	Number        string                 `json:"number"`
	ClientID      *int64                 `json:"client_id,omitempty"`
	TransactionID *int64                 `json:"transaction_id,omitempty"`
	Subtotal      decimal.Decimal        `json:"subtotal"`
	Discount      decimal.Decimal        `json:"discount"`
	Tax           decimal.Decimal        `json:"tax"`
	GrandTotal    decimal.Decimal        `json:"grand_total"`
	PaymentTerms  string                 `json:"payment_terms,omitempty"`
	Salesperson   string                 `json:"salesperson,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	IssuedAt      time.Time              `json:"issued_at"`
	DueAt         *time.Time             `json:"due_at,omitempty"`
	Lines         []*InvoiceLineResponse `json:"lines,omitempty"`
}

// InvoiceFromDomain converts domain invoice to response.
func InvoiceFromDomain(inv *domain.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:            inv.ID,
		Number:        inv.Number,
		ClientID:      inv.ClientID,
		TransactionID: inv.TransactionID,
		Subtotal:      inv.Subtotal,
		Discount:      inv.Discount,
		Tax:           inv.Tax,
		GrandTotal:    inv.GrandTotal,
		PaymentTerms:  inv.PaymentTerms,
		Salesperson:   inv.Salesperson,
		Notes:         inv.Notes,
		IssuedAt:      inv.IssuedAt,
		DueAt:         inv.DueAt,
	}
}

// InvoiceWithLinesFromDomain converts an invoice and its lines to a response.
func InvoiceWithLinesFromDomain(inv *domain.Invoice, lines []*domain.InvoiceLine) *InvoiceResponse {
	resp := InvoiceFromDomain(inv)
	resp.Lines = InvoiceLinesFromDomain(lines)
	return resp
}

// InvoicesFromDomain converts domain invoices to responses.
func InvoicesFromDomain(invoices []*domain.Invoice) []*InvoiceResponse {
	result := make([]*InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		result[i] = InvoiceFromDomain(inv)
	}
	return result
}

// AccountMovementResponse represents one account's activity in a ledger report.
type AccountMovementResponse struct {
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	Class       string          `json:"class"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// LedgerGroupResponse represents a major-account group in a ledger report.
type LedgerGroupResponse struct {
	MajorCode   string                     `json:"major_code"`
	MajorName   string                     `json:"major_name"`
	TotalDebit  decimal.Decimal            `json:"total_debit"`
	TotalCredit decimal.Decimal            `json:"total_credit"`
	Balance     decimal.Decimal            `json:"balance"`
	Subaccounts []*AccountMovementResponse `json:"subaccounts,omitempty"`
}

// GeneralLedgerResponse represents the general ledger report.
type GeneralLedgerResponse struct {
	Groups      []*LedgerGroupResponse `json:"groups"`
	TotalDebit  decimal.Decimal        `json:"total_debit"`
	TotalCredit decimal.Decimal        `json:"total_credit"`
	Difference  decimal.Decimal        `json:"difference"`
	GeneratedAt time.Time              `json:"generated_at"`
}

// GeneralLedgerFromDomain converts the domain ledger report to a response.
func GeneralLedgerFromDomain(gl *domain.GeneralLedger) *GeneralLedgerResponse {
	groups := make([]*LedgerGroupResponse, len(gl.Groups))
	for i, g := range gl.Groups {
		subaccounts := make([]*AccountMovementResponse, len(g.Subaccounts))
		for j, m := range g.Subaccounts {
			subaccounts[j] = &AccountMovementResponse{
				AccountCode: m.AccountCode,
				AccountName: m.AccountName,
				Class:       string(m.Class),
				TotalDebit:  m.TotalDebit,
				TotalCredit: m.TotalCredit,
				Balance:     m.Balance(),
			}
		}
		groups[i] = &LedgerGroupResponse{
			MajorCode:   g.MajorCode,
			MajorName:   g.MajorName,
			TotalDebit:  g.TotalDebit,
			TotalCredit: g.TotalCredit,
			Balance:     g.Balance,
			Subaccounts: subaccounts,
		}
	}
	return &GeneralLedgerResponse{
		Groups:      groups,
		TotalDebit:  gl.TotalDebit,
		TotalCredit: gl.TotalCredit,
		Difference:  gl.Difference,
		GeneratedAt: gl.GeneratedAt,
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
