package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/usecase"
)

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Class string `json:"class"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Code:  r.Code,
		Name:  r.Name,
		Class: domain.AccountClass(r.Class),
	}
}

// CreatePeriodRequest represents a request to create an accounting period.
type CreatePeriodRequest struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Type      string    `json:"type"`
}

// ToUseCaseInput converts to use case input.
func (r *CreatePeriodRequest) ToUseCaseInput() usecase.CreatePeriodInput {
	return usecase.CreatePeriodInput{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Type:      domain.PeriodType(r.Type),
	}
}

// CreateTransactionRequest represents a request to create a transaction header.
type CreateTransactionRequest struct {
	OccurredAt  *time.Time `json:"occurred_at,omitempty"`
	Description string     `json:"description"`
	Kind        string     `json:"kind"`
	Currency    string     `json:"currency"`
	Category    string     `json:"category,omitempty"`
	CreatedBy   string     `json:"created_by,omitempty"`
	PeriodID    *int64     `json:"period_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransactionRequest) ToUseCaseInput() usecase.CreateTransactionInput {
	occurredAt := time.Now().UTC()
	if r.OccurredAt != nil {
		occurredAt = *r.OccurredAt
	}
	return usecase.CreateTransactionInput{
		OccurredAt:  occurredAt,
		Description: r.Description,
		Kind:        domain.TransactionKind(r.Kind),
		Currency:    r.Currency,
		Category:    r.Category,
		CreatedBy:   r.CreatedBy,
		PeriodID:    r.PeriodID,
	}
}

// UpdateTransactionRequest represents a request to update a transaction header.
type UpdateTransactionRequest struct {
	OccurredAt  *time.Time `json:"occurred_at,omitempty"`
	Description *string    `json:"description,omitempty"`
	Kind        *string    `json:"kind,omitempty"`
	Category    *string    `json:"category,omitempty"`
	PeriodID    *int64     `json:"period_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateTransactionRequest) ToUseCaseInput() usecase.UpdateTransactionInput {
	input := usecase.UpdateTransactionInput{
		OccurredAt:  r.OccurredAt,
		Description: r.Description,
		Category:    r.Category,
		PeriodID:    r.PeriodID,
	}
	if r.Kind != nil {
		kind := domain.TransactionKind(*r.Kind)
		input.Kind = &kind
	}
	return input
}

// RecordEntryRequest represents a request to record a journal entry.
type RecordEntryRequest struct {
	TransactionID int64           `json:"transaction_id"`
	AccountID     int64           `json:"account_id"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}

// ToUseCaseInput converts to use case input.
func (r *RecordEntryRequest) ToUseCaseInput() usecase.RecordEntryInput {
	return usecase.RecordEntryInput{
		TransactionID: r.TransactionID,
		AccountID:     r.AccountID,
		Debit:         r.Debit,
		Credit:        r.Credit,
	}
}

// UpdateEntryRequest represents a request to update a journal entry.
type UpdateEntryRequest struct {
	AccountID *int64           `json:"account_id,omitempty"`
	Debit     *decimal.Decimal `json:"debit,omitempty"`
	Credit    *decimal.Decimal `json:"credit,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateEntryRequest) ToUseCaseInput() usecase.UpdateEntryInput {
	return usecase.UpdateEntryInput{
		AccountID: r.AccountID,
		Debit:     r.Debit,
		Credit:    r.Credit,
	}
}

// CreateProductRequest represents a request to register a product or service.
type CreateProductRequest struct {
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
}

// ToUseCaseInput converts to use case input.
func (r *CreateProductRequest) ToUseCaseInput() usecase.CreateProductInput {
	return usecase.CreateProductInput{
		Code:         r.Code,
		Name:         r.Name,
		Description:  r.Description,
		Kind:         domain.ProductKind(r.Kind),
		Category:     r.Category,
		UnitPrice:    r.UnitPrice,
		CostPrice:    r.CostPrice,
		Unit:         r.Unit,
		StockOnHand:  r.StockOnHand,
		MinimumStock: r.MinimumStock,
		Taxable:      r.Taxable,
	}
}

// UpdateProductRequest represents a request to update a product's catalog fields.
type UpdateProductRequest struct {
	Name         *string          `json:"name,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Category     *string          `json:"category,omitempty"`
	UnitPrice    *decimal.Decimal `json:"unit_price,omitempty"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
	MinimumStock *decimal.Decimal `json:"minimum_stock,omitempty"`
	Taxable      *bool            `json:"taxable,omitempty"`
	Active       *bool            `json:"active,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateProductRequest) ToUseCaseInput() usecase.UpdateProductInput {
	return usecase.UpdateProductInput{
		Name:         r.Name,
		Description:  r.Description,
		Category:     r.Category,
		UnitPrice:    r.UnitPrice,
		CostPrice:    r.CostPrice,
		MinimumStock: r.MinimumStock,
		Taxable:      r.Taxable,
		Active:       r.Active,
	}
}

// CreateClientRequest represents a request to register a client.
type CreateClientRequest struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateClientRequest) ToUseCaseInput() usecase.CreateClientInput {
	return usecase.CreateClientInput{
		Name:    r.Name,
		TaxID:   r.TaxID,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
		Kind:    domain.ClientKind(r.Kind),
		Notes:   r.Notes,
	}
}

// UpdateClientRequest represents a request to update a client's details.
type UpdateClientRequest struct {
	Name    *string `json:"name,omitempty"`
	TaxID   *string `json:"tax_id,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
	Notes   *string `json:"notes,omitempty"`
	Active  *bool   `json:"active,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateClientRequest) ToUseCaseInput() usecase.UpdateClientInput {
	return usecase.UpdateClientInput{
		Name:    r.Name,
		TaxID:   r.TaxID,
		Address: r.Address,
		Phone:   r.Phone,
		Email:   r.Email,
		Notes:   r.Notes,
		Active:  r.Active,
	}
}

// InvoiceLineRequest represents one line of an invoice request.
type InvoiceLineRequest struct {
	ProductID       int64            `json:"product_id"`
	Description     string           `json:"description,omitempty"`
	Quantity        decimal.Decimal  `json:"quantity"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	DiscountPercent decimal.Decimal  `json:"discount_percent"`
	DiscountAmount  decimal.Decimal  `json:"discount_amount"`
}

// ToUseCaseInput converts to use case input.
func (r *InvoiceLineRequest) ToUseCaseInput() usecase.LineInput {
	return usecase.LineInput{
		ProductID:       r.ProductID,
		Description:     r.Description,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		DiscountPercent: r.DiscountPercent,
		DiscountAmount:  r.DiscountAmount,
	}
}

// CreateInvoiceRequest represents a request to create an invoice with lines.
type CreateInvoiceRequest struct {
	ClientID      *int64               `json:"client_id,omitempty"`
	TransactionID *int64               `json:"transaction_id,omitempty"`
	Discount      decimal.Decimal      `json:"discount"`
	PaymentTerms  string               `json:"payment_terms,omitempty"`
	Salesperson   string               `json:"salesperson,omitempty"`
	Notes         string               `json:"notes,omitempty"`
	IssuedAt      *time.Time           `json:"issued_at,omitempty"`
	DueAt         *time.Time           `json:"due_at,omitempty"`
	Lines         []InvoiceLineRequest `json:"lines"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateInvoiceRequest) ToUseCaseInput() usecase.CreateInvoiceInput {
	lines := make([]usecase.LineInput, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = l.ToUseCaseInput()
	}
	return usecase.CreateInvoiceInput{
		ClientID:      r.ClientID,
		TransactionID: r.TransactionID,
		Discount:      r.Discount,
		PaymentTerms:  r.PaymentTerms,
		Salesperson:   r.Salesperson,
		Notes:         r.Notes,
		IssuedAt:      r.IssuedAt,
		DueAt:         r.DueAt,
		Lines:         lines,
	}
}

// UpdateInvoiceRequest represents a request to update invoice header metadata.
type UpdateInvoiceRequest struct {
	Discount     *decimal.Decimal `json:"discount,omitempty"`
	PaymentTerms *string          `json:"payment_terms,omitempty"`
	Salesperson  *string          `json:"salesperson,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
	DueAt        *time.Time       `json:"due_at,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateInvoiceRequest) ToUseCaseInput() usecase.UpdateInvoiceInput {
	return usecase.UpdateInvoiceInput{
		Discount:     r.Discount,
		PaymentTerms: r.PaymentTerms,
		Salesperson:  r.Salesperson,
		Notes:        r.Notes,
		DueAt:        r.DueAt,
	}
}

// UpdateInvoiceLineRequest represents a request to update an invoice line.
type UpdateInvoiceLineRequest struct {
	Description     *string          `json:"description,omitempty"`
	Quantity        *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	DiscountPercent *decimal.Decimal `json:"discount_percent,omitempty"`
	DiscountAmount  *decimal.Decimal `json:"discount_amount,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateInvoiceLineRequest) ToUseCaseInput() usecase.UpdateLineInput {
	return usecase.UpdateLineInput{
		Description:     r.Description,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		DiscountPercent: r.DiscountPercent,
		DiscountAmount:  r.DiscountAmount,
	}
}
