package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerbook/internal/domain"
)

// AccountRepository defines data access for the chart of accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByCode(ctx context.Context, code string) (*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	// Delete removes an account; it fails with domain.ErrAccountInUse while
	// journal entries reference it.
	Delete(ctx context.Context, id int64) error
}

// PeriodRepository defines data access for accounting periods.
type PeriodRepository interface {
	Create(ctx context.Context, period *domain.Period) error
	GetByID(ctx context.Context, id int64) (*domain.Period, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Period, error)
}

// TransactionRepository defines data access for transaction headers.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *domain.Transaction) error
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error)
	Update(ctx context.Context, transaction *domain.Transaction) error
	Delete(ctx context.Context, tx Transaction, id int64) error
}

// EntryRepository defines data access for journal entries.
type EntryRepository interface {
	Create(ctx context.Context, entry *domain.JournalEntry) error
	GetByID(ctx context.Context, id int64) (*domain.JournalEntry, error)
	Update(ctx context.Context, entry *domain.JournalEntry) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter domain.EntryFilter) ([]*domain.JournalEntry, error)
	// SumByTransaction returns the debit and credit sums across all entries of
	// the transaction.
	SumByTransaction(ctx context.Context, transactionID int64) (totalDebit, totalCredit decimal.Decimal, err error)
	CountByTransaction(ctx context.Context, tx Transaction, transactionID int64) (int64, error)
	DeleteByTransaction(ctx context.Context, tx Transaction, transactionID int64) error
}

// ProductRepository defines data access for the product/service catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id int64) (*domain.Product, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	UpdateStock(ctx context.Context, tx Transaction, id int64, stock decimal.Decimal) error
	// Delete removes a product; it fails with domain.ErrProductInUse while
	// invoice lines reference it.
	Delete(ctx context.Context, id int64) error
}

// ClientRepository defines data access for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context, limit, offset int) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id int64) error
}

// InvoiceRepository defines data access for invoice headers.
type InvoiceRepository interface {
	Create(ctx context.Context, tx Transaction, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	// GetByIDForUpdate locks the invoice header row for the duration of the
	// surrounding transaction. Every line mutation takes this lock before
	// touching lines, which serializes recomputation per invoice.
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*domain.Invoice, error)
	List(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.Invoice, error)
	// UpdateHeader writes the caller-settable header fields (discount, terms,
	// salesperson, notes, due date). Derived totals are not among them.
	UpdateHeader(ctx context.Context, tx Transaction, invoice *domain.Invoice) error
	// UpdateTotals is the only writer of the derived subtotal, tax, and grand
	// total columns.
	UpdateTotals(ctx context.Context, tx Transaction, id string, totals domain.InvoiceTotals) error
	// Delete removes the invoice; its lines go with it.
	Delete(ctx context.Context, tx Transaction, id string) error
	// MaxNumberForYear returns the highest invoice number of the given year,
	// or "" when none exists.
	MaxNumberForYear(ctx context.Context, tx Transaction, year int) (string, error)
}

// InvoiceLineRepository defines data access for invoice lines.
type InvoiceLineRepository interface {
	Create(ctx context.Context, tx Transaction, line *domain.InvoiceLine) error
	GetByID(ctx context.Context, tx Transaction, id int64) (*domain.InvoiceLine, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]*domain.InvoiceLine, error)
	ListByInvoiceTx(ctx context.Context, tx Transaction, invoiceID string) ([]*domain.InvoiceLine, error)
	Update(ctx context.Context, tx Transaction, line *domain.InvoiceLine) error
	Delete(ctx context.Context, tx Transaction, id int64) error
}

// ReportRepository defines data access for reporting aggregates.
type ReportRepository interface {
	AccountMovements(ctx context.Context, from, to *time.Time) ([]*domain.AccountMovement, error)
	MajorAccountName(ctx context.Context, code string) (string, error)
	BillingStats(ctx context.Context, from, to *time.Time) (*domain.BillingStats, error)
	TopClients(ctx context.Context, limit int, from, to *time.Time) ([]*domain.ClientSales, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs for invoices.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation when the store reports a transient conflict.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
