// Package mocks provides hand-rolled in-memory mocks for the usecase
// interfaces. Each mock behaves like a small in-memory store unless a Func
// field overrides the method.
package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/usecase"
)

// MockTransaction is a no-op usecase.Transaction. Mocks that take row locks
// register release hooks via OnComplete so the lock lasts exactly as long as
// the transaction, the way a database row lock would.
type MockTransaction struct {
	mu         sync.Mutex
	hooks      []func()
	done       bool
	Committed  bool
	RolledBack bool

	CommitFunc func(ctx context.Context) error
}

func (t *MockTransaction) OnComplete(hook func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hooks = append(t.hooks, hook)
}

func (t *MockTransaction) finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return
	}
	t.done = true
	for _, hook := range t.hooks {
		hook()
	}
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		err := t.CommitFunc(ctx)
		t.finish()
		return err
	}
	t.mu.Lock()
	t.Committed = true
	t.mu.Unlock()
	t.finish()
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	t.mu.Lock()
	committed := t.Committed
	t.mu.Unlock()
	if !committed {
		t.RolledBack = true
	}
	t.finish()
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	mu      sync.Mutex
	Started []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.Started = append(m.Started, tx)
	return tx, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("01MOCK%020d", m.counter)
}

// MockRetrier runs the operation once, without retrying.
type MockRetrier struct{}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	return operation()
}

// MockCache is an in-memory usecase.Cache.
type MockCache struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{items: make(map[string][]byte)}
}

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[key], nil
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	nextID   int64
	accounts map[int64]*domain.Account

	CreateFunc  func(ctx context.Context, account *domain.Account) error
	GetByIDFunc func(ctx context.Context, id int64) (*domain.Account, error)
	DeleteFunc  func(ctx context.Context, id int64) error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{accounts: make(map[int64]*domain.Account)}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.accounts {
		if a.Code == account.Code {
			return domain.ErrDuplicateAccountCode
		}
	}
	m.nextID++
	account.ID = m.nextID
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByCode(ctx context.Context, code string) (*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.accounts {
		if a.Code == code {
			return a, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, a := range m.accounts {
		accounts = append(accounts, a)
	}
	return accounts, nil
}

func (m *MockAccountRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.accounts, id)
	return nil
}

// MockPeriodRepository is a mock implementation of PeriodRepository.
type MockPeriodRepository struct {
	mu      sync.RWMutex
	nextID  int64
	periods map[int64]*domain.Period

	GetByIDFunc func(ctx context.Context, id int64) (*domain.Period, error)
}

func NewMockPeriodRepository() *MockPeriodRepository {
	return &MockPeriodRepository{periods: make(map[int64]*domain.Period)}
}

func (m *MockPeriodRepository) Create(ctx context.Context, period *domain.Period) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	period.ID = m.nextID
	m.periods[period.ID] = period
	return nil
}

func (m *MockPeriodRepository) GetByID(ctx context.Context, id int64) (*domain.Period, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.periods[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPeriodNotFound
}

func (m *MockPeriodRepository) List(ctx context.Context, limit, offset int) ([]*domain.Period, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var periods []*domain.Period
	for _, p := range m.periods {
		periods = append(periods, p)
	}
	return periods, nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	nextID       int64
	transactions map[int64]*domain.Transaction

	GetByIDFunc func(ctx context.Context, id int64) (*domain.Transaction, error)
	DeleteFunc  func(ctx context.Context, tx usecase.Transaction, id int64) error
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{transactions: make(map[int64]*domain.Transaction)}
}

func (m *MockTransactionRepository) Create(ctx context.Context, transaction *domain.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	transaction.ID = m.nextID
	m.transactions[transaction.ID] = transaction
	return nil
}

func (m *MockTransactionRepository) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.transactions[id]; ok {
		return t, nil
	}
	return nil, domain.ErrTransactionNotFound
}

func (m *MockTransactionRepository) List(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var transactions []*domain.Transaction
	for _, t := range m.transactions {
		transactions = append(transactions, t)
	}
	return transactions, nil
}

func (m *MockTransactionRepository) Update(ctx context.Context, transaction *domain.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[transaction.ID] = transaction
	return nil
}

func (m *MockTransactionRepository) Delete(ctx context.Context, tx usecase.Transaction, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.transactions, id)
	return nil
}

// MockEntryRepository is a mock implementation of EntryRepository.
type MockEntryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	entries map[int64]*domain.JournalEntry

	CreateFunc           func(ctx context.Context, entry *domain.JournalEntry) error
	SumByTransactionFunc func(ctx context.Context, transactionID int64) (decimal.Decimal, decimal.Decimal, error)
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{entries: make(map[int64]*domain.JournalEntry)}
}

func (m *MockEntryRepository) Create(ctx context.Context, entry *domain.JournalEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	entry.ID = m.nextID
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockEntryRepository) GetByID(ctx context.Context, id int64) (*domain.JournalEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, domain.ErrEntryNotFound
}

func (m *MockEntryRepository) Update(ctx context.Context, entry *domain.JournalEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[entry.ID]; !ok {
		return domain.ErrEntryNotFound
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockEntryRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

func (m *MockEntryRepository) List(ctx context.Context, filter domain.EntryFilter) ([]*domain.JournalEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.JournalEntry
	for _, e := range m.entries {
		if filter.TransactionID != nil && e.TransactionID != *filter.TransactionID {
			continue
		}
		if filter.AccountID != nil && e.AccountID != *filter.AccountID {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (m *MockEntryRepository) SumByTransaction(ctx context.Context, transactionID int64) (decimal.Decimal, decimal.Decimal, error) {
	if m.SumByTransactionFunc != nil {
		return m.SumByTransactionFunc(ctx, transactionID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	totalDebit, totalCredit := decimal.Zero, decimal.Zero
	for _, e := range m.entries {
		if e.TransactionID == transactionID {
			totalDebit = totalDebit.Add(e.Debit)
			totalCredit = totalCredit.Add(e.Credit)
		}
	}
	return totalDebit, totalCredit, nil
}

func (m *MockEntryRepository) CountByTransaction(ctx context.Context, tx usecase.Transaction, transactionID int64) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, e := range m.entries {
		if e.TransactionID == transactionID {
			count++
		}
	}
	return count, nil
}

func (m *MockEntryRepository) DeleteByTransaction(ctx context.Context, tx usecase.Transaction, transactionID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, e := range m.entries {
		if e.TransactionID == transactionID {
			delete(m.entries, id)
		}
	}
	return nil
}

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mu       sync.RWMutex
	nextID   int64
	products map[int64]*domain.Product

	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Product, error)
	DeleteFunc           func(ctx context.Context, id int64) error
}

func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{products: make(map[int64]*domain.Product)}
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	product.ID = m.nextID
	m.products[product.ID] = product
	return nil
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, domain.ErrProductNotFound
}

func (m *MockProductRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id int64) (*domain.Product, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockProductRepository) List(ctx context.Context, limit, offset int) ([]*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var products []*domain.Product
	for _, p := range m.products {
		products = append(products, p)
	}
	return products, nil
}

func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	m.products[product.ID] = product
	return nil
}

func (m *MockProductRepository) UpdateStock(ctx context.Context, tx usecase.Transaction, id int64, stock decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.products[id]; ok {
		p.StockOnHand = stock
		return nil
	}
	return domain.ErrProductNotFound
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.products, id)
	return nil
}

// MockClientRepository is a mock implementation of ClientRepository.
type MockClientRepository struct {
	mu      sync.RWMutex
	nextID  int64
	clients map[int64]*domain.Client
}

func NewMockClientRepository() *MockClientRepository {
	return &MockClientRepository{clients: make(map[int64]*domain.Client)}
}

func (m *MockClientRepository) Create(ctx context.Context, client *domain.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	client.ID = m.nextID
	m.clients[client.ID] = client
	return nil
}

func (m *MockClientRepository) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.clients[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, domain.ErrClientNotFound
}

func (m *MockClientRepository) List(ctx context.Context, limit, offset int) ([]*domain.Client, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var clients []*domain.Client
	for _, c := range m.clients {
		clients = append(clients, c)
	}
	return clients, nil
}

func (m *MockClientRepository) Update(ctx context.Context, client *domain.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.clients[client.ID]; !ok {
		return domain.ErrClientNotFound
	}
	m.clients[client.ID] = client
	return nil
}

func (m *MockClientRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.clients, id)
	return nil
}

// MockInvoiceRepository is a mock implementation of InvoiceRepository. The
// per-invoice mutex map serializes callers of GetByIDForUpdate the way a row
// lock would; the lock is released on Commit or Rollback of the transaction
// it was taken under.
type MockInvoiceRepository struct {
	mu       sync.RWMutex
	invoices map[string]*domain.Invoice
	rowLocks map[string]*sync.Mutex

	// Lines, when set, receives the cascade an invoice deletion applies to
	// its line rows, mirroring the invoice_lines FK ON DELETE CASCADE.
	Lines *MockInvoiceLineRepository

	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Invoice, error)
	UpdateTotalsFunc     func(ctx context.Context, tx usecase.Transaction, id string, totals domain.InvoiceTotals) error
}

func NewMockInvoiceRepository() *MockInvoiceRepository {
	return &MockInvoiceRepository{
		invoices: make(map[string]*domain.Invoice),
		rowLocks: make(map[string]*sync.Mutex),
	}
}

func (m *MockInvoiceRepository) Create(ctx context.Context, tx usecase.Transaction, invoice *domain.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, inv := range m.invoices {
		if inv.Number == invoice.Number {
			return domain.ErrDuplicateInvoiceNumber
		}
	}
	copied := *invoice
	m.invoices[invoice.ID] = &copied
	return nil
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if inv, ok := m.invoices[id]; ok {
		copied := *inv
		return &copied, nil
	}
	return nil, domain.ErrInvoiceNotFound
}

func (m *MockInvoiceRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Invoice, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}

	m.mu.Lock()
	lock, ok := m.rowLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		m.rowLocks[id] = lock
	}
	m.mu.Unlock()

	lock.Lock()
	if mt, ok := tx.(*MockTransaction); ok {
		mt.OnComplete(lock.Unlock)
	} else {
		defer lock.Unlock()
	}

	return m.GetByID(ctx, id)
}

func (m *MockInvoiceRepository) GetByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, inv := range m.invoices {
		if inv.Number == number {
			copied := *inv
			return &copied, nil
		}
	}
	return nil, domain.ErrInvoiceNotFound
}

func (m *MockInvoiceRepository) List(ctx context.Context, filter domain.InvoiceFilter) ([]*domain.Invoice, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var invoices []*domain.Invoice
	for _, inv := range m.invoices {
		if filter.ClientID != nil && (inv.ClientID == nil || *inv.ClientID != *filter.ClientID) {
			continue
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

func (m *MockInvoiceRepository) UpdateHeader(ctx context.Context, tx usecase.Transaction, invoice *domain.Invoice) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.invoices[invoice.ID]
	if !ok {
		return domain.ErrInvoiceNotFound
	}
	stored.Discount = invoice.Discount
	stored.PaymentTerms = invoice.PaymentTerms
	stored.Salesperson = invoice.Salesperson
	stored.Notes = invoice.Notes
	stored.DueAt = invoice.DueAt
	return nil
}

func (m *MockInvoiceRepository) UpdateTotals(ctx context.Context, tx usecase.Transaction, id string, totals domain.InvoiceTotals) error {
	if m.UpdateTotalsFunc != nil {
		return m.UpdateTotalsFunc(ctx, tx, id, totals)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.invoices[id]
	if !ok {
		return domain.ErrInvoiceNotFound
	}
	stored.Subtotal = totals.Subtotal
	stored.Tax = totals.Tax
	stored.GrandTotal = totals.GrandTotal
	return nil
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	m.mu.Lock()
	delete(m.invoices, id)
	m.mu.Unlock()

	if m.Lines != nil {
		m.Lines.deleteByInvoice(id)
	}
	return nil
}

func (m *MockInvoiceRepository) MaxNumberForYear(ctx context.Context, tx usecase.Transaction, year int) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	max := ""
	for _, inv := range m.invoices {
		if inv.IssuedAt.Year() == year && inv.Number > max {
			max = inv.Number
		}
	}
	return max, nil
}

// MockInvoiceLineRepository is a mock implementation of InvoiceLineRepository.
type MockInvoiceLineRepository struct {
	mu     sync.RWMutex
	nextID int64
	lines  map[int64]*domain.InvoiceLine

	CreateFunc func(ctx context.Context, tx usecase.Transaction, line *domain.InvoiceLine) error
}

func NewMockInvoiceLineRepository() *MockInvoiceLineRepository {
	return &MockInvoiceLineRepository{lines: make(map[int64]*domain.InvoiceLine)}
}

func (m *MockInvoiceLineRepository) Create(ctx context.Context, tx usecase.Transaction, line *domain.InvoiceLine) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, line)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	line.ID = m.nextID
	copied := *line
	m.lines[line.ID] = &copied
	return nil
}

func (m *MockInvoiceLineRepository) GetByID(ctx context.Context, tx usecase.Transaction, id int64) (*domain.InvoiceLine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if l, ok := m.lines[id]; ok {
		copied := *l
		return &copied, nil
	}
	return nil, domain.ErrInvoiceLineNotFound
}

func (m *MockInvoiceLineRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]*domain.InvoiceLine, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var lines []*domain.InvoiceLine
	for _, l := range m.lines {
		if l.InvoiceID == invoiceID {
			copied := *l
			lines = append(lines, &copied)
		}
	}
	return lines, nil
}

func (m *MockInvoiceLineRepository) ListByInvoiceTx(ctx context.Context, tx usecase.Transaction, invoiceID string) ([]*domain.InvoiceLine, error) {
	return m.ListByInvoice(ctx, invoiceID)
}

func (m *MockInvoiceLineRepository) Update(ctx context.Context, tx usecase.Transaction, line *domain.InvoiceLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lines[line.ID]; !ok {
		return domain.ErrInvoiceLineNotFound
	}
	copied := *line
	m.lines[line.ID] = &copied
	return nil
}

func (m *MockInvoiceLineRepository) deleteByInvoice(invoiceID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, l := range m.lines {
		if l.InvoiceID == invoiceID {
			delete(m.lines, id)
		}
	}
}

func (m *MockInvoiceLineRepository) Delete(ctx context.Context, tx usecase.Transaction, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lines[id]; !ok {
		return domain.ErrInvoiceLineNotFound
	}
	delete(m.lines, id)
	return nil
}

// MockReportRepository is a mock implementation of ReportRepository.
type MockReportRepository struct {
	Movements  []*domain.AccountMovement
	MajorNames map[string]string
	Stats      *domain.BillingStats
	Clients    []*domain.ClientSales

	BillingStatsFunc func(ctx context.Context, from, to *time.Time) (*domain.BillingStats, error)
}

func NewMockReportRepository() *MockReportRepository {
	return &MockReportRepository{MajorNames: make(map[string]string)}
}

func (m *MockReportRepository) AccountMovements(ctx context.Context, from, to *time.Time) ([]*domain.AccountMovement, error) {
	return m.Movements, nil
}

func (m *MockReportRepository) MajorAccountName(ctx context.Context, code string) (string, error) {
	return m.MajorNames[code], nil
}

func (m *MockReportRepository) BillingStats(ctx context.Context, from, to *time.Time) (*domain.BillingStats, error) {
	if m.BillingStatsFunc != nil {
		return m.BillingStatsFunc(ctx, from, to)
	}
	return m.Stats, nil
}

func (m *MockReportRepository) TopClients(ctx context.Context, limit int, from, to *time.Time) ([]*domain.ClientSales, error) {
	if limit < len(m.Clients) {
		return m.Clients[:limit], nil
	}
	return m.Clients, nil
}
