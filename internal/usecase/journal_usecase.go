package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/infrastructure/metrics"
)

// JournalUseCase handles journal entry writes and the balance query.
//
// The two halves are deliberately asymmetric: entry writes enforce the
// debit/credit exclusivity rule per entry, while transaction balance is only
// ever computed on demand. A transaction that does not balance is a valid,
// persistable state.
type JournalUseCase struct {
	entryRepo       EntryRepository
	transactionRepo TransactionRepository
	accountRepo     AccountRepository
	metrics         *metrics.Metrics
}

// NewJournalUseCase creates a new JournalUseCase.
func NewJournalUseCase(
	entryRepo EntryRepository,
	transactionRepo TransactionRepository,
	accountRepo AccountRepository,
) *JournalUseCase {
	return &JournalUseCase{
		entryRepo:       entryRepo,
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// WithMetrics attaches Prometheus counters. A nil receiver field means no
// instrumentation.
func (uc *JournalUseCase) WithMetrics(m *metrics.Metrics) *JournalUseCase {
	uc.metrics = m
	return uc
}

// RecordEntryInput represents input for recording a journal entry.
type RecordEntryInput struct {
	TransactionID int64
	AccountID     int64
	Debit         decimal.Decimal
	Credit        decimal.Decimal
}

// RecordEntry validates and persists a single journal entry. The referenced
// transaction and account must exist, and exactly one of debit/credit must be
// strictly positive. No other entry is read or written.
func (uc *JournalUseCase) RecordEntry(ctx context.Context, input RecordEntryInput) (*domain.JournalEntry, error) {
	if _, err := uc.transactionRepo.GetByID(ctx, input.TransactionID); err != nil {
		return nil, err
	}

	if _, err := uc.accountRepo.GetByID(ctx, input.AccountID); err != nil {
		return nil, err
	}

	entry := &domain.JournalEntry{
		TransactionID: input.TransactionID,
		AccountID:     input.AccountID,
		Debit:         input.Debit,
		Credit:        input.Credit,
	}

	if err := entry.ValidateAmounts(); err != nil {
		return nil, err
	}

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.EntriesRecorded.Inc()
	}

	return entry, nil
}

// UpdateEntryInput represents input for updating a journal entry. Nil fields
// keep their current value.
type UpdateEntryInput struct {
	AccountID *int64
	Debit     *decimal.Decimal
	Credit    *decimal.Decimal
}

// UpdateEntry applies changes to an existing entry, re-checking the
// debit/credit rule on the resulting amounts.
func (uc *JournalUseCase) UpdateEntry(ctx context.Context, id int64, input UpdateEntryInput) (*domain.JournalEntry, error) {
	entry, err := uc.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.AccountID != nil {
		if _, err := uc.accountRepo.GetByID(ctx, *input.AccountID); err != nil {
			return nil, err
		}
		entry.AccountID = *input.AccountID
	}
	if input.Debit != nil {
		entry.Debit = *input.Debit
	}
	if input.Credit != nil {
		entry.Credit = *input.Credit
	}

	if err := entry.ValidateAmounts(); err != nil {
		return nil, err
	}

	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteEntry removes a journal entry.
func (uc *JournalUseCase) DeleteEntry(ctx context.Context, id int64) error {
	if _, err := uc.entryRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return uc.entryRepo.Delete(ctx, id)
}

// GetEntry retrieves a journal entry by ID.
func (uc *JournalUseCase) GetEntry(ctx context.Context, id int64) (*domain.JournalEntry, error) {
	return uc.entryRepo.GetByID(ctx, id)
}

// ListEntries lists journal entries matching the filter.
func (uc *JournalUseCase) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]*domain.JournalEntry, error) {
	filter.Limit, filter.Offset = domain.ValidatePagination(filter.Limit, filter.Offset)
	return uc.entryRepo.List(ctx, filter)
}

// ComputeBalance sums debit and credit across the transaction's entries and
// reports whether the two are equal, by decimal comparison. It is a pure read
// and is never invoked on the entry write path.
func (uc *JournalUseCase) ComputeBalance(ctx context.Context, transactionID int64) (domain.TransactionBalance, error) {
	if _, err := uc.transactionRepo.GetByID(ctx, transactionID); err != nil {
		return domain.TransactionBalance{}, err
	}

	totalDebit, totalCredit, err := uc.entryRepo.SumByTransaction(ctx, transactionID)
	if err != nil {
		return domain.TransactionBalance{}, err
	}

	balance := domain.NewTransactionBalance(transactionID, totalDebit, totalCredit)

	if uc.metrics != nil {
		result := "balanced"
		if !balance.Balanced {
			result = "unbalanced"
		}
		uc.metrics.BalanceChecks.WithLabelValues(result).Inc()
	}

	return balance, nil
}
