package usecase

import (
	"context"
	"time"

	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/infrastructure/metrics"
)

// TransactionUseCase handles transaction header operations.
type TransactionUseCase struct {
	txManager       TransactionManager
	transactionRepo TransactionRepository
	entryRepo       EntryRepository
	periodRepo      PeriodRepository
	metrics         *metrics.Metrics
}

// NewTransactionUseCase creates a new TransactionUseCase.
func NewTransactionUseCase(
	txManager TransactionManager,
	transactionRepo TransactionRepository,
	entryRepo EntryRepository,
	periodRepo PeriodRepository,
) *TransactionUseCase {
	return &TransactionUseCase{
		txManager:       txManager,
		transactionRepo: transactionRepo,
		entryRepo:       entryRepo,
		periodRepo:      periodRepo,
	}
}

// WithMetrics attaches Prometheus counters. A nil receiver field means no
// instrumentation.
func (uc *TransactionUseCase) WithMetrics(m *metrics.Metrics) *TransactionUseCase {
	uc.metrics = m
	return uc
}

// CreateTransactionInput represents input for creating a transaction header.
type CreateTransactionInput struct {
	OccurredAt  time.Time
	Description string
	Kind        domain.TransactionKind
	Currency    string
	Category    string
	CreatedBy   string
	PeriodID    *int64
}

// CreateTransaction creates an empty transaction header. Journal entries are
// added afterward, one at a time, via the journal use case.
func (uc *TransactionUseCase) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*domain.Transaction, error) {
	transaction := &domain.Transaction{
		OccurredAt:  input.OccurredAt,
		Description: input.Description,
		Kind:        input.Kind,
		Currency:    input.Currency,
		Category:    input.Category,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   time.Now().UTC(),
		PeriodID:    input.PeriodID,
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if input.PeriodID != nil {
		if _, err := uc.periodRepo.GetByID(ctx, *input.PeriodID); err != nil {
			return nil, err
		}
	}

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsCreated.Inc()
	}

	return transaction, nil
}

// GetTransaction retrieves a transaction by ID.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	return uc.transactionRepo.GetByID(ctx, id)
}

// ListTransactions lists transactions matching the filter.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]*domain.Transaction, error) {
	filter.Limit, filter.Offset = domain.ValidatePagination(filter.Limit, filter.Offset)
	return uc.transactionRepo.List(ctx, filter)
}

// UpdateTransactionInput represents input for updating a transaction header.
type UpdateTransactionInput struct {
	OccurredAt  *time.Time
	Description *string
	Kind        *domain.TransactionKind
	Category    *string
	PeriodID    *int64
}

// UpdateTransaction updates header fields of an existing transaction.
func (uc *TransactionUseCase) UpdateTransaction(ctx context.Context, id int64, input UpdateTransactionInput) (*domain.Transaction, error) {
	transaction, err := uc.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.OccurredAt != nil {
		transaction.OccurredAt = *input.OccurredAt
	}
	if input.Description != nil {
		transaction.Description = *input.Description
	}
	if input.Kind != nil {
		transaction.Kind = *input.Kind
	}
	if input.Category != nil {
		transaction.Category = *input.Category
	}
	if input.PeriodID != nil {
		if _, err := uc.periodRepo.GetByID(ctx, *input.PeriodID); err != nil {
			return nil, err
		}
		transaction.PeriodID = input.PeriodID
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, err
	}

	return transaction, nil
}

// DeleteTransaction removes a transaction header. It is rejected with
// ErrTransactionHasEntries while journal entries reference the transaction;
// removing the entries too requires DeleteTransactionCascade.
func (uc *TransactionUseCase) DeleteTransaction(ctx context.Context, id int64) error {
	if _, err := uc.transactionRepo.GetByID(ctx, id); err != nil {
		return err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	count, err := uc.entryRepo.CountByTransaction(ctx, tx, id)
	if err != nil {
		return err
	}

	if count > 0 {
		return domain.ErrTransactionHasEntries
	}

	if err := uc.transactionRepo.Delete(ctx, tx, id); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsDeleted.WithLabelValues("header").Inc()
	}

	return nil
}

// DeleteTransactionCascade removes a transaction together with all its journal
// entries in one atomic unit. This is the explicit opt-in variant of deletion.
func (uc *TransactionUseCase) DeleteTransactionCascade(ctx context.Context, id int64) error {
	if _, err := uc.transactionRepo.GetByID(ctx, id); err != nil {
		return err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := uc.entryRepo.DeleteByTransaction(ctx, tx, id); err != nil {
		return err
	}

	if err := uc.transactionRepo.Delete(ctx, tx, id); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.TransactionsDeleted.WithLabelValues("cascade").Inc()
	}

	return nil
}
