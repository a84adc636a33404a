package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/usecase"
	"github.com/iho/ledgerbook/internal/usecase/mocks"
)

func seedTransaction(t *testing.T, repo *mocks.MockTransactionRepository) *domain.Transaction {
	t.Helper()
	transaction := &domain.Transaction{
		OccurredAt:  time.Now(),
		Description: "office supplies",
		Kind:        domain.TransactionExpense,
		Currency:    "USD",
	}
	if err := repo.Create(context.Background(), transaction); err != nil {
		t.Fatalf("seed transaction: %v", err)
	}
	return transaction
}

func seedAccount(t *testing.T, repo *mocks.MockAccountRepository, code string) *domain.Account {
	t.Helper()
	account := &domain.Account{
		Code:  code,
		Name:  "account " + code,
		Class: domain.AccountAsset,
	}
	if err := repo.Create(context.Background(), account); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return account
}

func TestJournalUseCase_RecordEntry(t *testing.T) {
	tests := []struct {
		name      string
		debit     decimal.Decimal
		credit    decimal.Decimal
		expectErr error
	}{
		{
			name:   "debit only",
			debit:  decimal.NewFromInt(100),
			credit: decimal.Zero,
		},
		{
			name:   "credit only",
			debit:  decimal.Zero,
			credit: decimal.NewFromInt(100),
		},
		{
			name:      "both debit and credit",
			debit:     decimal.NewFromInt(100),
			credit:    decimal.NewFromInt(100),
			expectErr: domain.ErrDebitCreditExclusivity,
		},
		{
			name:      "neither debit nor credit",
			debit:     decimal.Zero,
			credit:    decimal.Zero,
			expectErr: domain.ErrDebitCreditExclusivity,
		},
		{
			name:      "negative debit",
			debit:     decimal.NewFromInt(-5),
			credit:    decimal.Zero,
			expectErr: domain.ErrDebitCreditExclusivity,
		},
		{
			name:      "negative credit alongside positive debit",
			debit:     decimal.NewFromInt(5),
			credit:    decimal.NewFromInt(-5),
			expectErr: domain.ErrDebitCreditExclusivity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entryRepo := mocks.NewMockEntryRepository()
			transactionRepo := mocks.NewMockTransactionRepository()
			accountRepo := mocks.NewMockAccountRepository()

			transaction := seedTransaction(t, transactionRepo)
			account := seedAccount(t, accountRepo, "1.1")

			uc := usecase.NewJournalUseCase(entryRepo, transactionRepo, accountRepo)

			entry, err := uc.RecordEntry(context.Background(), usecase.RecordEntryInput{
				TransactionID: transaction.ID,
				AccountID:     account.ID,
				Debit:         tt.debit,
				Credit:        tt.credit,
			})

			if tt.expectErr != nil {
				if !errors.Is(err, tt.expectErr) {
					t.Fatalf("expected %v, got %v", tt.expectErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if entry.ID == 0 {
				t.Error("expected entry to be persisted with an ID")
			}
		})
	}
}

func TestJournalUseCase_RecordEntry_MissingReferences(t *testing.T) {
	entryRepo := mocks.NewMockEntryRepository()
	transactionRepo := mocks.NewMockTransactionRepository()
	accountRepo := mocks.NewMockAccountRepository()

	transaction := seedTransaction(t, transactionRepo)
	account := seedAccount(t, accountRepo, "1.1")

	uc := usecase.NewJournalUseCase(entryRepo, transactionRepo, accountRepo)

	_, err := uc.RecordEntry(context.Background(), usecase.RecordEntryInput{
		TransactionID: transaction.ID + 99,
		AccountID:     account.ID,
		Debit:         decimal.NewFromInt(10),
	})
	if !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound, got %v", err)
	}

	_, err = uc.RecordEntry(context.Background(), usecase.RecordEntryInput{
		TransactionID: transaction.ID,
		AccountID:     account.ID + 99,
		Debit:         decimal.NewFromInt(10),
	})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

// Recording an entry that leaves the transaction unbalanced must succeed:
// balance is a read-time property, never a write-side constraint.
func TestJournalUseCase_UnbalancedWriteSucceeds(t *testing.T) {
	entryRepo := mocks.NewMockEntryRepository()
	transactionRepo := mocks.NewMockTransactionRepository()
	accountRepo := mocks.NewMockAccountRepository()

	transaction := seedTransaction(t, transactionRepo)
	account := seedAccount(t, accountRepo, "1.1")

	uc := usecase.NewJournalUseCase(entryRepo, transactionRepo, accountRepo)

	if _, err := uc.RecordEntry(context.Background(), usecase.RecordEntryInput{
		TransactionID: transaction.ID,
		AccountID:     account.ID,
		Debit:         decimal.NewFromInt(100),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	balance, err := uc.ComputeBalance(context.Background(), transaction.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance.Balanced {
		t.Error("expected transaction to be unbalanced")
	}
	if !balance.TotalDebit.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected total debit 100, got %s", balance.TotalDebit)
	}
	if !balance.TotalCredit.IsZero() {
		t.Errorf("expected total credit 0, got %s", balance.TotalCredit)
	}
}

func TestJournalUseCase_ComputeBalance(t *testing.T) {
	tests := []struct {
		name     string
		entries  [][2]string // debit, credit pairs
		balanced bool
	}{
		{
			name:     "no entries",
			balanced: true,
		},
		{
			name:     "balanced pair",
			entries:  [][2]string{{"150.50", "0"}, {"0", "150.50"}},
			balanced: true,
		},
		{
			name:     "balanced across scales",
			entries:  [][2]string{{"100", "0"}, {"0", "100.00"}},
			balanced: true,
		},
		{
			name:     "balanced split credit",
			entries:  [][2]string{{"90", "0"}, {"0", "40"}, {"0", "50"}},
			balanced: true,
		},
		{
			name:     "unbalanced",
			entries:  [][2]string{{"100", "0"}, {"0", "99.99"}},
			balanced: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entryRepo := mocks.NewMockEntryRepository()
			transactionRepo := mocks.NewMockTransactionRepository()
			accountRepo := mocks.NewMockAccountRepository()

			transaction := seedTransaction(t, transactionRepo)
			account := seedAccount(t, accountRepo, "1.1")

			uc := usecase.NewJournalUseCase(entryRepo, transactionRepo, accountRepo)

			for _, pair := range tt.entries {
				_, err := uc.RecordEntry(context.Background(), usecase.RecordEntryInput{
					TransactionID: transaction.ID,
					AccountID:     account.ID,
					Debit:         decimal.RequireFromString(pair[0]),
					Credit:        decimal.RequireFromString(pair[1]),
				})
				if err != nil {
					t.Fatalf("record entry: %v", err)
				}
			}

			balance, err := uc.ComputeBalance(context.Background(), transaction.ID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if balance.Balanced != tt.balanced {
				t.Errorf("expected balanced=%v, got %v (debit %s, credit %s)",
					tt.balanced, balance.Balanced, balance.TotalDebit, balance.TotalCredit)
			}
		})
	}
}

func TestJournalUseCase_ComputeBalance_UnknownTransaction(t *testing.T) {
	uc := usecase.NewJournalUseCase(
		mocks.NewMockEntryRepository(),
		mocks.NewMockTransactionRepository(),
		mocks.NewMockAccountRepository(),
	)

	_, err := uc.ComputeBalance(context.Background(), 42)
	if !errors.Is(err, domain.ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound, got %v", err)
	}
}

func TestJournalUseCase_UpdateEntry(t *testing.T) {
	entryRepo := mocks.NewMockEntryRepository()
	transactionRepo := mocks.NewMockTransactionRepository()
	accountRepo := mocks.NewMockAccountRepository()

	transaction := seedTransaction(t, transactionRepo)
	account := seedAccount(t, accountRepo, "1.1")

	uc := usecase.NewJournalUseCase(entryRepo, transactionRepo, accountRepo)

	entry, err := uc.RecordEntry(context.Background(), usecase.RecordEntryInput{
		TransactionID: transaction.ID,
		AccountID:     account.ID,
		Debit:         decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("record entry: %v", err)
	}

	// flip the entry to the credit side
	zero := decimal.Zero
	credit := decimal.NewFromInt(80)
	updated, err := uc.UpdateEntry(context.Background(), entry.ID, usecase.UpdateEntryInput{
		Debit:  &zero,
		Credit: &credit,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated.Credit.Equal(credit) || !updated.Debit.IsZero() {
		t.Errorf("expected credit 80 / debit 0, got credit %s / debit %s", updated.Credit, updated.Debit)
	}

	// setting the other side without clearing this one violates exclusivity
	debit := decimal.NewFromInt(10)
	_, err = uc.UpdateEntry(context.Background(), entry.ID, usecase.UpdateEntryInput{
		Debit: &debit,
	})
	if !errors.Is(err, domain.ErrDebitCreditExclusivity) {
		t.Fatalf("expected ErrDebitCreditExclusivity, got %v", err)
	}

	// the rejected update must not have been persisted
	current, err := uc.GetEntry(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("get entry: %v", err)
	}
	if !current.Debit.IsZero() || !current.Credit.Equal(credit) {
		t.Errorf("rejected update leaked: debit %s, credit %s", current.Debit, current.Credit)
	}
}

func TestJournalUseCase_DeleteEntry(t *testing.T) {
	entryRepo := mocks.NewMockEntryRepository()
	transactionRepo := mocks.NewMockTransactionRepository()
	accountRepo := mocks.NewMockAccountRepository()

	transaction := seedTransaction(t, transactionRepo)
	account := seedAccount(t, accountRepo, "1.1")

	uc := usecase.NewJournalUseCase(entryRepo, transactionRepo, accountRepo)

	entry, err := uc.RecordEntry(context.Background(), usecase.RecordEntryInput{
		TransactionID: transaction.ID,
		AccountID:     account.ID,
		Debit:         decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("record entry: %v", err)
	}

	if err := uc.DeleteEntry(context.Background(), entry.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.DeleteEntry(context.Background(), entry.ID); !errors.Is(err, domain.ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}
