package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"

	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/infrastructure/metrics"
	"github.com/iho/ledgerbook/internal/usecase"
	"github.com/iho/ledgerbook/internal/usecase/mocks"
)

// Registered once per test binary; promauto panics on duplicate registration.
var testMetrics = metrics.New()

func TestTransactionUseCase_MetricsInstrumentation(t *testing.T) {
	transactionRepo := mocks.NewMockTransactionRepository()
	entryRepo := mocks.NewMockEntryRepository()

	uc := usecase.NewTransactionUseCase(
		mocks.NewMockTransactionManager(),
		transactionRepo,
		entryRepo,
		mocks.NewMockPeriodRepository(),
	).WithMetrics(testMetrics)

	created := testutil.ToFloat64(testMetrics.TransactionsCreated)
	headerDeletes := testutil.ToFloat64(testMetrics.TransactionsDeleted.WithLabelValues("header"))
	cascadeDeletes := testutil.ToFloat64(testMetrics.TransactionsDeleted.WithLabelValues("cascade"))

	first, err := uc.CreateTransaction(context.Background(), usecase.CreateTransactionInput{
		OccurredAt:  time.Now(),
		Description: "rent",
		Kind:        domain.TransactionExpense,
		Currency:    "USD",
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}
	second, err := uc.CreateTransaction(context.Background(), usecase.CreateTransactionInput{
		OccurredAt:  time.Now(),
		Description: "sales",
		Kind:        domain.TransactionIncome,
		Currency:    "USD",
	})
	if err != nil {
		t.Fatalf("create transaction: %v", err)
	}

	if got := testutil.ToFloat64(testMetrics.TransactionsCreated) - created; got != 2 {
		t.Errorf("expected 2 transaction creations counted, got %v", got)
	}

	if err := uc.DeleteTransaction(context.Background(), first.ID); err != nil {
		t.Fatalf("delete transaction: %v", err)
	}
	if got := testutil.ToFloat64(testMetrics.TransactionsDeleted.WithLabelValues("header")) - headerDeletes; got != 1 {
		t.Errorf("expected 1 header deletion counted, got %v", got)
	}

	if err := entryRepo.Create(context.Background(), &domain.JournalEntry{
		TransactionID: second.ID,
		Debit:         decimal.NewFromInt(10),
	}); err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	if err := uc.DeleteTransactionCascade(context.Background(), second.ID); err != nil {
		t.Fatalf("cascade delete: %v", err)
	}
	if got := testutil.ToFloat64(testMetrics.TransactionsDeleted.WithLabelValues("cascade")) - cascadeDeletes; got != 1 {
		t.Errorf("expected 1 cascade deletion counted, got %v", got)
	}
}

func TestAccountUseCase_MetricsInstrumentation(t *testing.T) {
	uc := usecase.NewAccountUseCase(mocks.NewMockAccountRepository()).WithMetrics(testMetrics)

	before := testutil.ToFloat64(testMetrics.AccountsCreated)

	if _, err := uc.CreateAccount(context.Background(), usecase.CreateAccountInput{
		Code:  "1000",
		Name:  "Cash",
		Class: domain.AccountAsset,
	}); err != nil {
		t.Fatalf("create account: %v", err)
	}

	if got := testutil.ToFloat64(testMetrics.AccountsCreated) - before; got != 1 {
		t.Errorf("expected 1 account creation counted, got %v", got)
	}
}
