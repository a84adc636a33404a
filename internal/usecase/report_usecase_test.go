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

func TestReportUseCase_GeneralLedger(t *testing.T) {
	repo := mocks.NewMockReportRepository()
	repo.Movements = []*domain.AccountMovement{
		{AccountCode: "1.1.01", AccountName: "Cash", Class: domain.AccountAsset,
			TotalDebit: decimal.NewFromInt(500), TotalCredit: decimal.NewFromInt(100)},
		{AccountCode: "1.2.01", AccountName: "Receivables", Class: domain.AccountAsset,
			TotalDebit: decimal.NewFromInt(200), TotalCredit: decimal.Zero},
		{AccountCode: "4.1.01", AccountName: "Sales", Class: domain.AccountIncome,
			TotalDebit: decimal.Zero, TotalCredit: decimal.NewFromInt(600)},
	}
	repo.MajorNames["1"] = "Assets"
	repo.MajorNames["4"] = "Income"

	uc := usecase.NewReportUseCase(repo, nil, 0)

	report, err := uc.GeneralLedger(context.Background(), usecase.GeneralLedgerInput{
		Digits:        1,
		IncludeDetail: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(report.Groups))
	}

	assets := report.Groups[0]
	if assets.MajorCode != "1" || assets.MajorName != "Assets" {
		t.Errorf("unexpected first group: %s %s", assets.MajorCode, assets.MajorName)
	}
	if !assets.TotalDebit.Equal(decimal.NewFromInt(700)) {
		t.Errorf("expected assets debit 700, got %s", assets.TotalDebit)
	}
	if !assets.Balance.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected assets balance 600, got %s", assets.Balance)
	}
	if len(assets.Subaccounts) != 2 {
		t.Errorf("expected 2 subaccounts, got %d", len(assets.Subaccounts))
	}

	if !report.TotalDebit.Equal(decimal.NewFromInt(700)) || !report.TotalCredit.Equal(decimal.NewFromInt(700)) {
		t.Errorf("expected totals 700/700, got %s/%s", report.TotalDebit, report.TotalCredit)
	}
	if !report.Difference.IsZero() {
		t.Errorf("expected zero difference, got %s", report.Difference)
	}
}

func TestReportUseCase_GeneralLedger_FallbackGroupName(t *testing.T) {
	repo := mocks.NewMockReportRepository()
	repo.Movements = []*domain.AccountMovement{
		{AccountCode: "7.1", TotalDebit: decimal.NewFromInt(10), TotalCredit: decimal.Zero},
	}

	uc := usecase.NewReportUseCase(repo, nil, 0)

	report, err := uc.GeneralLedger(context.Background(), usecase.GeneralLedgerInput{Digits: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := report.Groups[0].MajorName; got != "Major account 7" {
		t.Errorf("expected fallback name, got %q", got)
	}
}

func TestReportUseCase_GeneralLedger_InvalidParams(t *testing.T) {
	uc := usecase.NewReportUseCase(mocks.NewMockReportRepository(), nil, 0)

	past := time.Now().AddDate(0, -1, 0)
	earlier := past.AddDate(0, -1, 0)
	future := time.Now().AddDate(0, 0, 7)

	tests := []struct {
		name      string
		input     usecase.GeneralLedgerInput
		expectErr error
	}{
		{"digits too small", usecase.GeneralLedgerInput{Digits: 0}, usecase.ErrInvalidDigits},
		{"digits too large", usecase.GeneralLedgerInput{Digits: 11}, usecase.ErrInvalidDigits},
		{"inverted range", usecase.GeneralLedgerInput{Digits: 1, From: &past, To: &earlier}, usecase.ErrInvalidDateRange},
		{"future date", usecase.GeneralLedgerInput{Digits: 1, From: &past, To: &future}, usecase.ErrFutureDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.GeneralLedger(context.Background(), tt.input); !errors.Is(err, tt.expectErr) {
				t.Errorf("expected %v, got %v", tt.expectErr, err)
			}
		})
	}
}

func TestReportUseCase_BillingStats_Cached(t *testing.T) {
	repo := mocks.NewMockReportRepository()
	calls := 0
	repo.BillingStatsFunc = func(ctx context.Context, from, to *time.Time) (*domain.BillingStats, error) {
		calls++
		return &domain.BillingStats{
			InvoiceCount: 3,
			TotalSales:   decimal.RequireFromString("150.00"),
			AverageSale:  decimal.RequireFromString("50.00"),
		}, nil
	}

	uc := usecase.NewReportUseCase(repo, mocks.NewMockCache(), time.Minute)

	for i := 0; i < 2; i++ {
		stats, err := uc.BillingStats(context.Background(), nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.InvoiceCount != 3 {
			t.Errorf("expected 3 invoices, got %d", stats.InvoiceCount)
		}
		if !stats.TotalSales.Equal(decimal.RequireFromString("150.00")) {
			t.Errorf("expected total sales 150.00, got %s", stats.TotalSales)
		}
	}

	if calls != 1 {
		t.Errorf("expected 1 repository call, got %d", calls)
	}
}

func TestReportUseCase_TopClients_LimitClamped(t *testing.T) {
	repo := mocks.NewMockReportRepository()
	for i := 0; i < 20; i++ {
		repo.Clients = append(repo.Clients, &domain.ClientSales{
			ClientID:    int64(i + 1),
			TotalAmount: decimal.NewFromInt(int64(1000 - i)),
		})
	}

	uc := usecase.NewReportUseCase(repo, nil, 0)

	clients, err := uc.TopClients(context.Background(), 0, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clients) != 10 {
		t.Errorf("expected default limit of 10, got %d", len(clients))
	}

	clients, err = uc.TopClients(context.Background(), 15, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clients) != 15 {
		t.Errorf("expected 15 clients, got %d", len(clients))
	}
}
