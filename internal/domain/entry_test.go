package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestJournalEntry_ValidateAmounts(t *testing.T) {
	t.Parallel()

	dec := func(s string) decimal.Decimal {
		d, err := decimal.NewFromString(s)
		if err != nil {
			t.Fatalf("bad decimal %q: %v", s, err)
		}
		return d
	}

	tests := []struct {
		name        string
		debit       string
		credit      string
		expectError bool
	}{
		{name: "debit only", debit: "50.00", credit: "0.00", expectError: false},
		{name: "credit only", debit: "0.00", credit: "50.00", expectError: false},
		{name: "both positive", debit: "50.00", credit: "10.00", expectError: true},
		{name: "both zero", debit: "0.00", credit: "0.00", expectError: true},
		{name: "negative debit", debit: "-1.00", credit: "0.00", expectError: true},
		{name: "negative credit", debit: "0.00", credit: "-0.01", expectError: true},
		{name: "fractional debit", debit: "0.01", credit: "0.00", expectError: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &JournalEntry{
				TransactionID: 1,
				AccountID:     1,
				Debit:         dec(tt.debit),
				Credit:        dec(tt.credit),
			}

			err := entry.ValidateAmounts()

			if tt.expectError {
				if !errors.Is(err, ErrDebitCreditExclusivity) {
					t.Fatalf("expected ErrDebitCreditExclusivity, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewTransactionBalance(t *testing.T) {
	t.Parallel()

	t.Run("balanced", func(t *testing.T) {
		b := NewTransactionBalance(7, decimal.NewFromInt(100), decimal.NewFromInt(100))

		if !b.Balanced {
			t.Error("expected balanced")
		}
		if !b.TotalDebit.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected total debit 100, got %s", b.TotalDebit)
		}
	})

	t.Run("unbalanced", func(t *testing.T) {
		b := NewTransactionBalance(7, decimal.NewFromInt(100), decimal.NewFromInt(99))

		if b.Balanced {
			t.Error("expected unbalanced")
		}
	})

	t.Run("decimal equality, not string equality", func(t *testing.T) {
		hundred, _ := decimal.NewFromString("100.00")
		b := NewTransactionBalance(7, decimal.NewFromInt(100), hundred)

		if !b.Balanced {
			t.Error("100 and 100.00 must compare equal")
		}
	})
}
