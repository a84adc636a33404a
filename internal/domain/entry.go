package domain

import "github.com/shopspring/decimal"

// JournalEntry is one debit-or-credit line belonging to a transaction and
// referencing an account.
type JournalEntry struct {
	ID            int64
	TransactionID int64
	AccountID     int64
	Debit         decimal.Decimal
	Credit        decimal.Decimal
}

// ValidateAmounts enforces the double-entry line rule: exactly one of debit
// and credit is strictly positive and the other is exactly zero. Checked on
// every insert and update of an entry, independently of any other entry.
func (e *JournalEntry) ValidateAmounts() error {
	if e.Debit.IsNegative() || e.Credit.IsNegative() {
		return ErrDebitCreditExclusivity
	}

	debitSet := e.Debit.IsPositive()
	creditSet := e.Credit.IsPositive()

	if debitSet == creditSet {
		// both zero or both positive
		return ErrDebitCreditExclusivity
	}

	return nil
}

// TransactionBalance is the result of summing a transaction's entries.
type TransactionBalance struct {
	TransactionID int64
	TotalDebit    decimal.Decimal
	TotalCredit   decimal.Decimal
	Balanced      bool
}

// NewTransactionBalance builds a balance result from the two sums, using
// decimal equality rather than any tolerance.
func NewTransactionBalance(transactionID int64, totalDebit, totalCredit decimal.Decimal) TransactionBalance {
	return TransactionBalance{
		TransactionID: transactionID,
		TotalDebit:    totalDebit,
		TotalCredit:   totalCredit,
		Balanced:      totalDebit.Equal(totalCredit),
	}
}
