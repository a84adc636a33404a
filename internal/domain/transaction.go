package domain

import "time"

// TransactionKind tags the direction of a transaction.
type TransactionKind string

const (
	TransactionIncome  TransactionKind = "INCOME"
	TransactionExpense TransactionKind = "EXPENSE"
)

// Valid reports whether the kind belongs to the closed set.
func (k TransactionKind) Valid() bool {
	return k == TransactionIncome || k == TransactionExpense
}

// Transaction groups journal entries under a single header. A transaction may
// be transiently unbalanced: balance is a query over its entries, never a
// write-time constraint.
type Transaction struct {
	ID          int64
	OccurredAt  time.Time
	Description string
	Kind        TransactionKind
	Currency    string
	Category    string
	CreatedBy   string
	CreatedAt   time.Time
	PeriodID    *int64
}

// Validate checks the transaction header fields.
func (t *Transaction) Validate() error {
	if !t.Kind.Valid() {
		return ErrInvalidTransactionKind
	}

	if err := ValidateCurrency(t.Currency); err != nil {
		return err
	}

	if t.Description == "" {
		return ErrEmptyDescription
	}

	return nil
}
