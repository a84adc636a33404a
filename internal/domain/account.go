package domain

// AccountClass classifies an account in the chart of accounts.
type AccountClass string

const (
	AccountAsset     AccountClass = "ASSET"
	AccountLiability AccountClass = "LIABILITY"
	AccountEquity    AccountClass = "EQUITY"
	AccountIncome    AccountClass = "INCOME"
	AccountExpense   AccountClass = "EXPENSE"
)

// Valid reports whether the classification belongs to the closed set.
func (c AccountClass) Valid() bool {
	switch c {
	case AccountAsset, AccountLiability, AccountEquity, AccountIncome, AccountExpense:
		return true
	}
	return false
}

// Account is one row of the chart of accounts. Accounts are reference data:
// the ledger only reads them, and an account referenced by journal entries
// cannot be deleted.
type Account struct {
	ID    int64
	Code  string
	Name  string
	Class AccountClass
}

// Validate checks the account's own fields.
func (a *Account) Validate() error {
	if err := ValidateAccountCode(a.Code); err != nil {
		return err
	}

	if err := ValidateName(a.Name); err != nil {
		return err
	}

	if !a.Class.Valid() {
		return ErrInvalidAccountClass
	}

	return nil
}
