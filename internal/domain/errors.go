package domain

import "errors"

var (
	// Not-found errors
	ErrAccountNotFound     = errors.New("account not found")
	ErrPeriodNotFound      = errors.New("period not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrEntryNotFound       = errors.New("journal entry not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrInvoiceNotFound     = errors.New("invoice not found")
	ErrInvoiceLineNotFound = errors.New("invoice line not found")

	// Constraint violations
	ErrDebitCreditExclusivity = errors.New("exactly one of debit or credit must be greater than zero")
	ErrNegativeLineSubtotal   = errors.New("line discount exceeds line amount")
	ErrInvalidQuantity        = errors.New("quantity must be positive")
	ErrInvalidDiscountPercent = errors.New("discount percentage must be between 0 and 100")
	ErrInvalidDiscountAmount  = errors.New("discount amount must not be negative")
	ErrInactiveClient         = errors.New("client is inactive")
	ErrInactiveProduct        = errors.New("product is inactive")
	ErrInsufficientStock      = errors.New("insufficient stock")

	// Referential integrity
	ErrAccountInUse           = errors.New("account is referenced by journal entries")
	ErrProductInUse           = errors.New("product is referenced by invoice lines")
	ErrTransactionHasEntries  = errors.New("transaction still has journal entries")
	ErrDuplicateAccountCode   = errors.New("account code already exists")
	ErrDuplicateInvoiceNumber = errors.New("invoice number already exists")

	// Concurrency
	ErrConcurrencyConflict = errors.New("concurrent modification detected, retry the operation")
)
