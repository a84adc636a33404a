package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidAccountClass    = errors.New("invalid account classification")
	ErrInvalidAccountCode     = errors.New("invalid account code")
	ErrInvalidName            = errors.New("invalid name")
	ErrInvalidPeriodType      = errors.New("invalid period type")
	ErrInvalidPeriodRange     = errors.New("period end date precedes start date")
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
	ErrEmptyDescription       = errors.New("description cannot be empty")
	ErrInvalidCurrency        = errors.New("invalid currency code")
	ErrInvalidAmount          = errors.New("amount must not be negative")
	ErrAmountTooLarge         = errors.New("amount exceeds maximum allowed")
	ErrInvalidEmail           = errors.New("invalid email format")
)

// Validation constants
const (
	MaxNameLength        = 150
	MaxAccountCodeLength = 20
	MaxAmount            = "9999999999999.99" // business ceiling, well inside the NUMERIC(20,6) columns
)

// Valid currency codes (ISO 4217)
var validCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "JPY": true,
	"CNY": true, "AUD": true, "CAD": true, "CHF": true,
	"MXN": true, "GTQ": true, "HNL": true, "NIO": true,
	"CRC": true, "PAB": true, "DOP": true, "COP": true,
	"PEN": true, "BRL": true, "ARS": true, "CLP": true,
}

var (
	accountCodeRegex = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)
	emailRegex       = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ValidateAccountCode validates a chart-of-accounts code, e.g. "1101" or "1.1.01".
func ValidateAccountCode(code string) error {
	code = strings.TrimSpace(code)

	if code == "" || len(code) > MaxAccountCodeLength {
		return ErrInvalidAccountCode
	}

	if !accountCodeRegex.MatchString(code) {
		return fmt.Errorf("%w: %s", ErrInvalidAccountCode, code)
	}

	return nil
}

// ValidateName validates a display name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, MaxNameLength)
	}

	return nil
}

// ValidateCurrency validates an ISO 4217 currency code.
func ValidateCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))

	if !validCurrencies[currency] {
		return fmt.Errorf("%w: %s is not a supported ISO 4217 currency code", ErrInvalidCurrency, currency)
	}

	return nil
}

// ValidateAmount validates a non-negative monetary amount within the column range.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxAmount)
	}

	return nil
}

// ValidateEmail validates email format. Empty is allowed; contact details are
// optional on clients.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil
	}

	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
