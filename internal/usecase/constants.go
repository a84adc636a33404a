package usecase

import "time"

const (
	// DefaultPaymentTermDays is added to the issue date when an invoice is on
	// credit terms and no due date is supplied.
	DefaultPaymentTermDays = 30

	// PaymentTermsCash marks invoices payable on delivery; they get no due date.
	PaymentTermsCash = "CASH"

	// statsCacheKey is the cache key prefix for billing statistics.
	statsCacheKey = "billing:stats:"

	// DefaultStatsCacheTTL bounds staleness of the cached billing statistics.
	DefaultStatsCacheTTL = 5 * time.Minute
)
