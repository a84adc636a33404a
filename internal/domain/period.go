package domain

import "time"

// PeriodType classifies the length of an accounting period.
type PeriodType string

const (
	PeriodMonthly   PeriodType = "MONTHLY"
	PeriodQuarterly PeriodType = "QUARTERLY"
	PeriodAnnual    PeriodType = "ANNUAL"
)

// Valid reports whether the period type belongs to the closed set.
func (t PeriodType) Valid() bool {
	switch t {
	case PeriodMonthly, PeriodQuarterly, PeriodAnnual:
		return true
	}
	return false
}

// PeriodState is the open/closed state of a period. The ledger core treats it
// as informational; enforcement of closed periods lives with the callers.
type PeriodState string

const (
	PeriodOpen   PeriodState = "OPEN"
	PeriodClosed PeriodState = "CLOSED"
)

// Period is an accounting period referenced by transactions.
type Period struct {
	ID        int64
	StartDate time.Time
	EndDate   time.Time
	Type      PeriodType
	State     PeriodState
}

// Validate checks the period's own fields.
func (p *Period) Validate() error {
	if !p.Type.Valid() {
		return ErrInvalidPeriodType
	}

	if p.EndDate.Before(p.StartDate) {
		return ErrInvalidPeriodRange
	}

	return nil
}
