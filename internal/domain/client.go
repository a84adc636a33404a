package domain

import "time"

// ClientKind distinguishes individual from company clients.
type ClientKind string

const (
	ClientIndividual ClientKind = "INDIVIDUAL"
	ClientCompany    ClientKind = "COMPANY"
)

// Client is a billable customer referenced by invoices.
type Client struct {
	ID           int64
	Name         string
	TaxID        string
	Address      string
	Phone        string
	Email        string
	Kind         ClientKind
	Notes        string
	Active       bool
	RegisteredAt time.Time
}
