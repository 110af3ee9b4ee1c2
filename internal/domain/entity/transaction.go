// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single ledger entry owned by a user.
//
// Amount is an exact decimal; its sign convention is caller-defined and the
// reporting engine treats it as an opaque signed quantity. Date carries the
// occurrence calendar date only (midnight UTC, no time component).
type Transaction struct {
	ID          int64
	UserID      int64
	Title       string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
}

// NewTransaction creates a new Transaction entity. The ID is zero until the
// store assigns one on creation.
func NewTransaction(
	userID int64,
	title string,
	amount decimal.Decimal,
	category string,
	date time.Time,
	description string,
) *Transaction {
	return &Transaction{
		UserID:      userID,
		Title:       title,
		Amount:      amount,
		Category:    category,
		Date:        DateOnly(date),
		Description: description,
	}
}

// DateOnly normalizes a timestamp to its calendar date at midnight UTC.
// Occurrence dates are compared as whole days everywhere, so any residual
// time component must be stripped before a date enters the ledger.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
