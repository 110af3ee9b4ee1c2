// Package error defines domain-specific errors for the Finance Ledger application.
package error

import "errors"

// User domain errors.
var (
	// ErrUserNotFound is returned when a user lookup finds no row.
	ErrUserNotFound = errors.New("user not found")
)
