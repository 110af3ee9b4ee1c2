// Package error defines domain-specific errors for the Finance Ledger application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found for the owner.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionTitle is returned when the transaction title is empty.
	ErrInvalidTransactionTitle = errors.New("title is required")

	// ErrInvalidTransactionDate is returned when the transaction date is missing.
	ErrInvalidTransactionDate = errors.New("transaction date is required")

	// ErrInvalidTransactionOwner is returned when the owner identifier is not positive.
	ErrInvalidTransactionOwner = errors.New("owner id must be positive")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTransactionNotFound     TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionTitle TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionDate  TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidTransactionOwner TransactionErrorCode = "TXN-010004"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
