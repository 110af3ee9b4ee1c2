// Package error defines domain-specific errors for the Finance Ledger application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidMonth is returned when a month outside 1-12 is requested.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear is returned when a non-positive year is requested.
	ErrInvalidYear = errors.New("year must be positive")

	// ErrInvalidDateFormat is returned when a date parameter is malformed.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidAmountFormat is returned when an amount parameter is not a decimal.
	ErrInvalidAmountFormat = errors.New("invalid amount format, expected a decimal number")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonth        ReportErrorCode = "RPT-010001"
	ErrCodeInvalidYear         ReportErrorCode = "RPT-010002"
	ErrCodeInvalidDateFormat   ReportErrorCode = "RPT-010003"
	ErrCodeInvalidAmountFormat ReportErrorCode = "RPT-010004"

	// Internal errors (99XXXX)
	ErrCodeReportInternalError ReportErrorCode = "RPT-990001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
