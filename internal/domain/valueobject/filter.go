// Package valueobject defines immutable domain value types.
package valueobject

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionFilter describes the optional criteria narrowing a report scope.
// All fields are inclusive bounds. A nil pointer (or empty Category) means
// the criterion is unset and contributes nothing to the compiled query.
//
// The filter is a value: construct it once and do not mutate it afterwards.
// An inverted date range (DateFrom after DateTo) is not validated here; it
// simply matches no rows.
type TransactionFilter struct {
	DateFrom  *time.Time
	DateTo    *time.Time
	Category  string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// IsEmpty reports whether no optional criterion is set.
func (f *TransactionFilter) IsEmpty() bool {
	if f == nil {
		return true
	}
	return f.DateFrom == nil &&
		f.DateTo == nil &&
		f.Category == "" &&
		f.MinAmount == nil &&
		f.MaxAmount == nil
}
