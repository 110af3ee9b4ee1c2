// Package valueobject defines immutable domain value types.
package valueobject

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// Field identifies the transaction attribute a predicate compares against.
type Field string

const (
	FieldOwner    Field = "owner"
	FieldDate     Field = "date"
	FieldCategory Field = "category"
	FieldAmount   Field = "amount"
)

// Op is the comparison operator of a predicate.
type Op string

const (
	OpEq  Op = "eq"
	OpGte Op = "gte"
	OpLte Op = "lte"
)

// Predicate is a single typed comparison clause. The Value type depends on
// the Field: int64 for owner, time.Time for date, string for category and
// decimal.Decimal for amount.
type Predicate struct {
	Field Field
	Op    Op
	Value any
}

// Compile translates an owner scope plus optional filter into the ordered
// predicate list a ledger store evaluates.
//
// The owner equality predicate always comes first; optional criteria follow
// in a fixed order (date-from, date-to, category, min-amount, max-amount) so
// that positional parameters stay aligned with the clause sequence. Absent
// criteria contribute neither a clause nor a parameter, and an empty-string
// category counts as absent.
func Compile(ownerID int64, f *TransactionFilter) []Predicate {
	preds := []Predicate{{Field: FieldOwner, Op: OpEq, Value: ownerID}}
	if f == nil {
		return preds
	}
	if f.DateFrom != nil {
		preds = append(preds, Predicate{Field: FieldDate, Op: OpGte, Value: entity.DateOnly(*f.DateFrom)})
	}
	if f.DateTo != nil {
		preds = append(preds, Predicate{Field: FieldDate, Op: OpLte, Value: entity.DateOnly(*f.DateTo)})
	}
	if f.Category != "" {
		preds = append(preds, Predicate{Field: FieldCategory, Op: OpEq, Value: f.Category})
	}
	if f.MinAmount != nil {
		preds = append(preds, Predicate{Field: FieldAmount, Op: OpGte, Value: *f.MinAmount})
	}
	if f.MaxAmount != nil {
		preds = append(preds, Predicate{Field: FieldAmount, Op: OpLte, Value: *f.MaxAmount})
	}
	return preds
}

// Params returns the positional parameter sequence of a compiled predicate
// list, aligned 1:1 with the clause order.
func Params(preds []Predicate) []any {
	params := make([]any, len(preds))
	for i, p := range preds {
		params[i] = p.Value
	}
	return params
}

// Matches evaluates the predicate against a transaction in memory. It
// implements the exact semantics a SQL-backed store must reproduce, which
// keeps the compiler testable without any storage backend.
func (p Predicate) Matches(t *entity.Transaction) bool {
	switch p.Field {
	case FieldOwner:
		return t.UserID == p.Value.(int64)
	case FieldDate:
		v := p.Value.(time.Time)
		d := entity.DateOnly(t.Date)
		switch p.Op {
		case OpEq:
			return d.Equal(v)
		case OpGte:
			return !d.Before(v)
		case OpLte:
			return !d.After(v)
		}
	case FieldCategory:
		return t.Category == p.Value.(string)
	case FieldAmount:
		v := p.Value.(decimal.Decimal)
		switch p.Op {
		case OpEq:
			return t.Amount.Equal(v)
		case OpGte:
			return t.Amount.GreaterThanOrEqual(v)
		case OpLte:
			return t.Amount.LessThanOrEqual(v)
		}
	}
	return false
}

// MatchesAll reports whether a transaction satisfies every predicate.
func MatchesAll(preds []Predicate, t *entity.Transaction) bool {
	for _, p := range preds {
		if !p.Matches(t) {
			return false
		}
	}
	return true
}
