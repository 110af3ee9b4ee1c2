// Package report contains the ledger aggregation use cases.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
	"github.com/finance-ledger/backend/internal/domain/valueobject"
)

// LedgerRepository is the single capability the aggregation use cases need
// from a store: return every transaction satisfying all predicates, in
// unspecified order. Ordering, grouping and tie-break guarantees belong to
// the use cases, not the store.
type LedgerRepository interface {
	Scan(ctx context.Context, predicates []valueobject.Predicate) ([]*entity.Transaction, error)
}

// Scope combines the mandatory owner with an optional filter narrowing a
// report. A nil Filter means the owner's whole ledger.
type Scope struct {
	UserID int64
	Filter *valueobject.TransactionFilter
}

func (s Scope) predicates() []valueobject.Predicate {
	return valueobject.Compile(s.UserID, s.Filter)
}

// CategoryTotal is the summed amount of one category within a scope.
type CategoryTotal struct {
	Category string
	Sum      decimal.Decimal
}

// DateTotal is the summed amount of one occurrence date within a scope.
type DateTotal struct {
	Date time.Time
	Sum  decimal.Decimal
}
