// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/finance-ledger/backend/internal/application/usecase/report"
	"github.com/finance-ledger/backend/internal/domain/entity"
	"github.com/finance-ledger/backend/internal/domain/valueobject"
	"github.com/finance-ledger/backend/internal/integration/persistence/model"
)

// predicateColumns maps predicate fields to transaction columns. Only fields
// listed here can ever reach the query text; predicate values always travel
// as bind parameters.
var predicateColumns = map[valueobject.Field]string{
	valueobject.FieldOwner:    "user_id",
	valueobject.FieldDate:     "date",
	valueobject.FieldCategory: "category",
	valueobject.FieldAmount:   "amount",
}

// predicateOperators maps predicate operators to SQL comparison operators.
var predicateOperators = map[valueobject.Op]string{
	valueobject.OpEq:  "=",
	valueobject.OpGte: ">=",
	valueobject.OpLte: "<=",
}

// ledgerRepository implements the report.LedgerRepository interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) report.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// Scan returns every transaction satisfying all predicates. Row order is
// unspecified; the report use cases impose their own ordering.
func (r *ledgerRepository) Scan(ctx context.Context, predicates []valueobject.Predicate) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{})
	for _, p := range predicates {
		column, ok := predicateColumns[p.Field]
		if !ok {
			return nil, fmt.Errorf("unsupported predicate field %q", p.Field)
		}
		operator, ok := predicateOperators[p.Op]
		if !ok {
			return nil, fmt.Errorf("unsupported predicate operator %q", p.Op)
		}
		query = query.Where(column+" "+operator+" ?", p.Value)
	}

	var transactionModels []model.TransactionModel
	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}
