// Package report contains the ledger aggregation use cases.
package report

import (
	"context"
	"fmt"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// LatestTransactionUseCase finds the most recently created transaction in a
// scope.
type LatestTransactionUseCase struct {
	ledgerRepo LedgerRepository
}

// NewLatestTransactionUseCase creates a new LatestTransactionUseCase instance.
func NewLatestTransactionUseCase(ledgerRepo LedgerRepository) *LatestTransactionUseCase {
	return &LatestTransactionUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute returns the matching transaction with the greatest identifier.
// Identifiers reflect insertion order, so same-date entries resolve to the
// later insert. An empty scope yields nil, not an error.
func (uc *LatestTransactionUseCase) Execute(ctx context.Context, scope Scope) (*entity.Transaction, error) {
	transactions, err := uc.ledgerRepo.Scan(ctx, scope.predicates())
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger: %w", err)
	}

	var latest *entity.Transaction
	for _, t := range transactions {
		if latest == nil || t.ID > latest.ID {
			latest = t
		}
	}
	return latest, nil
}
