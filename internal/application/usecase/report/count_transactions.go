// Package report contains the ledger aggregation use cases.
package report

import (
	"context"
	"fmt"
)

// CountTransactionsUseCase counts the transactions within a scope.
type CountTransactionsUseCase struct {
	ledgerRepo LedgerRepository
}

// NewCountTransactionsUseCase creates a new CountTransactionsUseCase instance.
func NewCountTransactionsUseCase(ledgerRepo LedgerRepository) *CountTransactionsUseCase {
	return &CountTransactionsUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute returns the number of matching transactions, zero when none match.
func (uc *CountTransactionsUseCase) Execute(ctx context.Context, scope Scope) (int64, error) {
	transactions, err := uc.ledgerRepo.Scan(ctx, scope.predicates())
	if err != nil {
		return 0, fmt.Errorf("failed to scan ledger: %w", err)
	}
	return int64(len(transactions)), nil
}
