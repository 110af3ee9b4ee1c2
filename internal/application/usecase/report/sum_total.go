// Package report contains the ledger aggregation use cases.
package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// SumTotalUseCase computes the total amount over a scope.
type SumTotalUseCase struct {
	ledgerRepo LedgerRepository
}

// NewSumTotalUseCase creates a new SumTotalUseCase instance.
func NewSumTotalUseCase(ledgerRepo LedgerRepository) *SumTotalUseCase {
	return &SumTotalUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute sums the amounts of every matching transaction. An empty scope
// yields exact zero, never an absent value: a financial total must not be
// reported as missing.
func (uc *SumTotalUseCase) Execute(ctx context.Context, scope Scope) (decimal.Decimal, error) {
	transactions, err := uc.ledgerRepo.Scan(ctx, scope.predicates())
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to scan ledger: %w", err)
	}

	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.Amount)
	}
	return total, nil
}
