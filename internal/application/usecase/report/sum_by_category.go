// Package report contains the ledger aggregation use cases.
package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// SumByCategoryUseCase computes per-category totals over a scope.
type SumByCategoryUseCase struct {
	ledgerRepo LedgerRepository
}

// NewSumByCategoryUseCase creates a new SumByCategoryUseCase instance.
func NewSumByCategoryUseCase(ledgerRepo LedgerRepository) *SumByCategoryUseCase {
	return &SumByCategoryUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute groups matching transactions by category and sums each group.
// The result is ordered by sum descending; equal sums fall back to category
// ascending so identical inputs always produce identical output.
func (uc *SumByCategoryUseCase) Execute(ctx context.Context, scope Scope) ([]CategoryTotal, error) {
	transactions, err := uc.ledgerRepo.Scan(ctx, scope.predicates())
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger: %w", err)
	}

	sums := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		sums[t.Category] = sums[t.Category].Add(t.Amount)
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for category, sum := range sums {
		totals = append(totals, CategoryTotal{Category: category, Sum: sum})
	}
	sort.Slice(totals, func(i, j int) bool {
		if c := totals[i].Sum.Cmp(totals[j].Sum); c != 0 {
			return c > 0
		}
		return totals[i].Category < totals[j].Category
	})
	return totals, nil
}
