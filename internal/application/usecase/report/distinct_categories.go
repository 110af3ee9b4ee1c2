// Package report contains the ledger aggregation use cases.
package report

import (
	"context"
	"fmt"
	"sort"
)

// DistinctCategoriesUseCase lists the unique categories within a scope.
type DistinctCategoriesUseCase struct {
	ledgerRepo LedgerRepository
}

// NewDistinctCategoriesUseCase creates a new DistinctCategoriesUseCase instance.
func NewDistinctCategoriesUseCase(ledgerRepo LedgerRepository) *DistinctCategoriesUseCase {
	return &DistinctCategoriesUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute returns the deduplicated category names of matching transactions,
// sorted ascending. An empty scope yields an empty slice.
func (uc *DistinctCategoriesUseCase) Execute(ctx context.Context, scope Scope) ([]string, error) {
	transactions, err := uc.ledgerRepo.Scan(ctx, scope.predicates())
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger: %w", err)
	}

	seen := make(map[string]struct{})
	categories := make([]string, 0, len(transactions))
	for _, t := range transactions {
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		categories = append(categories, t.Category)
	}
	sort.Strings(categories)
	return categories, nil
}
