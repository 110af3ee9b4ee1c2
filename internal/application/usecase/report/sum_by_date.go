// Package report contains the ledger aggregation use cases.
package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// SumByDateUseCase computes per-date totals over a scope.
type SumByDateUseCase struct {
	ledgerRepo LedgerRepository
}

// NewSumByDateUseCase creates a new SumByDateUseCase instance.
func NewSumByDateUseCase(ledgerRepo LedgerRepository) *SumByDateUseCase {
	return &SumByDateUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute groups matching transactions by occurrence date and sums each day.
// Every date with at least one matching row appears exactly once, ordered by
// date ascending.
func (uc *SumByDateUseCase) Execute(ctx context.Context, scope Scope) ([]DateTotal, error) {
	transactions, err := uc.ledgerRepo.Scan(ctx, scope.predicates())
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger: %w", err)
	}

	sums := make(map[time.Time]decimal.Decimal)
	for _, t := range transactions {
		day := entity.DateOnly(t.Date)
		sums[day] = sums[day].Add(t.Amount)
	}

	totals := make([]DateTotal, 0, len(sums))
	for date, sum := range sums {
		totals = append(totals, DateTotal{Date: date, Sum: sum})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date.Before(totals[j].Date)
	})
	return totals, nil
}
