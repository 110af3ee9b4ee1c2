// Package report contains the ledger aggregation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/finance-ledger/backend/internal/domain/valueobject"
)

// MonthlyTotalInput represents the input for a calendar-month total.
type MonthlyTotalInput struct {
	UserID int64
	Month  int
	Year   int
}

// MonthlyTotalUseCase computes the total amount of one calendar month.
type MonthlyTotalUseCase struct {
	ledgerRepo LedgerRepository
}

// NewMonthlyTotalUseCase creates a new MonthlyTotalUseCase instance.
func NewMonthlyTotalUseCase(ledgerRepo LedgerRepository) *MonthlyTotalUseCase {
	return &MonthlyTotalUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// Execute sums every transaction dated within the given month and year,
// ignoring any other filter. Malformed month/year values are rejected before
// the store is touched. An empty month yields exact zero.
func (uc *MonthlyTotalUseCase) Execute(ctx context.Context, input MonthlyTotalInput) (decimal.Decimal, error) {
	if err := uc.validateInput(input); err != nil {
		return decimal.Zero, err
	}

	monthStart := time.Date(input.Year, time.Month(input.Month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	filter := &valueobject.TransactionFilter{
		DateFrom: &monthStart,
		DateTo:   &monthEnd,
	}

	transactions, err := uc.ledgerRepo.Scan(ctx, valueobject.Compile(input.UserID, filter))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to scan ledger: %w", err)
	}

	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.Amount)
	}
	return total, nil
}

// validateInput validates the input parameters.
func (uc *MonthlyTotalUseCase) validateInput(input MonthlyTotalInput) error {
	if input.Month < 1 || input.Month > 12 {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidMonth,
		)
	}
	if input.Year < 1 {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidYear,
			"year must be positive",
			domainerror.ErrInvalidYear,
		)
	}
	return nil
}
