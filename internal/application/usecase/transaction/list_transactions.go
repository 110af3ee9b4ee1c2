// Package transaction contains transaction CRUD use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// ListTransactionsUseCase lists a user's transactions.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns every transaction of the user, newest date first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, userID int64) ([]*entity.Transaction, error) {
	transactions, err := uc.transactionRepo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}
