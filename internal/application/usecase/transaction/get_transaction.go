// Package transaction contains transaction CRUD use cases.
package transaction

import (
	"context"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// GetTransactionUseCase retrieves a single transaction for its owner.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute returns the transaction or domainerror.ErrTransactionNotFound when
// it does not exist or belongs to another user.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, id, userID int64) (*entity.Transaction, error) {
	return uc.transactionRepo.FindByID(ctx, id, userID)
}
