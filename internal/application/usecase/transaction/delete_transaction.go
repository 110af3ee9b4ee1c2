// Package transaction contains transaction CRUD use cases.
package transaction

import (
	"context"

	"github.com/finance-ledger/backend/internal/application/adapter"
)

// DeleteTransactionUseCase handles transaction deletion.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute removes the owner's transaction. Returns
// domainerror.ErrTransactionNotFound when the row does not exist for this
// user.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, id, userID int64) error {
	return uc.transactionRepo.Delete(ctx, id, userID)
}
