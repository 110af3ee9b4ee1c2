// Package transaction contains transaction CRUD use cases.
package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// UpdateTransactionInput represents the input for updating a transaction.
type UpdateTransactionInput struct {
	ID          int64
	UserID      int64
	Title       string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
}

// UpdateTransactionUseCase handles transaction updates.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute validates the input and replaces the stored fields of the owner's
// transaction. Returns domainerror.ErrTransactionNotFound when the row does
// not exist for this user.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*entity.Transaction, error) {
	if err := validateWriteInput(input.UserID, input.Title, input.Date); err != nil {
		return nil, err
	}

	transaction := &entity.Transaction{
		ID:          input.ID,
		UserID:      input.UserID,
		Title:       input.Title,
		Amount:      input.Amount,
		Category:    input.Category,
		Date:        entity.DateOnly(input.Date),
		Description: input.Description,
	}
	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}
