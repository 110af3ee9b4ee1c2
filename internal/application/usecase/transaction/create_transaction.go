// Package transaction contains transaction CRUD use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for creating a transaction.
type CreateTransactionInput struct {
	UserID      int64
	Title       string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
}

// CreateTransactionUseCase handles transaction creation.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute validates the input and persists a new transaction, returning it
// with the store-assigned identifier.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*entity.Transaction, error) {
	if err := validateWriteInput(input.UserID, input.Title, input.Date); err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.Title,
		input.Amount,
		input.Category,
		input.Date,
		input.Description,
	)
	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return transaction, nil
}

// validateWriteInput checks the fields shared by create and update.
func validateWriteInput(userID int64, title string, date time.Time) error {
	if userID <= 0 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionOwner,
			"owner id must be positive",
			domainerror.ErrInvalidTransactionOwner,
		)
	}
	if title == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionTitle,
			"title is required",
			domainerror.ErrInvalidTransactionTitle,
		)
	}
	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	return nil
}
