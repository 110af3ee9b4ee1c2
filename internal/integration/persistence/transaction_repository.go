// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/finance-ledger/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database and assigns its ID.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	transaction.ID = transactionModel.ID
	return nil
}

// FindByID retrieves a transaction by its ID, scoped to the owner.
func (r *transactionRepository) FindByID(ctx context.Context, id, userID int64) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindAllByUser retrieves all transactions for a given user, newest date
// first and higher identifier first within a date.
func (r *transactionRepository) FindAllByUser(ctx context.Context, userID int64) ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// Update updates an existing transaction, scoped to the owner.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	var existing model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", transaction.ID, transaction.UserID).
		First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return domainerror.ErrTransactionNotFound
		}
		return result.Error
	}

	transactionModel := model.TransactionFromEntity(transaction)
	return r.db.WithContext(ctx).Save(transactionModel).Error
}

// Delete removes a transaction from the database, scoped to the owner.
func (r *transactionRepository) Delete(ctx context.Context, id, userID int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}
