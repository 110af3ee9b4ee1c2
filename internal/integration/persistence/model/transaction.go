// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	UserID      int64           `gorm:"not null;index"`
	Title       string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category    string          `gorm:"type:varchar(100);not null;index"`
	Description string          `gorm:"type:text"`
	Date        time.Time       `gorm:"type:date;not null;index"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
// The date is renormalized to midnight UTC; some drivers return date columns
// with a zone attached.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Amount:      m.Amount,
		Category:    m.Category,
		Date:        entity.DateOnly(m.Date),
		Description: m.Description,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		UserID:      transaction.UserID,
		Title:       transaction.Title,
		Amount:      transaction.Amount,
		Category:    transaction.Category,
		Description: transaction.Description,
		Date:        entity.DateOnly(transaction.Date),
	}
}
