// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-ledger/backend/internal/domain/entity"
)

// TransactionRequest represents the request body for creating or updating a
// transaction. Amount travels as a decimal string to keep exact precision on
// the wire.
type TransactionRequest struct {
	Title       string `json:"title" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Category    string `json:"category"`
	Date        string `json:"date" binding:"required"`
	Description string `json:"description"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Title       string `json:"title"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

// ToTransactionResponse converts a Transaction entity to its response DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Amount:      t.Amount.String(),
		Category:    t.Category,
		Date:        t.Date.Format("2006-01-02"),
		Description: t.Description,
	}
}

// ToTransactionListResponse converts a slice of Transaction entities.
func ToTransactionListResponse(transactions []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		out[i] = ToTransactionResponse(t)
	}
	return out
}
