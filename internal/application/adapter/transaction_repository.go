// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-ledger/backend/internal/domain/entity"
)

// TransactionRepository defines the write/read persistence surface for single
// transactions. It is a plain wrapper layer; every aggregate computation goes
// through the report use cases instead.
type TransactionRepository interface {
	// Create inserts a new transaction and assigns its identifier.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID, scoped to the owner.
	FindByID(ctx context.Context, id, userID int64) (*entity.Transaction, error)

	// FindAllByUser retrieves all transactions for a user, newest date first,
	// higher identifier first within a date.
	FindAllByUser(ctx context.Context, userID int64) ([]*entity.Transaction, error)

	// Update updates an existing transaction, scoped to the owner.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction by ID, scoped to the owner.
	Delete(ctx context.Context, id, userID int64) error
}

// UserRepository defines the minimal user persistence surface the service
// reads. Credential flows are out of scope.
type UserRepository interface {
	// Create inserts a new user and assigns its identifier.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)
}
