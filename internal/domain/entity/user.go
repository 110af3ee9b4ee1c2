// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// User represents an account that owns ledger transactions. The reporting
// engine only ever references users by ID; credential handling lives outside
// this service.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	AvatarURL    string
	CreatedAt    time.Time
}
