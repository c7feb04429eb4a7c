// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"credkeeper/internal/domain/entity"
)

// UserRecordStore persists credential records in a single table keyed by email.
// Implementations must bind every value as a query parameter.
type UserRecordStore interface {
	// Save inserts a new record and returns it with generated fields populated.
	// A duplicate email fails with a constraint StoreError.
	Save(ctx context.Context, email, passwordHash string) (*entity.UserIdentity, error)

	// DeleteByEmail removes the matching record and returns it.
	// It returns ErrUserNotFound when no record matched.
	DeleteByEmail(ctx context.Context, email string) (*entity.UserIdentity, error)

	// FindByEmail retrieves a single record by email.
	// It returns ErrUserNotFound when no record matched.
	FindByEmail(ctx context.Context, email string) (*entity.UserIdentity, error)
}
