// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"credkeeper/internal/domain/entity"
)

// --- Input DTOs ---

// CredentialInput is the identity a single request operates on.
// It is built per request and never stored on a shared instance.
type CredentialInput struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=1024"`
}

// --- Output DTOs ---

// CredentialOutput returns the stored record affected by an operation.
type CredentialOutput struct {
	User *entity.UserIdentity
}

// CredentialUsecase defines the credential lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type CredentialUsecase interface {
	// Register hashes the password and stores a new record for the email.
	Register(ctx context.Context, input *CredentialInput) (*CredentialOutput, error)

	// Delete removes the record for the email.
	Delete(ctx context.Context, input *CredentialInput) (*CredentialOutput, error)

	// Lookup returns the record for the email without modifying it.
	Lookup(ctx context.Context, email string) (*CredentialOutput, error)
}
