// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserIdentity is a stored credential record, keyed by email.
// PasswordHash always holds a digest of the secret, never the secret itself.
type UserIdentity struct {
	ID           uuid.UUID // Generated by the database on insert.
	Email        string    // Unique natural key used to look up and delete the record.
	PasswordHash string    // Lowercase hex digest of the password.
	CreatedAt    time.Time // Timestamp of when the record was inserted.
}

// HashAlgorithm names a digest function, e.g. "sha256".
type HashAlgorithm = string

// DefaultHashAlgorithm is the digest used for registration unless configured otherwise.
const DefaultHashAlgorithm HashAlgorithm = "sha256"
