// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// CredentialHasher turns a secret into a deterministic one-way digest.
type CredentialHasher interface {
	// Hash returns the lowercase hex digest of secret under the named algorithm.
	// The same inputs always produce the same output; no salt is applied.
	Hash(secret, algorithm string) (string, error)

	// Supports reports whether the algorithm identifier is recognized.
	Supports(algorithm string) bool
}
