// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/md5"  //nolint:gosec // Accepted identifier; strength is chosen by configuration.
	"crypto/sha1" //nolint:gosec // Accepted identifier; strength is chosen by configuration.
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"strings"

	domainerrors "credkeeper/internal/domain/errors"
	"credkeeper/internal/domain/service"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// digestHasher is a concrete implementation of the CredentialHasher interface
// backed by unsalted message digests.
type digestHasher struct {
	digests map[string]func() hash.Hash
}

// NewDigestHasher is the constructor for digestHasher.
// It returns the implementation as a service.CredentialHasher interface.
func NewDigestHasher() service.CredentialHasher {
	return &digestHasher{
		digests: map[string]func() hash.Hash{
			"md5":         md5.New,
			"sha1":        sha1.New,
			"sha224":      sha256.New224,
			"sha256":      sha256.New,
			"sha384":      sha512.New384,
			"sha512":      sha512.New,
			"sha3-256":    sha3.New256,
			"sha3-512":    sha3.New512,
			"blake2b-256": newBlake2b256,
			"blake2b-512": newBlake2b512,
		},
	}
}

// Hash returns the lowercase hex digest of secret under algorithm.
func (h *digestHasher) Hash(secret, algorithm string) (string, error) {
	if secret == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("secret must not be empty")
	}

	newDigest, ok := h.lookup(algorithm)
	if !ok {
		return "", domainerrors.ErrUnsupportedAlgorithm.WrapMessage(algorithm)
	}

	digest := newDigest()
	digest.Write([]byte(secret))

	return hex.EncodeToString(digest.Sum(nil)), nil
}

// Supports reports whether algorithm names a known digest.
func (h *digestHasher) Supports(algorithm string) bool {
	_, ok := h.lookup(algorithm)

	return ok
}

func (h *digestHasher) lookup(algorithm string) (func() hash.Hash, bool) {
	newDigest, ok := h.digests[strings.ToLower(strings.TrimSpace(algorithm))]

	return newDigest, ok
}

// blake2b only fails for oversized keys; these constructors pass none.
func newBlake2b256() hash.Hash {
	digest, _ := blake2b.New256(nil)

	return digest
}

func newBlake2b512() hash.Hash {
	digest, _ := blake2b.New512(nil)

	return digest
}
