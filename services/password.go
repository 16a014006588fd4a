package services

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher produces and checks salted one-way password digests
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// BcryptHasher implements PasswordHasher with bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given work factor.
// Zero selects bcrypt.DefaultCost; other values are clamped to bcrypt's bounds.
func NewBcryptHasher(cost int) *BcryptHasher {
	switch {
	case cost == 0:
		cost = bcrypt.DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return &BcryptHasher{cost: cost}
}

// Cost returns the configured work factor
func (h *BcryptHasher) Cost() int {
	return h.cost
}

// Hash returns the bcrypt digest of plaintext
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", NewDomainError(ErrorTypeValidation, "password cannot be empty", nil)
	}
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", NewDomainError(ErrorTypeValidation, "password exceeds 72 bytes", err)
		}
		return "", WrapInternal("failed to hash password", err)
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A malformed digest never matches.
func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
