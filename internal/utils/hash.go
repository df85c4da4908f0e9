package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by PasswordHasher.Compare when the
// plaintext does not correspond to the stored digest.
var ErrPasswordMismatch = errors.New("password does not match")

// PasswordHasher hashes and verifies user passwords with bcrypt.
// The zero value uses bcrypt.DefaultCost.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a PasswordHasher with the given bcrypt cost.
// A cost of 0 selects bcrypt.DefaultCost.
//
// Example usage:
//
//	hasher := utils.NewPasswordHasher(bcrypt.DefaultCost)
//	digest, err := hasher.Hash("s3cret!")
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash returns the bcrypt digest of password.
// The digest embeds its own salt and cost, so hashing the same
// password twice yields different strings.
func (h *PasswordHasher) Hash(password string) (string, error) {
	cost := h.cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Compare checks password against a digest produced by Hash.
//
// Returns:
//   - nil - password matches
//   - ErrPasswordMismatch - password does not match
//   - other error - digest is malformed
func (h *PasswordHasher) Compare(digest, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("error comparing password: %w", err)
	}
	return nil
}
