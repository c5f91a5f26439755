package auth

import (
	"golang.org/x/crypto/bcrypt"

	"lorrylink/internal/pkg/errs"
)

// MinPasswordLength is the weakest password accepted at registration and
// password change.
const MinPasswordLength = 8

// BcryptHasher hashes and verifies passwords with bcrypt at the default cost.
// It satisfies the password hasher dependency of the account commands.
type BcryptHasher struct{}

// NewBcryptHasher creates a bcrypt-backed password hasher.
func NewBcryptHasher() BcryptHasher {
	return BcryptHasher{}
}

// Hash computes the bcrypt hash of a plaintext password. Rejects passwords
// below the minimum length before hashing.
func (BcryptHasher) Hash(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", errs.NewValueIsInvalidError("password is too short")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare reports whether the plaintext password matches the stored hash.
// Returns bcrypt's mismatch error when it does not.
func (BcryptHasher) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
