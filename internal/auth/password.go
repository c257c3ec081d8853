package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the original deployment used for stored hashes.
const bcryptCost = 10

// HashPassword returns a salted bcrypt hash of the plaintext password.
// Hashing the same plaintext twice yields different digests.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt hash.
// A malformed hash yields false rather than an error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsHashed reports whether the value already looks like a bcrypt digest.
// Used by the user model's save hook to keep hashing idempotent.
func IsHashed(value string) bool {
	return strings.HasPrefix(value, "$2a$") ||
		strings.HasPrefix(value, "$2b$") ||
		strings.HasPrefix(value, "$2y$")
}
