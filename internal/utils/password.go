package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned by HashPassword when the plaintext is empty.
// An empty password must never reach the hashing primitive.
var ErrEmptyPassword = errors.New("password must not be empty")

// bcryptCost is the work factor used for new digests.
const bcryptCost = 12

// HashPassword derives a one-way salted bcrypt digest from the given
// plaintext password. bcrypt embeds a random salt in the digest, so hashing
// the same password twice yields different digests.
//
// Returns [ErrEmptyPassword] if plaintext is empty, or a wrapped bcrypt
// error if hashing fails.
func HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt digest.
//
// Comparison is performed by bcrypt.CompareHashAndPassword, which is
// timing-safe. Any internal failure (mismatch, empty input, corrupt digest)
// is reported as false. This function never returns an error and never
// panics, so a malformed stored digest degrades to a failed login rather
// than a crashed request.
func CheckPassword(plaintext, digest string) bool {
	if plaintext == "" || digest == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
