package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
)

// NewRefreshToken returns a fresh opaque refresh token and the SHA-256
// digest under which it is stored. Only the digest ever reaches the
// database.
func NewRefreshToken() (plain string, hash string) {
	plain = uuid.NewString()
	return plain, HashRefreshToken(plain)
}

// HashRefreshToken returns the hex SHA-256 digest of a refresh token.
func HashRefreshToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
