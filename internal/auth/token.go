package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// TokenBytes is the amount of randomness in an auth token. Hex encoding
// doubles it, so tokens are 32 characters long.
const TokenBytes = 16

// GenerateToken creates a cryptographically random auth token.
func GenerateToken() (string, error) {
	b := make([]byte, TokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// TokensEqual compares two tokens in constant time.
func TokensEqual(stored, provided string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(provided)) == 1
}
