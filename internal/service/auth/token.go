package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// TokenLength is the number of random bytes in a session token.
// The encoded token is twice this many hex characters.
const TokenLength = 32

// TokenGenerator produces opaque session tokens.
type TokenGenerator interface {
	// Generate returns a new opaque token.
	Generate() (string, error)
}

// RandomTokenGenerator implements TokenGenerator with crypto/rand.
type RandomTokenGenerator struct{}

// NewRandomTokenGenerator creates a new RandomTokenGenerator.
func NewRandomTokenGenerator() *RandomTokenGenerator {
	return &RandomTokenGenerator{}
}

// Generate returns a hex-encoded token drawn from crypto/rand. Tokens
// carry no embedded claims; they are only meaningful as session table
// keys.
func (g *RandomTokenGenerator) Generate() (string, error) {
	b := make([]byte, TokenLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
