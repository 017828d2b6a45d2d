package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomTokenGeneratorGenerate(t *testing.T) {
	t.Parallel()

	generator := NewRandomTokenGenerator()

	token, err := generator.Generate()
	require.NoError(t, err)

	// Hex encoding doubles the byte length
	assert.Len(t, token, TokenLength*2)

	decoded, err := hex.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, decoded, TokenLength)
}

func TestRandomTokenGeneratorUniqueness(t *testing.T) {
	t.Parallel()

	generator := NewRandomTokenGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := generator.Generate()
		require.NoError(t, err)
		assert.False(t, seen[token], "generated a duplicate token")
		seen[token] = true
	}
}
