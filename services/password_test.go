package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{"zero selects default", 0, bcrypt.DefaultCost},
		{"below minimum", 1, bcrypt.MinCost},
		{"above maximum", 99, bcrypt.MaxCost},
		{"in range", 6, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewBcryptHasher(tt.cost).Cost())
		})
	}
}

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("correct-horse")
	require.NoError(t, err)

	assert.NotEqual(t, "correct-horse", digest)
	assert.True(t, hasher.Verify("correct-horse", digest))
	assert.False(t, hasher.Verify("wrong-horse", digest))

	t.Run("salted", func(t *testing.T) {
		again, err := hasher.Hash("correct-horse")
		require.NoError(t, err)
		assert.NotEqual(t, digest, again)
		assert.True(t, hasher.Verify("correct-horse", again))
	})

	t.Run("malformed digest never matches", func(t *testing.T) {
		assert.False(t, hasher.Verify("correct-horse", "not-a-bcrypt-digest"))
		assert.False(t, hasher.Verify("", ""))
	})
}

func TestBcryptHasher_HashRejects(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("empty", func(t *testing.T) {
		_, err := hasher.Hash("")
		assert.True(t, IsValidationError(err))
	})

	t.Run("longer than 72 bytes", func(t *testing.T) {
		_, err := hasher.Hash(strings.Repeat("a", 73))
		assert.True(t, IsValidationError(err))
	})
}
