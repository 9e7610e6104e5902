package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	t.Run("RoundTrip", func(t *testing.T) {
		for _, password := range []string{"wonderland", "p@ss w0rd", "ünïcødé", "x"} {
			hash, err := hasher.Hash(password)
			require.NoError(t, err)
			assert.NotEqual(t, password, hash, "hash must not be the plaintext")
			assert.True(t, hasher.Verify(password, hash), "password %q should verify", password)
		}
	})

	t.Run("Salted", func(t *testing.T) {
		first, err := hasher.Hash("wonderland")
		require.NoError(t, err)
		second, err := hasher.Hash("wonderland")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
		assert.True(t, hasher.Verify("wonderland", first))
		assert.True(t, hasher.Verify("wonderland", second))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		hash, err := hasher.Hash("wonderland")
		require.NoError(t, err)

		assert.False(t, hasher.Verify("Wonderland", hash))
		assert.False(t, hasher.Verify("wonderland ", hash))
		assert.False(t, hasher.Verify("", hash))
	})

	t.Run("MalformedHash", func(t *testing.T) {
		for _, hash := range []string{"", "not-a-hash", "$2a$04$short", "wonderland"} {
			assert.False(t, hasher.Verify("wonderland", hash), "hash %q", hash)
		}
	})

	t.Run("EmptyPassword", func(t *testing.T) {
		hash, err := hasher.Hash("")
		assert.ErrorIs(t, err, ErrEmptyPassword)
		assert.Empty(t, hash)
	})
}

func TestNewBcryptHasherCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, bcrypt.MinCost, NewBcryptHasher(bcrypt.MinCost).cost)
}
