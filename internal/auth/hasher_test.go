package auth_test

import (
	"testing"

	"lorrylink/internal/auth"
	"lorrylink/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := auth.NewBcryptHasher()

	t.Run("should verify matching password", func(t *testing.T) {
		hash, err := hasher.Hash("correct horse battery")
		require.NoError(t, err)
		assert.NotEqual(t, "correct horse battery", hash)

		require.NoError(t, hasher.Compare(hash, "correct horse battery"))
	})

	t.Run("should reject wrong password", func(t *testing.T) {
		hash, err := hasher.Hash("correct horse battery")
		require.NoError(t, err)

		require.Error(t, hasher.Compare(hash, "wrong password"))
	})

	t.Run("should produce distinct hashes for the same password", func(t *testing.T) {
		first, err := hasher.Hash("correct horse battery")
		require.NoError(t, err)
		second, err := hasher.Hash("correct horse battery")
		require.NoError(t, err)

		assert.NotEqual(t, first, second, "bcrypt salts every hash")
	})

	t.Run("should reject short password before hashing", func(t *testing.T) {
		_, err := hasher.Hash("short")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
