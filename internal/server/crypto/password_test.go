package crypto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/crypto"
)

func TestHashPassword_NotPlaintextAndVerifies(t *testing.T) {
	hash, err := crypto.HashPassword("password1", bcrypt.MinCost)
	require.NoError(t, err)

	require.NotEqual(t, "password1", hash)
	require.True(t, strings.HasPrefix(hash, "$2a$"))

	ok, err := crypto.VerifyPassword("password1", hash)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestHashPassword_SaltDiffers(t *testing.T) {
	h1, err := crypto.HashPassword("password1", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := crypto.HashPassword("password1", bcrypt.MinCost)
	require.NoError(t, err)

	require.NotEqual(t, h1, h2)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := crypto.HashPassword("   ", bcrypt.MinCost)
	require.ErrorIs(t, err, crypto.ErrEmptyPassword)
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := crypto.HashPassword(strings.Repeat("p", 73), bcrypt.MinCost)
	require.ErrorIs(t, err, crypto.ErrPasswordTooLong)

	_, err = crypto.HashPassword(strings.Repeat("p", 72), bcrypt.MinCost)
	require.NoError(t, err)
}

func TestHashPassword_CostOutOfRangeUsesDefault(t *testing.T) {
	hash, err := crypto.HashPassword("password1", 1000)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	require.Equal(t, crypto.DefaultBcryptCost, cost)
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	hash, err := crypto.HashPassword("password1", bcrypt.MinCost)
	require.NoError(t, err)

	ok, err := crypto.VerifyPassword("password2", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyPassword_BrokenHash(t *testing.T) {
	ok, err := crypto.VerifyPassword("password1", "not-a-hash")
	require.Error(t, err)
	require.False(t, ok)
}
