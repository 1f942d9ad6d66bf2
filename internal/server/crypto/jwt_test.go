package crypto_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-yandex-mesto/internal/server/crypto"
)

const testKey = "dev-secret"

func TestNewToken_RoundTrip(t *testing.T) {
	cfg := crypto.JWTConfig{SigningKey: testKey, TTL: time.Hour}

	tok, err := crypto.NewToken("3f2a9c1e-1111-4222-8333-444455556666", cfg, time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := crypto.ParseToken(tok, testKey)
	require.NoError(t, err)
	require.Equal(t, "3f2a9c1e-1111-4222-8333-444455556666", id)
}

func TestNewToken_DefaultTTLIsSevenDays(t *testing.T) {
	now := time.Now()
	tok, err := crypto.NewToken("u1", crypto.JWTConfig{SigningKey: testKey}, now)
	require.NoError(t, err)

	claims := &crypto.Claims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) { return []byte(testKey), nil })
	require.NoError(t, err)

	require.Equal(t, now.Add(7*24*time.Hour).Unix(), claims.ExpiresAt.Unix())
	require.Equal(t, "u1", claims.ID)
}

func TestParseToken_Expired(t *testing.T) {
	cfg := crypto.JWTConfig{SigningKey: testKey, TTL: time.Minute}
	tok, err := crypto.NewToken("u1", cfg, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = crypto.ParseToken(tok, testKey)
	require.ErrorIs(t, err, crypto.ErrTokenExpired)
}

func TestParseToken_WrongKey(t *testing.T) {
	tok, err := crypto.NewToken("u1", crypto.JWTConfig{SigningKey: testKey}, time.Now())
	require.NoError(t, err)

	_, err = crypto.ParseToken(tok, "other-secret")
	require.ErrorIs(t, err, crypto.ErrTokenInvalid)
}

func TestParseToken_Garbage(t *testing.T) {
	_, err := crypto.ParseToken("not.a.token", testKey)
	require.ErrorIs(t, err, crypto.ErrTokenInvalid)
}

func TestParseToken_NoneAlgRejected(t *testing.T) {
	claims := crypto.Claims{
		ID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = crypto.ParseToken(tok, testKey)
	require.ErrorIs(t, err, crypto.ErrTokenInvalid)
}

func TestParseToken_MissingID(t *testing.T) {
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
	require.NoError(t, err)

	_, err = crypto.ParseToken(tok, testKey)
	require.ErrorIs(t, err, crypto.ErrTokenInvalid)
}
