package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService(t *testing.T) {
	svc := NewJWTService("segredo", 15*time.Minute)

	token, expiresIn, err := svc.GenerateToken("user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(900), expiresIn)

	t.Run("Valid", func(t *testing.T) {
		userID, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("Expired", func(t *testing.T) {
		later := NewJWTService("segredo", 15*time.Minute)
		later.now = func() time.Time { return time.Now().Add(time.Hour) }
		_, err := later.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		_, err := NewJWTService("outro", time.Minute).ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("WrongIssuer", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "outro-servico",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}
		foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("segredo"))
		require.NoError(t, err)
		_, err = svc.ValidateToken(foreign)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("nao.e.jwt")
		assert.Error(t, err)
	})
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasherWithCost(1)

	hash, err := h.HashPassword("123456")
	require.NoError(t, err)
	assert.NotEqual(t, "123456", hash)

	assert.NoError(t, h.ComparePassword(hash, "123456"))
	assert.Error(t, h.ComparePassword(hash, "654321"))
}
