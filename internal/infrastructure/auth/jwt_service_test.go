package auth

import (
	"testing"
	"time"

	"github.com/pcruz7/deckbuilder/internal/config"
	"github.com/stretchr/testify/assert"
)

func newTestService(expiry time.Duration) JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret: "test-secret",
		Expiry: expiry,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.GenerateToken(123)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(123), claims.UserID)
	assert.Equal(t, "deck-builder", claims.Issuer)
}

func TestValidateTokenFailures(t *testing.T) {
	svc := newTestService(time.Hour)

	t.Run("Garbage_Token", func(t *testing.T) {
		claims, err := svc.ValidateToken("not.a.token")
		assert.Nil(t, claims)
		assert.Error(t, err)
	})

	t.Run("Wrong_Secret", func(t *testing.T) {
		other := NewJWTService(&config.JWTConfig{Secret: "other-secret", Expiry: time.Hour})
		token, err := other.GenerateToken(123)
		assert.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		assert.Nil(t, claims)
		assert.Error(t, err)
	})

	t.Run("Expired_Token", func(t *testing.T) {
		expired := newTestService(-time.Minute)
		token, err := expired.GenerateToken(123)
		assert.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		assert.Nil(t, claims)
		assert.Error(t, err)
	})
}
