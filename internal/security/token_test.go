package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vivaha-backend/internal/domain"
)

func TestTokenManager(t *testing.T) {
	tm := NewTokenManager("test-secret", 15*time.Minute, time.Hour)

	t.Run("Access Token Roundtrip", func(t *testing.T) {
		token, err := tm.GenerateAccessToken("u1", "bride@example.com", domain.RoleUser)
		require.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
		assert.Equal(t, "bride@example.com", claims.Email)
		assert.Equal(t, domain.RoleUser, claims.Role)
		assert.Equal(t, TokenTypeAccess, claims.Type)
	})

	t.Run("Refresh Token Carries Its Type", func(t *testing.T) {
		token, err := tm.GenerateRefreshToken("u1", "bride@example.com")
		require.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.Type)
	})

	t.Run("Wrong Secret Rejected", func(t *testing.T) {
		other := NewTokenManager("other-secret", 15*time.Minute, time.Hour)
		token, err := tm.GenerateAccessToken("u1", "bride@example.com", domain.RoleUser)
		require.NoError(t, err)

		_, err = other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired Token Rejected", func(t *testing.T) {
		expired := NewTokenManager("test-secret", -time.Minute, time.Hour)
		token, err := expired.GenerateAccessToken("u1", "bride@example.com", domain.RoleUser)
		require.NoError(t, err)

		_, err = expired.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Garbage Rejected", func(t *testing.T) {
		_, err := tm.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
