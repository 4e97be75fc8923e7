package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, raw string, at time.Time) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(raw, func(tok *jwt.Token) (any, error) {
		require.IsType(t, &jwt.SigningMethodHMAC{}, tok.Method)
		return devSecret, nil
	}, jwt.WithTimeFunc(func() time.Time { return at }))
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	return claims
}

func TestMinter(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	m := NewMinterWithClock(func() time.Time { return now })

	t.Run("access token", func(t *testing.T) {
		t.Parallel()
		raw, err := m.AccessToken("admin@hotelname.com")
		require.NoError(t, err)

		claims := parse(t, raw, now)
		assert.Equal(t, "admin@hotelname.com", claims["sub"])
		assert.Equal(t, "access", claims["token_type"])
		assert.Equal(t, float64(now.Add(60*time.Minute).Unix()), claims["exp"])
	})

	t.Run("refresh token outlives access token", func(t *testing.T) {
		t.Parallel()
		raw, err := m.RefreshToken("admin@hotelname.com")
		require.NoError(t, err)

		claims := parse(t, raw, now)
		assert.Equal(t, "refresh", claims["token_type"])
		assert.Equal(t, float64(now.Add(30*24*time.Hour).Unix()), claims["exp"])
	})

	t.Run("verification token", func(t *testing.T) {
		t.Parallel()
		raw, err := m.VerificationToken("admin@hotelname.com")
		require.NoError(t, err)

		claims := parse(t, raw, now)
		assert.Equal(t, "verification", claims["token_type"])
		assert.Equal(t, float64(now.Add(10*time.Minute).Unix()), claims["exp"])
	})
}
