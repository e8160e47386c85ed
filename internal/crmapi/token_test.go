package crmapi

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenExpiryFromExpClaim(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	now := time.Now()
	got := TokenExpiry(signed, now, time.Minute)
	assert.True(t, got.Equal(exp), "exp claim wins over the fallback TTL")
}

func TestTokenExpiryFallbackForOpaqueToken(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	got := TokenExpiry("not-a-jwt", now, 8*time.Hour)
	assert.Equal(t, now.Add(8*time.Hour), got)
}

func TestTokenExpiryFallbackWhenNoExpClaim(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "7"})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	now := time.Now()
	got := TokenExpiry(signed, now, time.Hour)
	assert.Equal(t, now.Add(time.Hour), got)
}
