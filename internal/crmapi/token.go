// internal/crmapi/token.go
package crmapi

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry determines when the issued credential goes stale. The token is
// decoded without verification (the upstream is the verifier; the console
// only needs the exp claim for its local expiry marker). Opaque tokens and
// tokens without exp fall back to now + fallbackTTL.
func TokenExpiry(token string, now time.Time, fallbackTTL time.Duration) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	return now.Add(fallbackTTL)
}
