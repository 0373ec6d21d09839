package agileboot

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the readable part of a backend token.
type TokenClaims struct {
	// Subject is the "sub" claim, empty when absent.
	Subject string
	// IssuedAt is the "iat" claim, nil when absent.
	IssuedAt *time.Time
	// ExpiresAt is the "exp" claim, nil when the token does not expire by itself.
	ExpiresAt *time.Time
	// Claims holds every claim of the token.
	Claims jwt.MapClaims
}

// ParseTokenClaims decodes the claims of a JWT without verifying its signature.
// The signing key is only known to the backend, so the result is informational:
// it must never be used to make authorization decisions.
func ParseTokenClaims(token string) (*TokenClaims, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	result := &TokenClaims{Claims: claims}

	if subject, err := claims.GetSubject(); err == nil {
		result.Subject = subject
	}

	if issuedAt, err := claims.GetIssuedAt(); err == nil && issuedAt != nil {
		result.IssuedAt = &issuedAt.Time
	}

	if expiresAt, err := claims.GetExpirationTime(); err == nil && expiresAt != nil {
		result.ExpiresAt = &expiresAt.Time
	}

	return result, nil
}

// IsExpired reports whether the token carries an expiry that lies before now.
func (c *TokenClaims) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}
