package portal

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken means the bearer token is not a parseable JWT. The
// portal may still accept it; callers should treat this as cosmetic.
var ErrInvalidToken = errors.New("invalid token")

// TokenInfo is what the client can read off the bearer token without
// verifying it: who the session belongs to and when it lapses. It is
// display/warning material only, never an authorization decision.
type TokenInfo struct {
	Tenant    string
	ExpiresAt time.Time
}

// Expired reports whether the token's exp claim (if any) has passed.
func (t *TokenInfo) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}

// PeekToken decodes the token claims without signature verification.
// The tenant name is looked up under the claim names the portal has
// used across versions.
func PeekToken(raw string) (*TokenInfo, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, ErrInvalidToken
	}

	info := &TokenInfo{}
	for _, key := range []string{"company_name", "tenant", "name"} {
		if v, ok := claims[key].(string); ok && v != "" {
			info.Tenant = v
			break
		}
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info, nil
}
