package portal

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func TestPeekToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signToken(t, jwt.MapClaims{
		"company_name": "Acme Industries",
		"exp":          exp.Unix(),
	})

	info, err := PeekToken(raw)
	require.NoError(t, err)
	require.Equal(t, "Acme Industries", info.Tenant)
	require.True(t, exp.Equal(info.ExpiresAt))
	require.False(t, info.Expired(time.Now()))
}

func TestPeekToken_TenantClaimFallbacks(t *testing.T) {
	info, err := PeekToken(signToken(t, jwt.MapClaims{"tenant": "acme"}))
	require.NoError(t, err)
	require.Equal(t, "acme", info.Tenant)

	info, err = PeekToken(signToken(t, jwt.MapClaims{"name": "Acme"}))
	require.NoError(t, err)
	require.Equal(t, "Acme", info.Tenant)

	info, err = PeekToken(signToken(t, jwt.MapClaims{"sub": "u-1"}))
	require.NoError(t, err)
	require.Empty(t, info.Tenant)
}

func TestPeekToken_Expired(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{
		"tenant": "acme",
		"exp":    time.Now().Add(-time.Minute).Unix(),
	})

	info, err := PeekToken(raw)
	require.NoError(t, err)
	require.True(t, info.Expired(time.Now()))
}

func TestPeekToken_NoExpiryNeverExpires(t *testing.T) {
	info, err := PeekToken(signToken(t, jwt.MapClaims{"tenant": "acme"}))
	require.NoError(t, err)
	require.True(t, info.ExpiresAt.IsZero())
	require.False(t, info.Expired(time.Now().Add(100*365*24*time.Hour)))
}

func TestPeekToken_NotAJWT(t *testing.T) {
	_, err := PeekToken("opaque-api-key")
	require.ErrorIs(t, err, ErrInvalidToken)
}
