package security_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtrack-backend/pkg/security"
)

const testSecret = "test-secret-key"

func newIssuer(t *testing.T) *security.TokenIssuer {
	t.Helper()
	issuer, err := security.NewTokenIssuer(testSecret, "HS256")
	require.NoError(t, err)
	return issuer
}

func TestNewTokenIssuer_Validation(t *testing.T) {
	_, err := security.NewTokenIssuer("", "HS256")
	assert.Error(t, err, "empty secret must be rejected")

	_, err = security.NewTokenIssuer(testSecret, "HS9000")
	assert.Error(t, err, "unknown algorithm must be rejected")

	_, err = security.NewTokenIssuer(testSecret, "RS256")
	assert.Error(t, err, "non-HMAC algorithm must be rejected")
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := newIssuer(t)

	token, err := issuer.Issue(jwt.MapClaims{"sub": "a@x.com"}, 30*time.Minute)
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims["sub"])
}

func TestTokenIssuer_ExpiredTokenFails(t *testing.T) {
	issuer := newIssuer(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "a@x.com",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenIssuer_WrongSecretFails(t *testing.T) {
	issuer := newIssuer(t)

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "a@x.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := other.SignedString([]byte("a-different-secret"))
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenIssuer_AlgorithmMismatchFails(t *testing.T) {
	issuer := newIssuer(t)

	// Same secret, different HMAC variant: the verifier pins its algorithm.
	other := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub": "a@x.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := other.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenIssuer_MalformedTokenFails(t *testing.T) {
	issuer := newIssuer(t)

	_, err := issuer.Verify("not.a.jwt")
	assert.ErrorIs(t, err, security.ErrInvalidToken)

	_, err = issuer.Verify("")
	assert.ErrorIs(t, err, security.ErrInvalidToken)
}

func TestTokenIssuer_DefaultTTL(t *testing.T) {
	issuer := newIssuer(t)

	token, err := issuer.Issue(jwt.MapClaims{"sub": "a@x.com"}, 0)
	require.NoError(t, err)

	claims, err := issuer.Verify(token)
	require.NoError(t, err)

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)

	want := time.Now().Add(15 * time.Minute).Unix()
	assert.InDelta(t, want, int64(exp), 5, "ttl <= 0 falls back to 15 minutes")
}

func TestTokenIssuer_InputClaimsNotMutated(t *testing.T) {
	issuer := newIssuer(t)

	in := jwt.MapClaims{"sub": "a@x.com"}
	_, err := issuer.Issue(in, time.Minute)
	require.NoError(t, err)

	_, hasExp := in["exp"]
	assert.False(t, hasExp)
}
