package googleauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVerifier(audience, endpoint string) *TokenInfoVerifier {
	return &TokenInfoVerifier{
		audience: audience,
		endpoint: endpoint,
		client:   &http.Client{Timeout: time.Second},
	}
}

func tokenInfoServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTokenInfoVerifier_Valid(t *testing.T) {
	srv := tokenInfoServer(t, http.StatusOK,
		`{"email":"b@x.com","name":"B","picture":"https://p.example/b.png","email_verified":"true","sub":"google-sub-1","aud":"client-123"}`)
	v := newTestVerifier("client-123", srv.URL)

	claims, err := v.Verify(context.Background(), "some-id-token")
	require.NoError(t, err)
	assert.Equal(t, "b@x.com", claims.Email)
	assert.Equal(t, "B", claims.Name)
	assert.Equal(t, "https://p.example/b.png", claims.Picture)
	assert.Equal(t, "google-sub-1", claims.Subject)
}

func TestTokenInfoVerifier_AudienceMismatch(t *testing.T) {
	srv := tokenInfoServer(t, http.StatusOK,
		`{"email":"b@x.com","email_verified":"true","sub":"s","aud":"someone-elses-app"}`)
	v := newTestVerifier("client-123", srv.URL)

	_, err := v.Verify(context.Background(), "some-id-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenInfoVerifier_RejectedToken(t *testing.T) {
	srv := tokenInfoServer(t, http.StatusBadRequest, `{"error":"invalid_token"}`)
	v := newTestVerifier("client-123", srv.URL)

	_, err := v.Verify(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenInfoVerifier_UnverifiedEmail(t *testing.T) {
	srv := tokenInfoServer(t, http.StatusOK,
		`{"email":"b@x.com","email_verified":"false","sub":"s","aud":"client-123"}`)
	v := newTestVerifier("client-123", srv.URL)

	_, err := v.Verify(context.Background(), "some-id-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenInfoVerifier_AuthorityUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	v := newTestVerifier("client-123", srv.URL)

	_, err := v.Verify(context.Background(), "some-id-token")
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}
