// Package googleauth verifies Google-issued ID tokens and maps them to a
// transient identity claim. Two strategies are provided: Firebase Admin
// certificate verification and Google's tokeninfo endpoint. Results are
// never cached; every call re-verifies.
package googleauth

import (
	"context"
	"errors"
)

var (
	// ErrInvalidToken means the authority reports the token as invalid,
	// expired, or issued for a different audience.
	ErrInvalidToken = errors.New("invalid google token")
	// ErrServiceUnavailable means the identity authority could not be
	// reached. Retryable by the client, unlike ErrInvalidToken.
	ErrServiceUnavailable = errors.New("google identity service unavailable")
)

// Claims is the identity asserted by Google for a verified token. It is
// transient: used only to locate or provision a local user by email.
type Claims struct {
	Email   string
	Name    string
	Picture string
	Subject string
}

// Verifier validates an externally issued ID token.
type Verifier interface {
	Verify(ctx context.Context, idToken string) (*Claims, error)
}
