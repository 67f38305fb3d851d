package googleauth

import (
	"context"
	"errors"
	"net"
	"net/url"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseVerifier validates ID tokens locally against Google's signing
// certificates via the Firebase Admin SDK. The SDK enforces that the
// token's audience matches the configured project.
type FirebaseVerifier struct {
	client *fbauth.Client
}

// NewFirebaseVerifier builds a verifier from a service account JSON blob.
// With an empty blob the SDK falls back to application default credentials.
func NewFirebaseVerifier(ctx context.Context, credentialsJSON string) (*FirebaseVerifier, error) {
	var opts []option.ClientOption
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, err
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}

	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, idToken string) (*Claims, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		if isNetworkErr(ctx, err) {
			return nil, ErrServiceUnavailable
		}
		return nil, ErrInvalidToken
	}

	claims := &Claims{Subject: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		claims.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		claims.Picture = picture
	}

	if claims.Email == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// isNetworkErr separates "could not reach the authority" from "the
// authority rejected the token". Certificate refresh is the only network
// dependency of local verification.
func isNetworkErr(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
