package usecase

import (
	"context"
	"errors"

	authdomain "jobtrack-backend/internal/auth/domain"
	authdto "jobtrack-backend/internal/auth/dto"
)

var (
	// ErrInvalidCredentials collapses "no such user" and "wrong password"
	// into one login failure.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthenticated is the uniform bearer-token failure: missing
	// subject, bad signature, expiry and unknown user are not
	// distinguished to the caller.
	ErrUnauthenticated = errors.New("could not validate credentials")

	ErrEmailTaken         = errors.New("email already registered")
	ErrGoogleAuthDisabled = errors.New("google sign-in is not configured")

	ErrPasswordConfirmation = errors.New("new passwords do not match")
	ErrSamePassword         = errors.New("new password must differ from the current one")
	ErrWrongPassword        = errors.New("current password is incorrect")
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register provisions a local user with a hashed password
	Register(req *authdto.RegisterRequest) (*authdomain.User, error)

	// Login authenticates email+password and issues a bearer token
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// GoogleSignIn verifies a Google ID token, provisioning a local user
	// on first sign-in, and issues a long-lived bearer token
	GoogleSignIn(ctx context.Context, idToken string) (*authdto.GoogleTokenResponse, error)

	// ValidateToken resolves a bearer token to the local user it names
	ValidateToken(tokenString string) (*authdomain.User, error)

	// ChangePassword rotates the password of an authenticated user
	ChangePassword(user *authdomain.User, req *authdto.ChangePasswordRequest) error
}
