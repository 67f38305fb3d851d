package usecase

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	authdomain "jobtrack-backend/internal/auth/domain"
	authdto "jobtrack-backend/internal/auth/dto"
	"jobtrack-backend/internal/auth/repository"
	"jobtrack-backend/pkg/config"
	"jobtrack-backend/pkg/googleauth"
	"jobtrack-backend/pkg/security"
)

// dummyHash keeps the login path constant when the email is unknown: the
// bcrypt comparison runs either way, so "no such user" and "wrong
// password" are not distinguishable by timing.
var dummyHash, _ = security.HashPassword("jobtrack-dummy-password")

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo       repository.UserRepository
	issuer         *security.TokenIssuer
	googleVerifier googleauth.Verifier
	config         *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase. googleVerifier may
// be nil when Google sign-in is not configured.
func NewAuthUsecase(userRepo repository.UserRepository, issuer *security.TokenIssuer, googleVerifier googleauth.Verifier, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo:       userRepo,
		issuer:         issuer,
		googleVerifier: googleVerifier,
		config:         cfg,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdomain.User, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:          req.Email,
		HashedPassword: hashedPassword,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	hash := dummyHash
	if user != nil {
		hash = user.HashedPassword
	}

	// An empty stored hash (Google-provisioned account) never verifies.
	if !security.CheckPasswordHash(req.Password, hash) || user == nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := u.issuer.Issue(jwt.MapClaims{"sub": user.Email}, u.config.AccessTokenExpiry)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

func (u *authUsecase) GoogleSignIn(ctx context.Context, idToken string) (*authdto.GoogleTokenResponse, error) {
	if u.googleVerifier == nil {
		return nil, ErrGoogleAuthDisabled
	}

	claims, err := u.googleVerifier.Verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	// Find or provision by email. Email is the de-duplication key, so a
	// second sign-in with the same claim resolves to the same user.
	user, err := u.userRepo.FindByEmail(claims.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &authdomain.User{
			Email:          claims.Email,
			HashedPassword: "",
		}
		if err := u.userRepo.Create(user); err != nil {
			return nil, err
		}
	}

	accessToken, err := u.issuer.Issue(jwt.MapClaims{"sub": user.Email}, u.config.GoogleTokenExpiry)
	if err != nil {
		return nil, err
	}

	return &authdto.GoogleTokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User: authdto.GoogleUserInfo{
			ID:      user.ID,
			Email:   user.Email,
			Name:    claims.Name,
			Picture: claims.Picture,
		},
	}, nil
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	claims, err := u.issuer.Verify(tokenString)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	// A valid signature does not imply a usable identity.
	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return nil, ErrUnauthenticated
	}

	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}

func (u *authUsecase) ChangePassword(user *authdomain.User, req *authdto.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmNewPassword {
		return ErrPasswordConfirmation
	}
	if !security.CheckPasswordHash(req.CurrentPassword, user.HashedPassword) {
		return ErrWrongPassword
	}
	if security.CheckPasswordHash(req.NewPassword, user.HashedPassword) {
		return ErrSamePassword
	}

	hashedPassword, err := security.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return u.userRepo.UpdatePassword(user.ID, hashedPassword)
}
