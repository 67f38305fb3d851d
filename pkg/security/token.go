package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single verification failure surfaced to callers.
// Malformed structure, signature mismatch, expiry and algorithm mismatch
// are deliberately indistinguishable.
var ErrInvalidToken = errors.New("invalid token")

// defaultTokenTTL applies when Issue is called without an explicit ttl.
// Current call sites always pass one; this is the documented fallback.
const defaultTokenTTL = 15 * time.Minute

// TokenIssuer creates and validates signed, time-bound bearer tokens.
// The secret and algorithm are fixed at construction.
type TokenIssuer struct {
	secret []byte
	method jwt.SigningMethod
}

// NewTokenIssuer builds an issuer for the given shared secret and HMAC
// algorithm name (HS256, HS384, HS512). An empty secret is rejected so a
// misconfigured process cannot sign tokens with a blank key.
func NewTokenIssuer(secret, algorithm string) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("signing secret must not be empty")
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("algorithm %q is not an HMAC scheme", algorithm)
	}
	return &TokenIssuer{secret: []byte(secret), method: method}, nil
}

// Issue signs the given claims plus a computed absolute expiration of
// now+ttl. The input map is not mutated.
func (i *TokenIssuer) Issue(claims jwt.MapClaims, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	now := time.Now()
	toEncode := jwt.MapClaims{}
	for k, v := range claims {
		toEncode[k] = v
	}
	toEncode["exp"] = now.Add(ttl).Unix()
	toEncode["iat"] = now.Unix()

	token := jwt.NewWithClaims(i.method, toEncode)
	return token.SignedString(i.secret)
}

// Verify decodes the token and checks signature, expiration and signing
// algorithm in one step. Any failure collapses to ErrInvalidToken.
func (i *TokenIssuer) Verify(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{i.method.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
