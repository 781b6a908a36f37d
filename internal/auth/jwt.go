package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is the lifetime of every issued token.
const TokenValidity = 7 * 24 * time.Hour

// Token errors carry the exact messages returned to clients.
var (
	ErrMissingToken = errors.New("Token manquant")
	ErrExpiredToken = errors.New("Token expiré")
	ErrInvalidToken = errors.New("Token invalide")
)

// Principal is the identity extracted from a verified token. It is trusted
// as-is for the token's lifetime; there is no per-request user lookup.
type Principal struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
}

type Claims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
}

// TokenAuthenticator signs and verifies identity tokens with a single
// process-wide secret handed to it at construction.
type TokenAuthenticator struct {
	secret []byte
}

func NewTokenAuthenticator(secret string) (*TokenAuthenticator, error) {
	if secret == "" {
		return nil, errors.New("JWT secret is not set")
	}
	return &TokenAuthenticator{secret: []byte(secret)}, nil
}

// Issue signs a token embedding the user's identity, valid for TokenValidity.
func (a *TokenAuthenticator) Issue(userID uint, email string) (string, error) {
	return a.issue(userID, email, TokenValidity)
}

func (a *TokenAuthenticator) issue(userID uint, email string, validity time.Duration) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validity)),
		},
		UserID: userID,
		Email:  email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Verify checks signature and expiry and returns the embedded principal.
func (a *TokenAuthenticator) Verify(tokenString string) (Principal, error) {
	if tokenString == "" {
		return Principal{}, ErrMissingToken
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Principal{}, ErrExpiredToken
		}
		return Principal{}, ErrInvalidToken
	}

	if !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	return Principal{UserID: claims.UserID, Email: claims.Email}, nil
}
