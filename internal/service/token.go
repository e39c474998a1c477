package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mertkara/recipe-box/internal/domain"
)

// tokenTTL is how long an issued session token stays valid.
const tokenTTL = 24 * time.Hour

// TokenClaims is the claim set carried by a session token: the user id
// as subject plus the display name.
type TokenClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService issues and decodes signed session tokens. The signing
// key is injected at construction and held by the instance.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue produces an HS256-signed token for the given user, expiring
// one day from now.
func (s *TokenService) Issue(userID, name string) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies a token's signature and expiry and returns its
// claims. Malformed, expired, or tampered tokens all fail with
// domain.ErrInvalidToken.
func (s *TokenService) Decode(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
