package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mertkara/recipe-box/internal/domain"
	"github.com/mertkara/recipe-box/internal/service"
)

const testJWTSecret = "test-secret-key-for-unit-tests!!"

func TestTokenService_RoundTrip(t *testing.T) {
	tokens := service.NewTokenService(testJWTSecret)

	token, err := tokens.Issue("user-123", "Alice")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := tokens.Decode(token)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Fatalf("expected subject user-123, got %q", claims.Subject)
	}
	if claims.Name != "Alice" {
		t.Fatalf("expected name Alice, got %q", claims.Name)
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 23*time.Hour || remaining > 24*time.Hour {
		t.Fatalf("expected expiry about one day out, got %v", remaining)
	}
}

func TestTokenService_Decode_Malformed(t *testing.T) {
	tokens := service.NewTokenService(testJWTSecret)

	for _, bad := range []string{"", "garbage", "a.b.c"} {
		if _, err := tokens.Decode(bad); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("Decode(%q): expected ErrInvalidToken, got %v", bad, err)
		}
	}
}

func TestTokenService_Decode_WrongKey(t *testing.T) {
	tokens := service.NewTokenService(testJWTSecret)
	other := service.NewTokenService("another-secret-key-entirely-here")

	token, err := other.Issue("user-123", "Mallory")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := tokens.Decode(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong key, got %v", err)
	}
}

func TestTokenService_Decode_Expired(t *testing.T) {
	tokens := service.NewTokenService(testJWTSecret)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "user-123",
		"name": "Alice",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := expired.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tokens.Decode(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenService_Decode_MissingSubject(t *testing.T) {
	tokens := service.NewTokenService(testJWTSecret)

	anonymous := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name": "Nobody",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := anonymous.SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := tokens.Decode(signed); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for missing subject, got %v", err)
	}
}
