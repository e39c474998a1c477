package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/mertkara/recipe-box/internal/domain"
	"github.com/mertkara/recipe-box/internal/service"
)

type contextKey string

const subjectContextKey contextKey = "subject"

// SubjectFromContext extracts the authenticated user's id from the
// request context. Returns "" if no user is authenticated.
func SubjectFromContext(ctx context.Context) string {
	subject, _ := ctx.Value(subjectContextKey).(string)
	return subject
}

// RequireAuth protects routes requiring authentication. It reads the
// bearer token from the Authorization header, decodes it, and injects
// the subject id into the request context. Requests without a valid
// token get a 401 and never reach the inner handler. The guard touches
// no persistent state.
func RequireAuth(tokens *service.TokenService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, err := authenticateRequest(r, tokens)
		if err != nil {
			writeError(w, http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
			return
		}

		ctx := context.WithValue(r.Context(), subjectContextKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth attempts to authenticate but does not block
// unauthenticated requests. If a valid token is present, the subject is
// injected into context; otherwise the request proceeds without one.
func OptionalAuth(tokens *service.TokenService, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if subject, err := authenticateRequest(r, tokens); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), subjectContextKey, subject))
		}
		next.ServeHTTP(w, r)
	})
}

func authenticateRequest(r *http.Request, tokens *service.TokenService) (string, error) {
	header := r.Header.Get("Authorization")
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return "", domain.ErrUnauthenticated
	}

	claims, err := tokens.Decode(raw)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// SecurityHeaders sets baseline security headers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
