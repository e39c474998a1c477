package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/mertkara/recipe-box/internal/handler"
	"github.com/mertkara/recipe-box/internal/repository/sqlite"
	"github.com/mertkara/recipe-box/internal/service"
)

const testJWTSecret = "test-secret-for-handler-tests!!!"

func newTestServices(t *testing.T) (*service.TokenService, *service.AuthService, *service.RecipeService, *service.CommentService) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	tokens := service.NewTokenService(testJWTSecret)
	recipes := service.NewRecipeService(db.Recipes(), db.Users())
	return tokens,
		service.NewAuthService(db.Users(), tokens, 4),
		recipes,
		service.NewCommentService(db.Comments(), recipes)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens, auth, _, _ := newTestServices(t)
	ctx := context.Background()

	payload, err := auth.Signup(ctx, "valid@example.com", "Valid User", "password123", "password123")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	var gotSubject string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject = handler.SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+payload.Token)
	w := httptest.NewRecorder()

	handler.RequireAuth(tokens, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotSubject == "" {
		t.Fatal("expected subject to be injected into context")
	}
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	tokens, _, _, _ := newTestServices(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()

	handler.RequireAuth(tokens, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	tokens, _, _, _ := newTestServices(t)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid.jwt.token")
	w := httptest.NewRecorder()

	handler.RequireAuth(tokens, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestRequireAuth_TamperedToken(t *testing.T) {
	tokens, auth, _, _ := newTestServices(t)
	ctx := context.Background()

	payload, err := auth.Signup(ctx, "tamper@example.com", "Tamper", "password123", "password123")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	tampered := payload.Token[:len(payload.Token)-1] + "X"

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tampered)
	w := httptest.NewRecorder()

	handler.RequireAuth(tokens, inner).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestOptionalAuth_WithToken(t *testing.T) {
	tokens, auth, _, _ := newTestServices(t)
	ctx := context.Background()

	payload, err := auth.Signup(ctx, "opt@example.com", "Optional", "password123", "password123")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	var gotSubject string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject = handler.SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+payload.Token)
	w := httptest.NewRecorder()

	handler.OptionalAuth(tokens, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotSubject == "" {
		t.Fatal("expected subject in context")
	}
}

func TestOptionalAuth_WithoutToken(t *testing.T) {
	tokens, _, _, _ := newTestServices(t)

	var called bool
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if subject := handler.SubjectFromContext(r.Context()); subject != "" {
			t.Fatalf("expected empty subject for unauthenticated request, got %q", subject)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.OptionalAuth(tokens, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !called {
		t.Fatal("expected inner handler to run")
	}
}
