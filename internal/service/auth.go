package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"golang.org/x/crypto/bcrypt"

	"github.com/mertkara/recipe-box/internal/domain"
)

// AuthPayload is what a successful signup or login returns: a session
// token and the user's display name.
type AuthPayload struct {
	Token string
	Name  string
}

// AuthService handles account creation and credential verification.
type AuthService struct {
	users      domain.UserRepository
	tokens     *TokenService
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(users domain.UserRepository, tokens *TokenService, bcryptCost int) *AuthService {
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Signup creates a new account and returns a session token for it.
// The email must not already be registered.
func (s *AuthService) Signup(ctx context.Context, email, name, password, confirmPassword string) (*AuthPayload, error) {
	if email == "" || name == "" || password == "" {
		return nil, fmt.Errorf("%w: email, name, and password are required", domain.ErrInvalidInput)
	}
	if password != confirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", domain.ErrInvalidInput)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", domain.ErrInvalidInput)
	}

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrDuplicateUser
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("look up email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The unique constraint catches signups that race the lookup.
		if errors.Is(err, domain.ErrDuplicateUser) {
			return nil, domain.ErrDuplicateUser
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID, user.Name)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthPayload{Token: token, Name: user.Name}, nil
}

// Login verifies credentials and returns a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthPayload, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoSuchAccount
		}
		return nil, fmt.Errorf("look up email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Name)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AuthPayload{Token: token, Name: user.Name}, nil
}

// GetUserByID retrieves a user by their id.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}
