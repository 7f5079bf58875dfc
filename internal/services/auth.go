package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"matrimonial-backend/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const sessionTokenBytes = 32

// AuthService handles signup, login and session validation
type AuthService struct {
	users      UserStore
	sessions   SessionStore
	sessionTTL time.Duration
	bcryptCost int
}

// NewAuthService creates a new auth service
func NewAuthService(users UserStore, sessions SessionStore, sessionTTL time.Duration, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		bcryptCost: bcryptCost,
	}
}

// Signup registers a new user. Email is normalized to lower case before the
// write, so "a@x.com" and "A@X.com" collide on the store's unique index.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required: %w", models.ErrInvalidArgument)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Interests:    []string{},
		Photos:       []string{},
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a new session token, valid for the
// configured TTL. Sessions are never revoked; they expire naturally.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return "", nil, fmt.Errorf("invalid credentials: %w", models.ErrUnauthorized)
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials: %w", models.ErrUnauthorized)
	}

	token, err := newSessionToken()
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	session := &models.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Authenticate resolves a bearer token to its user. A token is valid only
// while a matching session row exists with expires_at in the future.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	session, err := s.sessions.GetValid(ctx, token, time.Now())
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("invalid or expired token: %w", models.ErrUnauthorized)
		}
		return nil, err
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("user not found: %w", models.ErrUnauthorized)
		}
		return nil, err
	}
	return user, nil
}

// newSessionToken returns a cryptographically random URL-safe token.
func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
