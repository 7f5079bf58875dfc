package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"matrimonial-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

// SessionRepository handles database operations for sessions
type SessionRepository struct {
	db DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create stores a new session token
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (token, user_id, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query,
		session.Token, session.UserID, session.ExpiresAt, session.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetValid retrieves a session by token if it has not expired at the given
// instant. Expired or unknown tokens return models.ErrNotFound.
func (r *SessionRepository) GetValid(ctx context.Context, token string, now time.Time) (*models.Session, error) {
	query := `
		SELECT token, user_id, expires_at, created_at
		FROM sessions
		WHERE token = $1 AND expires_at > $2
	`
	var session models.Session
	err := r.db.QueryRow(ctx, query, token, now).Scan(
		&session.Token, &session.UserID, &session.ExpiresAt, &session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("session not found: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}
