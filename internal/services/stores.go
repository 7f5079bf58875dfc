package services

import (
	"context"
	"time"

	"matrimonial-backend/internal/models"
	"matrimonial-backend/internal/repository"
)

// Store interfaces consumed by the services. The pgx-backed repositories
// implement them; tests substitute mocks.

// UserStore persists user records
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, limit int) ([]*models.User, error)
	UpdateProfile(ctx context.Context, userID string, patch *repository.ProfilePatch) error
	AppendPhoto(ctx context.Context, userID, url string) error
	UpdatePushToken(ctx context.Context, userID string, pushToken *string) error
}

// SessionStore persists bearer tokens
type SessionStore interface {
	Create(ctx context.Context, session *models.Session) error
	GetValid(ctx context.Context, token string, now time.Time) (*models.Session, error)
}

// SwipeStore persists the append-only swipe ledger
type SwipeStore interface {
	Create(ctx context.Context, swipe *models.Swipe) error
	HasLike(ctx context.Context, userID, targetID string) (bool, error)
	ListTargetIDs(ctx context.Context, userID string) ([]string, error)
}

// MatchStore persists the deduplicated match set
type MatchStore interface {
	CreateIfAbsent(ctx context.Context, match *models.Match) (bool, error)
	ExistsForPair(ctx context.Context, a, b string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Match, error)
}
