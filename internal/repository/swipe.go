package repository

import (
	"context"
	"fmt"

	"matrimonial-backend/internal/models"
)

// SwipeRepository handles database operations for the swipe ledger
type SwipeRepository struct {
	db DB
}

// NewSwipeRepository creates a new swipe repository
func NewSwipeRepository(db DB) *SwipeRepository {
	return &SwipeRepository{db: db}
}

// Create appends a swipe record. The ledger carries no uniqueness
// constraint, so repeated swipes on the same target each get their own row.
func (r *SwipeRepository) Create(ctx context.Context, swipe *models.Swipe) error {
	query := `
		INSERT INTO swipes (id, user_id, target_id, action, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query,
		swipe.ID, swipe.UserID, swipe.TargetID, swipe.Action, swipe.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record swipe: %w", err)
	}
	return nil
}

// HasLike reports whether userID has ever recorded a like on targetID.
func (r *SwipeRepository) HasLike(ctx context.Context, userID, targetID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM swipes WHERE user_id = $1 AND target_id = $2 AND action = $3)`
	var exists bool
	err := r.db.QueryRow(ctx, query, userID, targetID, models.ActionLike).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check reciprocal like: %w", err)
	}
	return exists, nil
}

// ListTargetIDs returns the distinct ids the user has swiped on, any action.
func (r *SwipeRepository) ListTargetIDs(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT DISTINCT target_id FROM swipes WHERE user_id = $1`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list swiped targets: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan target id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating swiped targets: %w", err)
	}
	return ids, nil
}
