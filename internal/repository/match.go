package repository

import (
	"context"
	"fmt"

	"matrimonial-backend/internal/models"
)

// MatchRepository handles database operations for matches
type MatchRepository struct {
	db DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// CreateIfAbsent inserts a match for the canonical pair unless one already
// exists. The unique constraint on (user_a, user_b) makes concurrent inserts
// for the same pair collapse into one row; the return value reports whether
// this call created it.
func (r *MatchRepository) CreateIfAbsent(ctx context.Context, match *models.Match) (bool, error) {
	match.UserA, match.UserB = models.CanonicalPair(match.UserA, match.UserB)

	query := `
		INSERT INTO matches (id, user_a, user_b, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_a, user_b) DO NOTHING
	`
	result, err := r.db.Exec(ctx, query,
		match.ID, match.UserA, match.UserB, match.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to create match: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// ExistsForPair reports whether a match exists for the unordered pair.
func (r *MatchRepository) ExistsForPair(ctx context.Context, a, b string) (bool, error) {
	a, b = models.CanonicalPair(a, b)
	query := `SELECT EXISTS(SELECT 1 FROM matches WHERE user_a = $1 AND user_b = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, a, b).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check match existence: %w", err)
	}
	return exists, nil
}

// ListByUser returns all matches the user participates in.
func (r *MatchRepository) ListByUser(ctx context.Context, userID string) ([]*models.Match, error) {
	query := `
		SELECT id, user_a, user_b, created_at
		FROM matches
		WHERE user_a = $1 OR user_b = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []*models.Match
	for rows.Next() {
		var match models.Match
		if err := rows.Scan(&match.ID, &match.UserA, &match.UserB, &match.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, &match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating matches: %w", err)
	}
	return matches, nil
}
