package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"matrimonial-backend/internal/models"

	"github.com/google/uuid"
)

// MatchNotifier is told about freshly created matches. Delivery is
// best-effort; implementations log their own failures.
type MatchNotifier interface {
	MatchCreated(ctx context.Context, match *models.Match)
}

// SwipeService records swipe actions and derives mutual matches from the
// ledger.
type SwipeService struct {
	swipes    SwipeStore
	matches   MatchStore
	users     UserStore
	notifiers []MatchNotifier
}

// NewSwipeService creates a new swipe service
func NewSwipeService(swipes SwipeStore, matches MatchStore, users UserStore, notifiers ...MatchNotifier) *SwipeService {
	return &SwipeService{
		swipes:    swipes,
		matches:   matches,
		users:     users,
		notifiers: notifiers,
	}
}

// Swipe appends a swipe record and evaluates it for a mutual match.
//
// A pass never matches and never blocks a later like from either side. A
// like matches exactly when the target has a recorded like on the actor; the
// match row is keyed by the canonical pair, so the result is true whether
// this call created the row or a previous one did.
func (s *SwipeService) Swipe(ctx context.Context, actorID, targetID, action string) (bool, error) {
	if action != models.ActionLike && action != models.ActionPass {
		return false, fmt.Errorf("invalid action %q: %w", action, models.ErrInvalidArgument)
	}
	if targetID == "" {
		return false, fmt.Errorf("target_id is required: %w", models.ErrInvalidArgument)
	}
	if targetID == actorID {
		return false, fmt.Errorf("cannot swipe on yourself: %w", models.ErrInvalidArgument)
	}

	swipe := &models.Swipe{
		ID:        uuid.New().String(),
		UserID:    actorID,
		TargetID:  targetID,
		Action:    action,
		CreatedAt: time.Now(),
	}
	if err := s.swipes.Create(ctx, swipe); err != nil {
		return false, err
	}

	if action == models.ActionPass {
		return false, nil
	}

	reciprocal, err := s.swipes.HasLike(ctx, targetID, actorID)
	if err != nil {
		return false, err
	}
	if !reciprocal {
		return false, nil
	}

	match := &models.Match{
		ID:        uuid.New().String(),
		UserA:     actorID,
		UserB:     targetID,
		CreatedAt: time.Now(),
	}
	created, err := s.matches.CreateIfAbsent(ctx, match)
	if err != nil {
		return false, err
	}

	if created {
		for _, n := range s.notifiers {
			n.MatchCreated(ctx, match)
		}
	}

	// Mutual like means matched, whether this call created the row or an
	// earlier one did.
	return true, nil
}

// Matches returns the profiles of everyone the user has matched with.
// Partners whose user record has since disappeared are skipped.
func (s *SwipeService) Matches(ctx context.Context, userID string) ([]*models.User, error) {
	matches, err := s.matches.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	partners := make([]*models.User, 0, len(matches))
	for _, m := range matches {
		partnerID := m.UserA
		if partnerID == userID {
			partnerID = m.UserB
		}

		partner, err := s.users.GetByID(ctx, partnerID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				continue
			}
			return nil, err
		}
		partners = append(partners, partner)
	}
	return partners, nil
}
