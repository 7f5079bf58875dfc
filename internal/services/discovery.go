package services

import (
	"context"

	"matrimonial-backend/internal/models"
)

// Ranker orders discovery candidates. The default keeps store order; a
// preference-based ranking can be dropped in without touching the filter.
type Ranker interface {
	Rank(candidates []*models.User) []*models.User
}

// StoreOrderRanker keeps candidates in the order the store returned them
type StoreOrderRanker struct{}

// Rank returns the candidates unchanged
func (StoreOrderRanker) Rank(candidates []*models.User) []*models.User {
	return candidates
}

// DiscoveryService computes the candidate set for a requester
type DiscoveryService struct {
	users     UserStore
	swipes    SwipeStore
	scanLimit int
	ranker    Ranker
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(users UserStore, swipes SwipeStore, scanLimit int, ranker Ranker) *DiscoveryService {
	if ranker == nil {
		ranker = StoreOrderRanker{}
	}
	return &DiscoveryService{
		users:     users,
		swipes:    swipes,
		scanLimit: scanLimit,
		ranker:    ranker,
	}
}

// Discover returns candidates the requester has not swiped on, excluding the
// requester themselves. The scan limit caps how many user records are read
// before filtering, so a page can come back short even when more eligible
// candidates exist past the cap.
func (s *DiscoveryService) Discover(ctx context.Context, requesterID string) ([]*models.User, error) {
	swiped, err := s.swipes.ListTargetIDs(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]struct{}, len(swiped)+1)
	for _, id := range swiped {
		excluded[id] = struct{}{}
	}
	excluded[requesterID] = struct{}{}

	scanned, err := s.users.List(ctx, s.scanLimit)
	if err != nil {
		return nil, err
	}

	candidates := make([]*models.User, 0, len(scanned))
	for _, u := range scanned {
		if _, ok := excluded[u.ID]; ok {
			continue
		}
		candidates = append(candidates, u)
	}

	return s.ranker.Rank(candidates), nil
}
