package services

import (
	"context"

	"matrimonial-backend/internal/models"
	"matrimonial-backend/internal/repository"
)

// ProfileService handles profile reads and partial updates
type ProfileService struct {
	users UserStore
}

// NewProfileService creates a new profile service
func NewProfileService(users UserStore) *ProfileService {
	return &ProfileService{users: users}
}

// Get retrieves a user profile by id
func (s *ProfileService) Get(ctx context.Context, userID string) (*models.User, error) {
	return s.users.GetByID(ctx, userID)
}

// Update applies a partial profile update. An empty patch performs no write
// and reports updated=false.
func (s *ProfileService) Update(ctx context.Context, userID string, patch *repository.ProfilePatch) (bool, error) {
	if patch.IsEmpty() {
		return false, nil
	}
	if err := s.users.UpdateProfile(ctx, userID, patch); err != nil {
		return false, err
	}
	return true, nil
}

// SetPushToken stores or replaces the user's APNs device token
func (s *ProfileService) SetPushToken(ctx context.Context, userID string, pushToken *string) error {
	return s.users.UpdatePushToken(ctx, userID, pushToken)
}
