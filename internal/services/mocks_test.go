package services

import (
	"context"
	"time"

	"matrimonial-backend/internal/models"
	"matrimonial-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserStore is a mock implementation of UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) List(ctx context.Context, limit int) ([]*models.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserStore) UpdateProfile(ctx context.Context, userID string, patch *repository.ProfilePatch) error {
	args := m.Called(ctx, userID, patch)
	return args.Error(0)
}

func (m *MockUserStore) AppendPhoto(ctx context.Context, userID, url string) error {
	args := m.Called(ctx, userID, url)
	return args.Error(0)
}

func (m *MockUserStore) UpdatePushToken(ctx context.Context, userID string, pushToken *string) error {
	args := m.Called(ctx, userID, pushToken)
	return args.Error(0)
}

// MockSessionStore is a mock implementation of SessionStore
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Create(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) GetValid(ctx context.Context, token string, now time.Time) (*models.Session, error) {
	args := m.Called(ctx, token, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

// MockSwipeStore is a mock implementation of SwipeStore
type MockSwipeStore struct {
	mock.Mock
}

func (m *MockSwipeStore) Create(ctx context.Context, swipe *models.Swipe) error {
	args := m.Called(ctx, swipe)
	return args.Error(0)
}

func (m *MockSwipeStore) HasLike(ctx context.Context, userID, targetID string) (bool, error) {
	args := m.Called(ctx, userID, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSwipeStore) ListTargetIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockMatchStore is a mock implementation of MatchStore
type MockMatchStore struct {
	mock.Mock
}

func (m *MockMatchStore) CreateIfAbsent(ctx context.Context, match *models.Match) (bool, error) {
	args := m.Called(ctx, match)
	return args.Bool(0), args.Error(1)
}

func (m *MockMatchStore) ExistsForPair(ctx context.Context, a, b string) (bool, error) {
	args := m.Called(ctx, a, b)
	return args.Bool(0), args.Error(1)
}

func (m *MockMatchStore) ListByUser(ctx context.Context, userID string) ([]*models.Match, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Match), args.Error(1)
}

// recordingNotifier counts MatchCreated calls
type recordingNotifier struct {
	matches []*models.Match
}

func (n *recordingNotifier) MatchCreated(_ context.Context, match *models.Match) {
	n.matches = append(n.matches, match)
}
