package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"matrimonial-backend/internal/middleware"
	"matrimonial-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSwipeService is a mock implementation of SwipeService
type MockSwipeService struct {
	mock.Mock
}

func (m *MockSwipeService) Swipe(ctx context.Context, actorID, targetID, action string) (bool, error) {
	args := m.Called(ctx, actorID, targetID, action)
	return args.Bool(0), args.Error(1)
}

func (m *MockSwipeService) Matches(ctx context.Context, userID string) ([]*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func doSwipe(t *testing.T, service SwipeService, userID, body string) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewSwipeHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/swipe", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	rec := httptest.NewRecorder()

	handler.Swipe(rec, req)
	return rec
}

func TestSwipeEndpoint(t *testing.T) {
	t.Run("PassReturnsNoMatch", func(t *testing.T) {
		service := new(MockSwipeService)
		service.On("Swipe", mock.Anything, "me", "other", "pass").Return(false, nil).Once()

		rec := doSwipe(t, service, "me", `{"target_id":"other","action":"pass"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]bool
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp["ok"])
		assert.False(t, resp["match"])
		service.AssertExpectations(t)
	})

	t.Run("MutualLikeReturnsMatch", func(t *testing.T) {
		service := new(MockSwipeService)
		service.On("Swipe", mock.Anything, "me", "other", "like").Return(true, nil).Once()

		rec := doSwipe(t, service, "me", `{"target_id":"other","action":"like"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]bool
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp["ok"])
		assert.True(t, resp["match"])
	})

	t.Run("BadActionIs400", func(t *testing.T) {
		service := new(MockSwipeService)
		service.On("Swipe", mock.Anything, "me", "other", "superlike").
			Return(false, models.ErrInvalidArgument).Once()

		rec := doSwipe(t, service, "me", `{"target_id":"other","action":"superlike"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MalformedBodyIs400", func(t *testing.T) {
		service := new(MockSwipeService)

		rec := doSwipe(t, service, "me", `{not json`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		service.AssertNotCalled(t, "Swipe", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestMatchesEndpoint(t *testing.T) {
	service := new(MockSwipeService)
	service.On("Matches", mock.Anything, "me").Return([]*models.User{
		{ID: "p1", Name: "One", PasswordHash: "secret-hash"},
	}, nil).Once()

	handler := NewSwipeHandler(service)
	req := httptest.NewRequest(http.MethodGet, "/matches", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), "me"))
	rec := httptest.NewRecorder()

	handler.Matches(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Matches []map[string]any `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "p1", resp.Matches[0]["id"])
	// Credential hash never serializes.
	assert.NotContains(t, resp.Matches[0], "password_hash")
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}
