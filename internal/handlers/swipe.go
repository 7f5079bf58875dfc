package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"matrimonial-backend/internal/middleware"
	"matrimonial-backend/internal/models"

	"github.com/rs/zerolog/log"
)

// SwipeService is the part of the swipe service the handler consumes
type SwipeService interface {
	Swipe(ctx context.Context, actorID, targetID, action string) (bool, error)
	Matches(ctx context.Context, userID string) ([]*models.User, error)
}

// SwipeHandler handles swipe and match HTTP requests
type SwipeHandler struct {
	swipes SwipeService
}

// NewSwipeHandler creates a new swipe handler
func NewSwipeHandler(swipes SwipeService) *SwipeHandler {
	return &SwipeHandler{swipes: swipes}
}

// SwipeRequest represents the swipe request body
type SwipeRequest struct {
	TargetID string `json:"target_id"`
	Action   string `json:"action"`
}

// Swipe handles POST /swipe
func (h *SwipeHandler) Swipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	var req SwipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	matched, err := h.swipes.Swipe(ctx, userID, req.TargetID, req.Action)
	if err != nil {
		log.Error().
			Err(err).
			Str("user_id", userID).
			Str("target_id", req.TargetID).
			Str("action", req.Action).
			Msg("Failed to record swipe")
		respondServiceError(w, err)
		return
	}

	if matched {
		log.Info().
			Str("user_id", userID).
			Str("target_id", req.TargetID).
			Msg("Mutual match")
	}

	respondJSON(w, http.StatusOK, map[string]bool{"ok": true, "match": matched})
}

// Matches handles GET /matches
func (h *SwipeHandler) Matches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	partners, err := h.swipes.Matches(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to list matches")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"matches": partners})
}
