package handlers

import (
	"context"
	"net/http"

	"matrimonial-backend/internal/middleware"
	"matrimonial-backend/internal/models"

	"github.com/rs/zerolog/log"
)

// DiscoveryService is the part of the discovery service the handler consumes
type DiscoveryService interface {
	Discover(ctx context.Context, requesterID string) ([]*models.User, error)
}

// DiscoverHandler handles candidate discovery requests
type DiscoverHandler struct {
	discovery DiscoveryService
}

// NewDiscoverHandler creates a new discover handler
func NewDiscoverHandler(discovery DiscoveryService) *DiscoverHandler {
	return &DiscoverHandler{discovery: discovery}
}

// Discover handles GET /discover
func (h *DiscoverHandler) Discover(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	profiles, err := h.discovery.Discover(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to discover candidates")
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"profiles": profiles})
}
