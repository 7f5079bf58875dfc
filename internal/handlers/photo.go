package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"matrimonial-backend/internal/middleware"
	"matrimonial-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// PhotoUploader is the part of the photo service the handler consumes
type PhotoUploader interface {
	PresignUpload(ctx context.Context, userID, filename, contentType string) (*services.UploadResponse, error)
}

// PhotoHandler handles profile photo uploads
type PhotoHandler struct {
	photos PhotoUploader
}

// NewPhotoHandler creates a new photo handler
func NewPhotoHandler(photos PhotoUploader) *PhotoHandler {
	return &PhotoHandler{photos: photos}
}

// UploadRequest represents a request for a pre-signed upload URL
type UploadRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

// UploadPhoto handles POST /me/photos/upload
func (h *PhotoHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	var req UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Filename == "" {
		respondError(w, "filename is required", http.StatusBadRequest)
		return
	}
	if req.ContentType == "" {
		req.ContentType = "image/jpeg"
	}

	response, err := h.photos.PresignUpload(ctx, userID, req.Filename, req.ContentType)
	if err != nil {
		log.Error().
			Err(err).
			Str("user_id", userID).
			Str("filename", req.Filename).
			Msg("Failed to generate pre-signed URL")
		respondServiceError(w, err)
		return
	}

	log.Info().
		Str("user_id", userID).
		Str("photo_url", response.PhotoURL).
		Msg("Pre-signed URL generated")

	respondJSON(w, http.StatusOK, response)
}
