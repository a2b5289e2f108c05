package handlers

import (
	"net/http"

	"wathiq/internal/progress"
)

// ProfileHandler serves the user's progress snapshot and profile updates
type ProfileHandler struct {
	progress *progress.Manager
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(progressManager *progress.Manager) *ProfileHandler {
	return &ProfileHandler{progress: progressManager}
}

// GetProfile returns the user's profile, completed modules and usage stats
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	snapshot := h.progress.StoreFor(user).Snapshot()
	respondJSON(w, http.StatusOK, snapshot)
}

type avatarRequest struct {
	ProfilePhotoBase64 string `json:"profile_photo_base64"`
}

// UpdateAvatar replaces the user's profile photo
func (h *ProfileHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	var req avatarRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.ProfilePhotoBase64 == "" {
		respondWithError(w, http.StatusBadRequest, "profile photo is required", nil)
		return
	}

	store := h.progress.StoreFor(user)
	store.UpdateAvatar(req.ProfilePhotoBase64)
	respondJSON(w, http.StatusOK, store.Snapshot())
}
