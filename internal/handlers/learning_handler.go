package handlers

import (
	"errors"
	"net/http"

	"wathiq/internal/gateway"
	"wathiq/internal/models"
	"wathiq/internal/progress"
	"wathiq/internal/service"
)

// LearningHandler serves the learning path endpoints
type LearningHandler struct {
	learning *service.LearningService
	progress *progress.Manager
}

// NewLearningHandler creates a new learning handler
func NewLearningHandler(learning *service.LearningService, progressManager *progress.Manager) *LearningHandler {
	return &LearningHandler{
		learning: learning,
		progress: progressManager,
	}
}

// ListModules returns the learning path with per-user state
func (h *LearningHandler) ListModules(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	respondJSON(w, http.StatusOK, map[string][]models.LearningModule{
		"modules": h.learning.Modules(user),
	})
}

// StartModule returns a module's lesson content, generating it on first use
func (h *LearningHandler) StartModule(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	moduleID := r.PathValue("id")

	content, err := h.learning.StartModule(r.Context(), user, moduleID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrModuleNotFound):
			respondWithError(w, http.StatusNotFound, "learning module not found", nil)
		case errors.Is(err, service.ErrModuleLocked):
			respondWithError(w, http.StatusForbidden, "complete the previous modules first", nil)
		case errors.Is(err, gateway.ErrNotConfigured):
			respondWithError(w, http.StatusServiceUnavailable, "AI features are not available", nil)
		default:
			respondWithError(w, http.StatusBadGateway, "failed to generate lesson, please try again", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, content)
}

// CompleteModule marks a module complete and returns the updated snapshot
func (h *LearningHandler) CompleteModule(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	moduleID := r.PathValue("id")

	awarded, err := h.learning.CompleteModule(user, moduleID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrModuleNotFound):
			respondWithError(w, http.StatusNotFound, "learning module not found", nil)
		case errors.Is(err, service.ErrModuleLocked):
			respondWithError(w, http.StatusForbidden, "complete the previous modules first", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "failed to complete module", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"points_awarded": awarded,
		"progress":       h.progress.StoreFor(user).Snapshot(),
	})
}
