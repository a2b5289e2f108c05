package handlers

import (
	"errors"
	"net/http"
	"strings"

	"wathiq/internal/gateway"
	"wathiq/internal/models"
	"wathiq/internal/password"
	"wathiq/internal/validation"
)

// TrustHandler serves the text-based trust checks: news verification, URL
// scanning and password strength.
type TrustHandler struct {
	gateway   gateway.Gateway
	evaluator *password.Evaluator
}

// NewTrustHandler creates a new trust handler
func NewTrustHandler(gw gateway.Gateway, evaluator *password.Evaluator) *TrustHandler {
	return &TrustHandler{
		gateway:   gw,
		evaluator: evaluator,
	}
}

type newsRequest struct {
	Query string `json:"query"`
}

// VerifyNews fact-checks a headline or article text
func (h *TrustHandler) VerifyNews(w http.ResponseWriter, r *http.Request) {
	var req newsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		respondWithError(w, http.StatusBadRequest, "news text is required", nil)
		return
	}

	result, err := h.gateway.VerifyNews(r.Context(), req.Query)
	if err != nil {
		if errors.Is(err, gateway.ErrNotConfigured) {
			respondWithError(w, http.StatusServiceUnavailable, "AI features are not available", nil)
			return
		}
		respondWithError(w, http.StatusBadGateway, "failed to verify news, please try again", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

type urlRequest struct {
	URL string `json:"url"`
}

// AnalyzeURL assesses a URL for threats. The URL is validated before any
// network or AI work happens.
func (h *TrustHandler) AnalyzeURL(w http.ResponseWriter, r *http.Request) {
	var req urlRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := validation.ValidateURL(req.URL); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	result, err := h.gateway.AnalyzeURL(r.Context(), strings.TrimSpace(req.URL))
	if err != nil {
		if errors.Is(err, gateway.ErrNotConfigured) {
			respondWithError(w, http.StatusServiceUnavailable, "AI features are not available", nil)
			return
		}
		respondWithError(w, http.StatusBadGateway, "failed to analyze URL, please try again", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

type passwordRequest struct {
	Password string `json:"password"`
}

// CheckPassword analyzes a candidate password's strength. The password is
// analyzed in memory only and never stored or logged.
func (h *TrustHandler) CheckPassword(w http.ResponseWriter, r *http.Request) {
	var req passwordRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.evaluator.Evaluate(req.Password)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "password analysis is temporarily unavailable", err)
		return
	}
	if result == nil {
		// Empty input: nothing to analyze
		respondJSON(w, http.StatusOK, map[string]*models.PasswordAnalysisResult{"result": nil})
		return
	}

	respondJSON(w, http.StatusOK, result)
}
