package handlers

import (
	"errors"
	"io"
	"net/http"

	"wathiq/internal/gateway"
	"wathiq/internal/models"
	"wathiq/internal/service"
	"wathiq/internal/validation"
)

// ScanHandler serves media scanning, scan history and scan reports
type ScanHandler struct {
	scans         *service.ScanService
	email         *service.EmailService
	uploadMaxSize int64
}

// NewScanHandler creates a new scan handler
func NewScanHandler(scans *service.ScanService, email *service.EmailService, uploadMaxSize int64) *ScanHandler {
	return &ScanHandler{
		scans:         scans,
		email:         email,
		uploadMaxSize: uploadMaxSize,
	}
}

// Scan analyzes an uploaded media file (multipart field "file")
func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.uploadMaxSize)
	if err := r.ParseMultipartForm(h.uploadMaxSize); err != nil {
		respondWithError(w, http.StatusRequestEntityTooLarge, "file is too large", err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "file is required", err)
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	fileType, err := validation.ValidateMediaType(mimeType)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "unsupported file type, upload an image, video or audio file", nil)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "failed to read uploaded file", err)
		return
	}

	result, err := h.scans.Scan(r.Context(), user, header.Filename, fileType, mimeType, data)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScanSuperseded):
			// A newer upload replaced this one; its result is discarded
			respondWithError(w, http.StatusConflict, "scan superseded by a newer upload", nil)
		case errors.Is(err, gateway.ErrNotConfigured):
			respondWithError(w, http.StatusServiceUnavailable, "AI features are not available", nil)
		default:
			respondWithError(w, http.StatusBadGateway, "failed to analyze the file, please try again", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// History lists the user's past scans, optionally filtered by ?type=
func (h *ScanHandler) History(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())

	fileType := models.FileType(r.URL.Query().Get("type"))
	switch fileType {
	case "", models.FileTypeImage, models.FileTypeVideo, models.FileTypeAudio:
	default:
		respondWithError(w, http.StatusBadRequest, "unknown scan type filter", nil)
		return
	}

	scans, err := h.scans.History(user, fileType, 0)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load scan history", err)
		return
	}
	if scans == nil {
		scans = []models.ScanResult{}
	}

	respondJSON(w, http.StatusOK, map[string][]models.ScanResult{"scans": scans})
}

// EmailReport sends a past scan's findings to the user's email address
func (h *ScanHandler) EmailReport(w http.ResponseWriter, r *http.Request) {
	user := GetUserFromContext(r.Context())
	scanID := r.PathValue("id")

	if !h.email.IsEnabled() {
		respondWithError(w, http.StatusServiceUnavailable, "email delivery is not available", nil)
		return
	}

	scan, err := h.scans.ScanByID(user, scanID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to load scan", err)
		return
	}
	if scan == nil {
		respondWithError(w, http.StatusNotFound, "scan not found", nil)
		return
	}

	if err := h.email.SendScanReport(r.Context(), user.Email, user.Name, scan); err != nil {
		respondWithError(w, http.StatusBadGateway, "failed to send report email", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}
