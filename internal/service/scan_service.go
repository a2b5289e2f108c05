package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"wathiq/internal/gateway"
	"wathiq/internal/models"
)

// ErrScanSuperseded marks an analysis whose result arrived after the user
// had already submitted a newer file. The result is discarded, never shown
// and never recorded.
var ErrScanSuperseded = errors.New("scan superseded by a newer submission")

// ScanStore is the slice of scan history persistence the service needs
type ScanStore interface {
	CreateScan(scan *models.ScanResult) error
	GetUserScans(userID int64, fileType models.FileType, limit int) ([]models.ScanResult, error)
	GetScanByID(userID int64, scanID string) (*models.ScanResult, error)
}

// ScanService runs media scans through the AI gateway and records results
// in scan history. Each user has one scan slot: submitting a new file bumps
// a generation counter, and an in-flight analysis whose generation is no
// longer current is dropped when it completes.
type ScanService struct {
	gateway  gateway.Gateway
	scanRepo ScanStore

	mu          sync.Mutex
	generations map[int64]uint64
}

// NewScanService creates a scan service
func NewScanService(gw gateway.Gateway, scanRepo ScanStore) *ScanService {
	return &ScanService{
		gateway:     gw,
		scanRepo:    scanRepo,
		generations: make(map[int64]uint64),
	}
}

// begin claims the user's scan slot, invalidating any in-flight analysis
func (s *ScanService) begin(userID int64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generations[userID]++
	return s.generations[userID]
}

// current reports whether a generation still owns the user's scan slot
func (s *ScanService) current(userID int64, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generations[userID] == gen
}

// Scan analyzes an uploaded media file. Audio scanning is not implemented
// yet and returns a placeholder result without a gateway call.
func (s *ScanService) Scan(ctx context.Context, user *models.User, fileName string, fileType models.FileType, mimeType string, data []byte) (*models.ScanResult, error) {
	gen := s.begin(user.ID)
	start := time.Now()

	result := &models.ScanResult{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		CreatedAt: start,
		FileName:  fileName,
		FileType:  fileType,
	}

	switch fileType {
	case models.FileTypeImage, models.FileTypeVideo:
		var analysis *models.MediaAnalysis
		var err error
		if fileType == models.FileTypeImage {
			analysis, err = s.gateway.AnalyzeImage(ctx, data, mimeType)
		} else {
			analysis, err = s.gateway.AnalyzeVideo(ctx, data, mimeType)
		}
		if err != nil {
			return nil, err
		}

		result.Verdict = analysis.Verdict
		result.TrustScore = analysis.TrustScore
		result.Summary = analysis.Summary
		result.DetailedFindings = analysis.DetailedFindings

	case models.FileTypeAudio:
		result.Summary = "Audio scanning is currently under development. This feature will be available soon with advanced detection capabilities."
		result.ArtifactsDetected = []string{"Audio Analysis Coming Soon"}

	default:
		return nil, fmt.Errorf("unsupported file type %q", fileType)
	}

	result.ProcessingTime = time.Since(start).Seconds()

	// A newer submission owns the slot now; this result must never surface
	if !s.current(user.ID, gen) {
		return nil, ErrScanSuperseded
	}

	if err := s.scanRepo.CreateScan(result); err != nil {
		// History is best effort; the scan itself succeeded
		log.Printf("Warning: failed to record scan %s for user %d: %v", result.ID, user.ID, err)
	}

	return result, nil
}

// History lists a user's past scans, newest first, optionally filtered to
// one media category.
func (s *ScanService) History(user *models.User, fileType models.FileType, limit int) ([]models.ScanResult, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	scans, err := s.scanRepo.GetUserScans(user.ID, fileType, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load scan history: %w", err)
	}
	return scans, nil
}

// ScanByID loads a single scan from the user's history
func (s *ScanService) ScanByID(user *models.User, scanID string) (*models.ScanResult, error) {
	scan, err := s.scanRepo.GetScanByID(user.ID, scanID)
	if err != nil {
		return nil, fmt.Errorf("failed to load scan: %w", err)
	}
	return scan, nil
}
