package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"wathiq/internal/gateway"
	"wathiq/internal/models"
)

type memoryScanStore struct {
	mu    sync.Mutex
	scans []models.ScanResult
}

func (m *memoryScanStore) CreateScan(scan *models.ScanResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scans = append(m.scans, *scan)
	return nil
}

func (m *memoryScanStore) GetUserScans(userID int64, fileType models.FileType, limit int) ([]models.ScanResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.ScanResult
	for i := len(m.scans) - 1; i >= 0; i-- {
		s := m.scans[i]
		if s.UserID != userID {
			continue
		}
		if fileType != "" && s.FileType != fileType {
			continue
		}
		out = append(out, s)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memoryScanStore) GetScanByID(userID int64, scanID string) (*models.ScanResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.scans {
		if s.UserID == userID && s.ID == scanID {
			scan := s
			return &scan, nil
		}
	}
	return nil, nil
}

func (m *memoryScanStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.scans)
}

// blockingGateway holds each AnalyzeImage call until its release channel
// receives, so tests can control completion order.
type blockingGateway struct {
	gateway.Unconfigured
	started chan struct{}
	release chan struct{}
	summary string
}

func (g *blockingGateway) AnalyzeImage(ctx context.Context, data []byte, mimeType string) (*models.MediaAnalysis, error) {
	if g.started != nil {
		close(g.started)
	}
	if g.release != nil {
		<-g.release
	}
	return &models.MediaAnalysis{
		Verdict:    models.VerdictLikelyAuthentic,
		TrustScore: 91,
		Summary:    g.summary,
	}, nil
}

func scanUser() *models.User {
	return &models.User{ID: 1, Email: "sara@example.com", Name: "Sara"}
}

func TestScanRecordsResult(t *testing.T) {
	store := &memoryScanStore{}
	svc := NewScanService(&blockingGateway{summary: "looks real"}, store)

	result, err := svc.Scan(context.Background(), scanUser(), "photo.jpg", models.FileTypeImage, "image/jpeg", []byte{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ID == "" {
		t.Error("scan id not assigned")
	}
	if result.Verdict != models.VerdictLikelyAuthentic || result.TrustScore != 91 {
		t.Errorf("result = %+v", result)
	}
	if store.count() != 1 {
		t.Errorf("recorded scans = %d, want 1", store.count())
	}
}

func TestScanStaleResultSuppressed(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	store := &memoryScanStore{}
	svc := NewScanService(&blockingGateway{started: started, release: release, summary: "slow"}, store)
	user := scanUser()

	type outcome struct {
		result *models.ScanResult
		err    error
	}
	firstDone := make(chan outcome, 1)
	go func() {
		result, err := svc.Scan(context.Background(), user, "old.jpg", models.FileTypeImage, "image/jpeg", []byte{1})
		firstDone <- outcome{result, err}
	}()

	// Wait until the first scan is in flight, then let a second submission
	// claim the scan slot; audio needs no gateway call so it completes
	// immediately.
	<-started
	second, err := svc.Scan(context.Background(), user, "new.mp3", models.FileTypeAudio, "audio/mpeg", []byte{2})
	if err != nil {
		t.Fatalf("second scan: %v", err)
	}

	close(release)
	first := <-firstDone

	if !errors.Is(first.err, ErrScanSuperseded) {
		t.Errorf("first scan error = %v, want ErrScanSuperseded", first.err)
	}
	if first.result != nil {
		t.Errorf("first scan result = %+v, want nil (suppressed)", first.result)
	}

	// Only the newer scan may appear in history
	if store.count() != 1 {
		t.Fatalf("recorded scans = %d, want 1", store.count())
	}
	scans, err := svc.History(user, "", 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(scans) != 1 || scans[0].ID != second.ID {
		t.Errorf("history = %+v, want only the newer scan %s", scans, second.ID)
	}
}

func TestScanAudioStub(t *testing.T) {
	store := &memoryScanStore{}
	svc := NewScanService(gateway.Unconfigured{}, store)

	result, err := svc.Scan(context.Background(), scanUser(), "voice.mp3", models.FileTypeAudio, "audio/mpeg", []byte{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TrustScore != 0 {
		t.Errorf("trust score = %d, want 0 for the stub", result.TrustScore)
	}
	if len(result.ArtifactsDetected) != 1 || result.ArtifactsDetected[0] != "Audio Analysis Coming Soon" {
		t.Errorf("artifacts = %v", result.ArtifactsDetected)
	}
	if result.Verdict != "" {
		t.Errorf("verdict = %q, want empty for the stub", result.Verdict)
	}
}

func TestHistoryFilterAndLimit(t *testing.T) {
	store := &memoryScanStore{}
	svc := NewScanService(gateway.Unconfigured{}, store)
	user := scanUser()

	for i := 0; i < 3; i++ {
		if _, err := svc.Scan(context.Background(), user, "a.mp3", models.FileTypeAudio, "audio/mpeg", []byte{1}); err != nil {
			t.Fatalf("scan %d: %v", i, err)
		}
	}

	scans, err := svc.History(user, models.FileTypeAudio, 2)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(scans) != 2 {
		t.Errorf("history = %d entries, want limit 2 applied", len(scans))
	}

	none, err := svc.History(user, models.FileTypeVideo, 10)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("video history = %d entries, want 0", len(none))
	}
}
