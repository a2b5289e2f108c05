package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"wathiq/internal/database"
	"wathiq/internal/models"
)

// ScanRepository handles database operations for scan history
type ScanRepository struct {
	db *database.DB
}

// NewScanRepository creates a new scan repository
func NewScanRepository(db *database.DB) *ScanRepository {
	return &ScanRepository{db: db}
}

// CreateScan records a completed scan in history
func (r *ScanRepository) CreateScan(scan *models.ScanResult) error {
	findings, err := json.Marshal(scan.DetailedFindings)
	if err != nil {
		return fmt.Errorf("failed to encode findings: %w", err)
	}
	artifacts, err := json.Marshal(scan.ArtifactsDetected)
	if err != nil {
		return fmt.Errorf("failed to encode artifacts: %w", err)
	}

	query := `
		INSERT INTO scans (id, user_id, created_at, file_name, file_type, trust_score,
		                   verdict, summary, findings, artifacts, processing_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(query,
		scan.ID,
		scan.UserID,
		scan.CreatedAt,
		scan.FileName,
		string(scan.FileType),
		scan.TrustScore,
		string(scan.Verdict),
		scan.Summary,
		string(findings),
		string(artifacts),
		scan.ProcessingTime,
	)
	if err != nil {
		return fmt.Errorf("failed to record scan: %w", err)
	}
	return nil
}

// GetUserScans retrieves a user's scan history, newest first.
// fileType filters to a single media category when non-empty.
func (r *ScanRepository) GetUserScans(userID int64, fileType models.FileType, limit int) ([]models.ScanResult, error) {
	query := `
		SELECT id, user_id, created_at, file_name, file_type, trust_score,
		       verdict, summary, findings, artifacts, processing_time
		FROM scans
		WHERE user_id = ?
	`
	args := []interface{}{userID}
	if fileType != "" {
		query += " AND file_type = ?"
		args = append(args, string(fileType))
	}
	query += " ORDER BY created_at DESC LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var scans []models.ScanResult
	for rows.Next() {
		var scan models.ScanResult
		var fileTypeStr, verdictStr, findings, artifacts string

		err := rows.Scan(
			&scan.ID,
			&scan.UserID,
			&scan.CreatedAt,
			&scan.FileName,
			&fileTypeStr,
			&scan.TrustScore,
			&verdictStr,
			&scan.Summary,
			&findings,
			&artifacts,
			&scan.ProcessingTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		scan.FileType = models.FileType(fileTypeStr)
		scan.Verdict = models.MediaVerdict(verdictStr)
		if err := json.Unmarshal([]byte(findings), &scan.DetailedFindings); err != nil {
			return nil, fmt.Errorf("failed to decode findings for scan %s: %w", scan.ID, err)
		}
		if err := json.Unmarshal([]byte(artifacts), &scan.ArtifactsDetected); err != nil {
			return nil, fmt.Errorf("failed to decode artifacts for scan %s: %w", scan.ID, err)
		}

		scans = append(scans, scan)
	}

	return scans, rows.Err()
}

// GetScanByID retrieves a single scan, scoped to its owner
func (r *ScanRepository) GetScanByID(userID int64, scanID string) (*models.ScanResult, error) {
	query := `
		SELECT id, user_id, created_at, file_name, file_type, trust_score,
		       verdict, summary, findings, artifacts, processing_time
		FROM scans
		WHERE user_id = ? AND id = ?
	`
	var scan models.ScanResult
	var fileTypeStr, verdictStr, findings, artifacts string

	err := r.db.QueryRow(query, userID, scanID).Scan(
		&scan.ID,
		&scan.UserID,
		&scan.CreatedAt,
		&scan.FileName,
		&fileTypeStr,
		&scan.TrustScore,
		&verdictStr,
		&scan.Summary,
		&findings,
		&artifacts,
		&scan.ProcessingTime,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}

	scan.FileType = models.FileType(fileTypeStr)
	scan.Verdict = models.MediaVerdict(verdictStr)
	if err := json.Unmarshal([]byte(findings), &scan.DetailedFindings); err != nil {
		return nil, fmt.Errorf("failed to decode findings for scan %s: %w", scan.ID, err)
	}
	if err := json.Unmarshal([]byte(artifacts), &scan.ArtifactsDetected); err != nil {
		return nil, fmt.Errorf("failed to decode artifacts for scan %s: %w", scan.ID, err)
	}

	return &scan, nil
}
