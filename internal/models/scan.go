package models

import "time"

// MediaVerdict is the forensic authenticity verdict for scanned media
type MediaVerdict string

const (
	VerdictLikelyAuthentic        MediaVerdict = "Likely Authentic"
	VerdictPotentiallyManipulated MediaVerdict = "Potentially Manipulated"
	VerdictLikelyAIGenerated      MediaVerdict = "Likely AI-Generated"
	VerdictHighConfidenceAI       MediaVerdict = "High Confidence AI-Generated"
)

// FindingSeverity rates how strongly a finding indicates manipulation
type FindingSeverity string

const (
	SeverityLow    FindingSeverity = "Low"
	SeverityMedium FindingSeverity = "Medium"
	SeverityHigh   FindingSeverity = "High"
)

// DetailedFinding is a single categorized observation from forensic analysis
type DetailedFinding struct {
	Category string          `json:"category"`
	Finding  string          `json:"finding"`
	Severity FindingSeverity `json:"severity"`
}

// FileType is the broad media category of a scanned file
type FileType string

const (
	FileTypeImage FileType = "image"
	FileTypeVideo FileType = "video"
	FileTypeAudio FileType = "audio"
)

// MediaAnalysis is the gateway's forensic assessment of a single media file
type MediaAnalysis struct {
	Verdict          MediaVerdict      `json:"verdict"`
	TrustScore       int               `json:"trust_score"`
	Summary          string            `json:"summary"`
	DetailedFindings []DetailedFinding `json:"detailed_findings"`
}

// ScanResult is a completed scan as recorded in history
type ScanResult struct {
	ID                string            `json:"id"`
	UserID            int64             `json:"-"`
	CreatedAt         time.Time         `json:"created_date"`
	FileName          string            `json:"file_name"`
	FileType          FileType          `json:"file_type"`
	TrustScore        int               `json:"trust_score"`
	Verdict           MediaVerdict      `json:"verdict,omitempty"`
	Summary           string            `json:"summary"`
	DetailedFindings  []DetailedFinding `json:"detailed_findings,omitempty"`
	ArtifactsDetected []string          `json:"artifacts_detected,omitempty"`
	ProcessingTime    float64           `json:"processing_time"`
}
