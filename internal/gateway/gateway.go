// Package gateway is the single integration point with the Gemini API. All
// model interaction happens behind the Gateway interface; responses are
// validated and coerced into typed results at this boundary so the rest of
// the service never sees raw model output.
package gateway

import (
	"context"
	"errors"

	"wathiq/internal/models"
)

// ErrNotConfigured is returned by every operation when no API key is set
var ErrNotConfigured = errors.New("AI gateway is not configured")

// Gateway exposes the AI-backed analysis operations. Each call is a single
// attempt: a failed invocation returns one terminal error and is never
// retried internally.
type Gateway interface {
	AnalyzeImage(ctx context.Context, data []byte, mimeType string) (*models.MediaAnalysis, error)
	AnalyzeVideo(ctx context.Context, data []byte, mimeType string) (*models.MediaAnalysis, error)
	VerifyNews(ctx context.Context, query string) (*models.NewsVerificationResult, error)
	AnalyzeURL(ctx context.Context, url string) (*models.URLAnalysisResult, error)
	GenerateLearningContent(ctx context.Context, title, description string, ageGroup models.AgeGroup) (*models.ModuleContent, error)
}

// Unconfigured is the Gateway used when no API key is available. Every
// operation fails fast with ErrNotConfigured.
type Unconfigured struct{}

func (Unconfigured) AnalyzeImage(ctx context.Context, data []byte, mimeType string) (*models.MediaAnalysis, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) AnalyzeVideo(ctx context.Context, data []byte, mimeType string) (*models.MediaAnalysis, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) VerifyNews(ctx context.Context, query string) (*models.NewsVerificationResult, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) AnalyzeURL(ctx context.Context, url string) (*models.URLAnalysisResult, error) {
	return nil, ErrNotConfigured
}

func (Unconfigured) GenerateLearningContent(ctx context.Context, title, description string, ageGroup models.AgeGroup) (*models.ModuleContent, error) {
	return nil, ErrNotConfigured
}
