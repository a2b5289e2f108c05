package gateway

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"wathiq/internal/models"
)

// Boundary parsing and coercion for model responses. Anything that fails
// validation here is a gateway error; partially-valid objects never escape.

var validMediaVerdicts = map[models.MediaVerdict]bool{
	models.VerdictLikelyAuthentic:        true,
	models.VerdictPotentiallyManipulated: true,
	models.VerdictLikelyAIGenerated:      true,
	models.VerdictHighConfidenceAI:       true,
}

var validNewsVerdicts = map[models.NewsVerdict]bool{
	models.NewsVerdictLikelyFactual:    true,
	models.NewsVerdictMisleading:       true,
	models.NewsVerdictPotentiallyFalse: true,
	models.NewsVerdictUnverifiable:     true,
}

var validSeverities = map[models.FindingSeverity]bool{
	models.SeverityLow:    true,
	models.SeverityMedium: true,
	models.SeverityHigh:   true,
}

func clampScore(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(score)
}

func parseMediaAnalysis(text string) (*models.MediaAnalysis, error) {
	var raw struct {
		Verdict          string                   `json:"verdict"`
		TrustScore       float64                  `json:"trust_score"`
		Summary          string                   `json:"summary"`
		DetailedFindings []models.DetailedFinding `json:"detailed_findings"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &raw); err != nil {
		return nil, fmt.Errorf("malformed analysis response: %w", err)
	}

	verdict := models.MediaVerdict(raw.Verdict)
	if !validMediaVerdicts[verdict] {
		return nil, fmt.Errorf("malformed analysis response: unknown verdict %q", raw.Verdict)
	}
	if raw.Summary == "" {
		return nil, fmt.Errorf("malformed analysis response: missing summary")
	}

	findings := make([]models.DetailedFinding, 0, len(raw.DetailedFindings))
	for _, f := range raw.DetailedFindings {
		if f.Finding == "" {
			continue
		}
		if !validSeverities[f.Severity] {
			f.Severity = models.SeverityLow
		}
		findings = append(findings, f)
	}

	return &models.MediaAnalysis{
		Verdict:          verdict,
		TrustScore:       clampScore(raw.TrustScore),
		Summary:          raw.Summary,
		DetailedFindings: findings,
	}, nil
}

func parseNewsVerification(text string) (*models.NewsVerificationResult, error) {
	var raw struct {
		Verdict          string   `json:"verdict"`
		CredibilityScore float64  `json:"credibility_score"`
		Summary          string   `json:"summary"`
		KeyFindings      []string `json:"key_findings"`
		DetectedBiases   []string `json:"detected_biases"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &raw); err != nil {
		return nil, fmt.Errorf("malformed verification response: %w", err)
	}

	verdict := models.NewsVerdict(raw.Verdict)
	if !validNewsVerdicts[verdict] {
		return nil, fmt.Errorf("malformed verification response: unknown verdict %q", raw.Verdict)
	}
	if raw.Summary == "" {
		return nil, fmt.Errorf("malformed verification response: missing summary")
	}

	return &models.NewsVerificationResult{
		Verdict:          verdict,
		CredibilityScore: clampScore(raw.CredibilityScore),
		Summary:          raw.Summary,
		KeyFindings:      raw.KeyFindings,
		DetectedBiases:   raw.DetectedBiases,
	}, nil
}

var (
	urlVerdictPattern = regexp.MustCompile(`Verdict: (Safe|Caution|Dangerous|Unknown)`)
	urlSummaryPattern = regexp.MustCompile(`Summary: ([\s\S]*?)Threats Found:`)
	urlThreatsPattern = regexp.MustCompile(`Threats Found: (.*)`)
)

// parseURLAnalysis extracts the verdict, summary and threat list from the
// fixed text format the URL prompt requests. Fields the model omitted fall
// back to safe defaults rather than failing the whole scan; the search tool
// does not enforce a schema the way JSON mode does.
func parseURLAnalysis(text string) *models.URLAnalysisResult {
	result := &models.URLAnalysisResult{
		Verdict: models.URLVerdictUnknown,
		Summary: "Could not determine a summary.",
	}

	if m := urlVerdictPattern.FindStringSubmatch(text); m != nil {
		result.Verdict = models.URLVerdict(m[1])
	}
	if m := urlSummaryPattern.FindStringSubmatch(text); m != nil {
		result.Summary = strings.TrimSpace(m[1])
	}
	if m := urlThreatsPattern.FindStringSubmatch(text); m != nil {
		raw := strings.TrimSpace(m[1])
		if raw != "" && !strings.EqualFold(raw, "none") {
			for _, threat := range strings.Split(raw, ",") {
				if threat = strings.TrimSpace(threat); threat != "" {
					result.ThreatsFound = append(result.ThreatsFound, threat)
				}
			}
		}
	}

	return result
}

func parseLearningContent(text string) (*models.ModuleContent, error) {
	var content models.ModuleContent
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &content); err != nil {
		return nil, fmt.Errorf("malformed lesson response: %w", err)
	}
	if content.Content == "" {
		return nil, fmt.Errorf("malformed lesson response: missing lesson body")
	}

	for i := range content.Quiz {
		content.Quiz[i].Options = normalizeOptions(content.Quiz[i].Options)
	}
	return &content, nil
}

// normalizeOptions forces a quiz question to exactly four options, padding
// with "N/A" or truncating as needed.
func normalizeOptions(options []string) []string {
	if len(options) > 4 {
		return options[:4]
	}
	for len(options) < 4 {
		options = append(options, "N/A")
	}
	return options
}
