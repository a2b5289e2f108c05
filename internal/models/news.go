package models

// NewsVerdict is the credibility verdict for analyzed news text
type NewsVerdict string

const (
	NewsVerdictLikelyFactual    NewsVerdict = "Likely Factual"
	NewsVerdictMisleading       NewsVerdict = "Misleading"
	NewsVerdictPotentiallyFalse NewsVerdict = "Potentially False"
	NewsVerdictUnverifiable     NewsVerdict = "Unverifiable"
)

// NewsVerificationResult is the gateway's credibility assessment of news text
type NewsVerificationResult struct {
	Verdict          NewsVerdict `json:"verdict"`
	CredibilityScore int         `json:"credibility_score"`
	Summary          string      `json:"summary"`
	KeyFindings      []string    `json:"key_findings"`
	DetectedBiases   []string    `json:"detected_biases"`
}
