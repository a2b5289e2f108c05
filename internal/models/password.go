package models

// PasswordVerdict is one of five ordered strength tiers
type PasswordVerdict string

const (
	PasswordVeryWeak   PasswordVerdict = "Very Weak"
	PasswordWeak       PasswordVerdict = "Weak"
	PasswordModerate   PasswordVerdict = "Moderate"
	PasswordStrong     PasswordVerdict = "Strong"
	PasswordVeryStrong PasswordVerdict = "Very Strong"
)

// PasswordAnalysisResult is a normalized strength report for a password.
// Score and Verdict are a deterministic function of the estimator's 0-4 grade.
type PasswordAnalysisResult struct {
	Score          int             `json:"score"`
	Verdict        PasswordVerdict `json:"verdict"`
	Enhancements   []string        `json:"enhancements"`
	PositivePoints []string        `json:"positive_points"`
}
