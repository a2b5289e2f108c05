// Package password evaluates password strength by remapping a third-party
// 0-4 entropy grade onto a 0-100 score with derived recommendations.
package password

import (
	"errors"
	"fmt"
	"unicode"

	"wathiq/internal/models"
)

// ErrAnalysisUnavailable marks an estimator malfunction, as opposed to a
// low-strength result
var ErrAnalysisUnavailable = errors.New("password analysis unavailable")

// scoreByGrade and verdictByGrade are fixed mappings from the estimator's
// 0-4 grade. Both are monotone in the grade.
var scoreByGrade = [5]int{10, 25, 50, 75, 100}

var verdictByGrade = [5]models.PasswordVerdict{
	models.PasswordVeryWeak,
	models.PasswordWeak,
	models.PasswordModerate,
	models.PasswordStrong,
	models.PasswordVeryStrong,
}

// Evaluator maps passwords to normalized strength reports
type Evaluator struct {
	estimator Estimator
}

// NewEvaluator creates an evaluator over a strength estimator
func NewEvaluator(estimator Estimator) *Evaluator {
	return &Evaluator{estimator: estimator}
}

// Evaluate analyzes a password. An empty password yields a nil result with
// no error (nothing to analyze). An estimator failure yields
// ErrAnalysisUnavailable; a score is never fabricated.
func (e *Evaluator) Evaluate(pw string) (*models.PasswordAnalysisResult, error) {
	if pw == "" {
		return nil, nil
	}

	est, err := e.estimator.Estimate(pw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAnalysisUnavailable, err)
	}
	if est.Grade < 0 || est.Grade > 4 {
		return nil, fmt.Errorf("%w: grade %d out of range", ErrAnalysisUnavailable, est.Grade)
	}

	enhancements := make([]string, 0, len(est.Suggestions)+1)
	if est.Warning != "" {
		enhancements = append(enhancements, est.Warning)
	}
	enhancements = append(enhancements, est.Suggestions...)

	var positive []string
	if est.Grade >= 3 {
		if len(pw) >= 12 {
			positive = append(positive, "Excellent length.")
		}
		if hasDigit(pw) && hasLetter(pw) && hasSymbol(pw) {
			positive = append(positive, "Good mix of characters (letters, numbers, and symbols).")
		}
	}

	// Weak passwords must never come back without guidance
	if est.Grade < 2 && len(enhancements) == 0 {
		enhancements = append(enhancements, "Make the password longer and more complex.")
	}

	return &models.PasswordAnalysisResult{
		Score:          scoreByGrade[est.Grade],
		Verdict:        verdictByGrade[est.Grade],
		Enhancements:   enhancements,
		PositivePoints: positive,
	}, nil
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func hasSymbol(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
