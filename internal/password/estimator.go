package password

import (
	"fmt"

	"github.com/nbutton23/zxcvbn-go"
)

// Estimate is the raw output of a strength estimator: a discrete 0-4 grade
// plus human-readable feedback.
type Estimate struct {
	Grade       int
	Warning     string
	Suggestions []string
}

// Estimator grades a password in the closed range [0,4]
type Estimator interface {
	Estimate(password string) (Estimate, error)
}

// zxcvbnEstimator grades passwords with the zxcvbn entropy model and derives
// feedback from the match sequence, mirroring the upstream zxcvbn feedback
// rules (feedback is only produced for grades 0-2).
type zxcvbnEstimator struct{}

// NewEstimator returns the default zxcvbn-backed estimator
func NewEstimator() Estimator {
	return zxcvbnEstimator{}
}

func (zxcvbnEstimator) Estimate(pw string) (est Estimate, err error) {
	// zxcvbn panics on some internal failures; surface that as an error
	// rather than a fabricated grade
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("entropy estimator failed: %v", r)
		}
	}()

	result := zxcvbn.PasswordStrength(pw, nil)

	grade := result.Score
	if grade < 0 {
		grade = 0
	}
	if grade > 4 {
		grade = 4
	}

	est = Estimate{Grade: grade}
	if grade > 2 {
		return est, nil
	}

	// Feedback is driven by the longest match in the sequence
	var longest string
	longestLen := 0
	for _, m := range result.MatchSequence {
		if len(m.Token) > longestLen {
			longest = m.Pattern
			longestLen = len(m.Token)
		}
	}

	switch longest {
	case "dictionary":
		est.Warning = "This is similar to a commonly used password."
		est.Suggestions = append(est.Suggestions, "Add another word or two. Uncommon words are better.")
	case "spatial":
		est.Warning = "Short keyboard patterns are easy to guess."
		est.Suggestions = append(est.Suggestions, "Use a longer keyboard pattern with more turns.")
	case "repeat":
		est.Warning = "Repeated characters are easy to guess."
		est.Suggestions = append(est.Suggestions, "Avoid repeated words and characters.")
	case "sequence":
		est.Warning = "Sequences like abc or 6543 are easy to guess."
		est.Suggestions = append(est.Suggestions, "Avoid common character sequences.")
	case "date":
		est.Warning = "Dates are often easy to guess."
		est.Suggestions = append(est.Suggestions, "Avoid dates and years that are associated with you.")
	}

	return est, nil
}
