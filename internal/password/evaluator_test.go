package password

import (
	"errors"
	"testing"

	"wathiq/internal/models"
)

type fakeEstimator struct {
	estimate Estimate
	err      error
}

func (f fakeEstimator) Estimate(pw string) (Estimate, error) {
	return f.estimate, f.err
}

func TestEvaluateGradeMapping(t *testing.T) {
	tests := []struct {
		grade       int
		wantScore   int
		wantVerdict models.PasswordVerdict
	}{
		{0, 10, models.PasswordVeryWeak},
		{1, 25, models.PasswordWeak},
		{2, 50, models.PasswordModerate},
		{3, 75, models.PasswordStrong},
		{4, 100, models.PasswordVeryStrong},
	}

	for _, tt := range tests {
		evaluator := NewEvaluator(fakeEstimator{estimate: Estimate{Grade: tt.grade}})
		result, err := evaluator.Evaluate("some-password")
		if err != nil {
			t.Fatalf("grade %d: unexpected error: %v", tt.grade, err)
		}
		if result.Score != tt.wantScore {
			t.Errorf("grade %d: score = %d, want %d", tt.grade, result.Score, tt.wantScore)
		}
		if result.Verdict != tt.wantVerdict {
			t.Errorf("grade %d: verdict = %q, want %q", tt.grade, result.Verdict, tt.wantVerdict)
		}
	}
}

func TestEvaluateScoreMonotoneInGrade(t *testing.T) {
	prev := -1
	for grade := 0; grade <= 4; grade++ {
		evaluator := NewEvaluator(fakeEstimator{estimate: Estimate{Grade: grade}})
		result, err := evaluator.Evaluate("pw")
		if err != nil {
			t.Fatalf("grade %d: %v", grade, err)
		}
		if result.Score <= prev {
			t.Errorf("score %d for grade %d not greater than previous %d", result.Score, grade, prev)
		}
		prev = result.Score
	}
}

func TestEvaluateEmptyPassword(t *testing.T) {
	evaluator := NewEvaluator(fakeEstimator{estimate: Estimate{Grade: 4}})
	result, err := evaluator.Evaluate("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Errorf("result = %+v, want nil for empty input", result)
	}
}

func TestEvaluateEstimatorFailure(t *testing.T) {
	evaluator := NewEvaluator(fakeEstimator{err: errors.New("boom")})
	result, err := evaluator.Evaluate("pw")
	if !errors.Is(err, ErrAnalysisUnavailable) {
		t.Errorf("error = %v, want ErrAnalysisUnavailable", err)
	}
	if result != nil {
		t.Errorf("result = %+v, want nil on estimator failure", result)
	}
}

func TestEvaluateOutOfRangeGrade(t *testing.T) {
	for _, grade := range []int{-1, 5} {
		evaluator := NewEvaluator(fakeEstimator{estimate: Estimate{Grade: grade}})
		if _, err := evaluator.Evaluate("pw"); !errors.Is(err, ErrAnalysisUnavailable) {
			t.Errorf("grade %d: error = %v, want ErrAnalysisUnavailable", grade, err)
		}
	}
}

func TestEvaluateEnhancementOrder(t *testing.T) {
	evaluator := NewEvaluator(fakeEstimator{estimate: Estimate{
		Grade:       1,
		Warning:     "This is similar to a commonly used password.",
		Suggestions: []string{"Add another word or two."},
	}})

	result, err := evaluator.Evaluate("password1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Enhancements) != 2 {
		t.Fatalf("enhancements = %v, want warning then suggestion", result.Enhancements)
	}
	if result.Enhancements[0] != "This is similar to a commonly used password." {
		t.Errorf("warning not first: %v", result.Enhancements)
	}
}

func TestEvaluateWeakWithoutFeedbackGetsGenericAdvice(t *testing.T) {
	evaluator := NewEvaluator(fakeEstimator{estimate: Estimate{Grade: 0}})

	result, err := evaluator.Evaluate("zz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Enhancements) != 1 || result.Enhancements[0] != "Make the password longer and more complex." {
		t.Errorf("enhancements = %v, want the generic advice line", result.Enhancements)
	}
}

func TestEvaluatePositivePoints(t *testing.T) {
	tests := []struct {
		name     string
		password string
		grade    int
		want     int
	}{
		{
			name:     "long mixed password at high grade",
			password: "Tr0ub4dor&Horse!",
			grade:    4,
			want:     2,
		},
		{
			name:     "short mixed password at high grade",
			password: "aB3!xYz",
			grade:    3,
			want:     1, // character mix only
		},
		{
			name:     "long letters-only password at high grade",
			password: "abcdefghijklmnop",
			grade:    3,
			want:     1, // length only
		},
		{
			name:     "no positives below grade three",
			password: "Tr0ub4dor&Horse!",
			grade:    2,
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evaluator := NewEvaluator(fakeEstimator{estimate: Estimate{Grade: tt.grade}})
			result, err := evaluator.Evaluate(tt.password)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(result.PositivePoints) != tt.want {
				t.Errorf("positive points = %v, want %d entries", result.PositivePoints, tt.want)
			}
		})
	}
}

func TestZxcvbnEstimatorGradesRealPasswords(t *testing.T) {
	estimator := NewEstimator()

	weak, err := estimator.Estimate("password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if weak.Grade > 1 {
		t.Errorf("grade(%q) = %d, want <= 1", "password", weak.Grade)
	}

	strong, err := estimator.Estimate("correct-horse-battery-staple-91!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strong.Grade < 3 {
		t.Errorf("grade(long passphrase) = %d, want >= 3", strong.Grade)
	}
	if weak.Grade >= strong.Grade {
		t.Errorf("weak grade %d not below strong grade %d", weak.Grade, strong.Grade)
	}
}
