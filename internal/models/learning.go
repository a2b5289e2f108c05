package models

// ModuleType distinguishes the kinds of learning modules
type ModuleType string

const (
	ModuleTypeLesson    ModuleType = "lesson"
	ModuleTypeGame      ModuleType = "game"
	ModuleTypeChallenge ModuleType = "challenge"
)

// QuizQuestion is a single multiple-choice question with exactly four options
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// ModuleContent is a generated lesson body plus its quiz.
// Once generated for a module it is cached verbatim and never regenerated.
type ModuleContent struct {
	Content string         `json:"content"`
	Quiz    []QuizQuestion `json:"quiz"`
}

// LearningModule is a unit of learning content on the learning path
type LearningModule struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	ModuleType   ModuleType `json:"module_type"`
	AgeGroup     AgeGroup   `json:"age_group"`
	PointsReward int        `json:"points_reward,omitempty"`
	Locked       bool       `json:"locked"`
	Completed    bool       `json:"completed"`
	Content      string     `json:"content,omitempty"`
	Quiz         []QuizQuestion `json:"quiz,omitempty"`
}
