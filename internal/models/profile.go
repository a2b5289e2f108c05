package models

// AgeGroup categorizes users for age-appropriate content
type AgeGroup string

const (
	AgeGroupKids   AgeGroup = "kids"
	AgeGroupTeens  AgeGroup = "teens"
	AgeGroupAdults AgeGroup = "adults"
)

// Valid reports whether the age group is one of the known categories
func (g AgeGroup) Valid() bool {
	switch g {
	case AgeGroupKids, AgeGroupTeens, AgeGroupAdults:
		return true
	}
	return false
}

// PointsPerLevel is the number of points needed to advance one level
const PointsPerLevel = 500

// UserProfile holds identity and gamification state for a user.
// Level is always derived from TotalPoints: floor(points/500)+1.
type UserProfile struct {
	FullName          string   `json:"full_name"`
	Email             string   `json:"email"`
	Level             int      `json:"level"`
	TotalPoints       int      `json:"total_points"`
	AgeGroup          AgeGroup `json:"age_group"`
	PreferredLanguage string   `json:"preferred_language"`
	CurrentStreak     int      `json:"current_streak"`
	Badges            []string `json:"badges,omitempty"`
	AvatarBase64      string   `json:"profile_photo_base64,omitempty"`
}

// LevelForPoints computes the level for a point total
func LevelForPoints(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// UsageStatistics holds aggregate scan counters for display
type UsageStatistics struct {
	TotalScans        int `json:"total_scans"`
	AverageTrustScore int `json:"average_trust_score"`
}
