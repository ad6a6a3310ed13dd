package models

// AchievementStatus tracks the verification state of a student achievement.
type AchievementStatus string

const (
	AchievementPending  AchievementStatus = "Pending"
	AchievementVerified AchievementStatus = "Verified"
	AchievementRejected AchievementStatus = "Rejected"
)

// Achievement is a sample activity or certification listed on the student's SKPI.
type Achievement struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Category string            `json:"category"`
	Year     string            `json:"year"`
	Status   AchievementStatus `json:"status"`
}
