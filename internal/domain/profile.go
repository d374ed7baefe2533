package domain

// DefaultDailyGoalMinutes is the fallback daily study goal (4 hours).
const DefaultDailyGoalMinutes = 240

// Profile is one-to-one with a user (same id). The row itself is created by
// the identity provider at sign-up; this service only reads and updates it.
type Profile struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	StudyYear        string `json:"study_year"`
	Major            string `json:"major"`
	AvatarURL        string `json:"avatar_url"`
	DailyGoalMinutes int    `json:"daily_goal_minutes"`
	Email            string `json:"email,omitempty"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	StudyYear        string `json:"studyYear"`
	Major            string `json:"major"`
	DailyGoalMinutes int    `json:"dailyGoalMinutes"`
}
