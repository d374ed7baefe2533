package domain

import "time"

// FocusSession is an append-only log entry. There is no update or delete
// endpoint; rows exist only to be aggregated. TaskID may reference a task
// that has since been deleted — the link is informational, not ownership.
type FocusSession struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	DurationMinutes int       `json:"duration_minutes"`
	TaskID          *string   `json:"task_id"`
	CreatedAt       time.Time `json:"created_at"`
}
