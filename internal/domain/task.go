package domain

import "time"

// Task status values. The set is closed in Go, but the server accepts any
// transition between them — the Pending → In Progress → Completed flow is
// advisory and enforced only by the client UI.
const (
	TaskStatusPending    = "Pending"
	TaskStatusInProgress = "In Progress"
	TaskStatusCompleted  = "Completed"
)

// Task priority values.
const (
	TaskPriorityLow    = "Low"
	TaskPriorityMedium = "Medium"
	TaskPriorityHigh   = "High"
)

// Task belongs to exactly one user. Deadline is optional; created_at is
// assigned at insert and never changes.
type Task struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Deadline  *string   `json:"deadline"`
	Priority  string    `json:"priority"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// TaskInput carries the writable task fields from a create or update request.
type TaskInput struct {
	Name     string  `json:"name"`
	Deadline *string `json:"deadline"`
	Priority string  `json:"priority"`
	Category string  `json:"category"`
	Status   string  `json:"status"`
}

// UpcomingTask is the slim projection shown on the dashboard.
type UpcomingTask struct {
	Name     string  `json:"name"`
	Deadline *string `json:"deadline"`
}
