package port

import (
	"context"

	"github.com/johnpaulpatigas/focusflow-api/internal/domain"
)

// ProfileStore covers the profiles table.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.Profile, error)
	SetProfileName(ctx context.Context, userID, firstName, lastName string) error
}

// TaskStore covers the tasks table. Every query is scoped by user id; a
// mutation that matches zero rows (wrong id or wrong owner) returns
// ErrTaskNotFound.
type TaskStore interface {
	ListTasks(ctx context.Context, userID, status string) ([]domain.Task, error)
	CreateTask(ctx context.Context, userID string, in domain.TaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, userID, taskID string, in domain.TaskInput) (*domain.Task, error)
	UpdateTaskStatus(ctx context.Context, userID, taskID, status string) (*domain.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
}

// FocusStore covers the append-only focus_sessions table.
type FocusStore interface {
	CreateFocusSession(ctx context.Context, userID string, durationMinutes int, taskID *string) (*domain.FocusSession, error)
}

// StatsStore covers the raw counts, rows, and aggregate procedures the
// derivation layer consumes.
type StatsStore interface {
	CountTasksDueToday(ctx context.Context, userID string) (int, error)
	ListUpcomingTasks(ctx context.Context, userID string, limit int) ([]domain.UpcomingTask, error)
	WeeklyFocusHours(ctx context.Context, userID string) ([]domain.WeeklyFocusRow, error)
	TasksCompletedLast7Days(ctx context.Context, userID string) ([]domain.CompletedTasksRow, error)
	CalculateStreak(ctx context.Context, userID string) (int, error)
	CountTasks(ctx context.Context, userID string) (int, error)
	CountCompletedTasks(ctx context.Context, userID string) (int, error)
	ListFocusDurations(ctx context.Context, userID string) ([]int, error)
}
