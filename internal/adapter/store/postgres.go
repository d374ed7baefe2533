// Package store is the Postgres adapter. The schema (tables, row-level
// security, and the aggregate procedures) is owned by the hosted store;
// this adapter only issues user-scoped queries against it.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/johnpaulpatigas/focusflow-api/internal/domain"
	"github.com/johnpaulpatigas/focusflow-api/internal/port"
)

// PostgresStore handles all relational database operations.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection and returns a store instance.
func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// --- Profiles ---

// GetProfile returns the profile row for a user. daily_goal_minutes falls
// back to the default when the column is null.
func (s *PostgresStore) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT COALESCE(first_name, ''), COALESCE(last_name, ''),
	                 COALESCE(study_year, ''), COALESCE(major, ''),
	                 COALESCE(avatar_url, ''), COALESCE(daily_goal_minutes, $2)
	          FROM profiles WHERE id = $1`

	var p domain.Profile
	err := s.db.QueryRowContext(ctx, query, userID, domain.DefaultDailyGoalMinutes).Scan(
		&p.FirstName, &p.LastName, &p.StudyYear, &p.Major, &p.AvatarURL, &p.DailyGoalMinutes,
	)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// UpdateProfile updates the editable profile fields and returns the row.
func (s *PostgresStore) UpdateProfile(ctx context.Context, userID string, upd domain.ProfileUpdate) (*domain.Profile, error) {
	query := `UPDATE profiles
	          SET first_name = $1, last_name = $2, study_year = $3, major = $4, daily_goal_minutes = $5
	          WHERE id = $6
	          RETURNING COALESCE(first_name, ''), COALESCE(last_name, ''),
	                    COALESCE(study_year, ''), COALESCE(major, ''),
	                    COALESCE(avatar_url, ''), COALESCE(daily_goal_minutes, $7)`

	var p domain.Profile
	err := s.db.QueryRowContext(ctx, query,
		upd.FirstName, upd.LastName, upd.StudyYear, upd.Major, upd.DailyGoalMinutes,
		userID, domain.DefaultDailyGoalMinutes,
	).Scan(&p.FirstName, &p.LastName, &p.StudyYear, &p.Major, &p.AvatarURL, &p.DailyGoalMinutes)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &p, nil
}

// SetProfileName fills in only the name fields, used right after sign-up
// when the provider trigger has just created an empty profile row.
func (s *PostgresStore) SetProfileName(ctx context.Context, userID, firstName, lastName string) error {
	query := `UPDATE profiles SET first_name = $1, last_name = $2 WHERE id = $3`
	if _, err := s.db.ExecContext(ctx, query, firstName, lastName, userID); err != nil {
		return fmt.Errorf("set profile name: %w", err)
	}
	return nil
}

// --- Tasks ---

const taskColumns = `id, user_id, name, deadline::text, COALESCE(priority, ''), COALESCE(category, ''), status, created_at`

func scanTask(row interface{ Scan(...any) error }) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(
		&t.ID, &t.UserID, &t.Name, &t.Deadline, &t.Priority, &t.Category, &t.Status, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTasks returns a user's tasks, newest first, optionally filtered by
// status. The result is never nil.
func (s *PostgresStore) ListTasks(ctx context.Context, userID, status string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1`
	args := []any{userID}

	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// CreateTask inserts a new task with status Pending.
func (s *PostgresStore) CreateTask(ctx context.Context, userID string, in domain.TaskInput) (*domain.Task, error) {
	query := `INSERT INTO tasks (user_id, name, deadline, priority, category, status)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING ` + taskColumns

	t, err := scanTask(s.db.QueryRowContext(ctx, query,
		userID, in.Name, in.Deadline, nullable(in.Priority), nullable(in.Category), domain.TaskStatusPending,
	))
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

// UpdateTask overwrites a task's writable fields. Zero matched rows means
// the id does not exist or belongs to another user; both collapse into
// ErrTaskNotFound — the caller cannot tell them apart.
func (s *PostgresStore) UpdateTask(ctx context.Context, userID, taskID string, in domain.TaskInput) (*domain.Task, error) {
	query := `UPDATE tasks
	          SET name = $1, deadline = $2, priority = $3, category = $4, status = COALESCE(NULLIF($5, ''), status)
	          WHERE id = $6 AND user_id = $7
	          RETURNING ` + taskColumns

	t, err := scanTask(s.db.QueryRowContext(ctx, query,
		in.Name, in.Deadline, nullable(in.Priority), nullable(in.Category), in.Status, taskID, userID,
	))
	if err == sql.ErrNoRows {
		return nil, port.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return t, nil
}

// UpdateTaskStatus sets only the status column. Any status string is
// accepted; no transition graph is enforced server-side.
func (s *PostgresStore) UpdateTaskStatus(ctx context.Context, userID, taskID, status string) (*domain.Task, error) {
	query := `UPDATE tasks SET status = $1
	          WHERE id = $2 AND user_id = $3
	          RETURNING ` + taskColumns

	t, err := scanTask(s.db.QueryRowContext(ctx, query, status, taskID, userID))
	if err == sql.ErrNoRows {
		return nil, port.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update task status: %w", err)
	}
	return t, nil
}

// DeleteTask removes a task. Deleting an id that matches nothing is not an
// error, and focus sessions referencing the task keep their task_id.
func (s *PostgresStore) DeleteTask(ctx context.Context, userID, taskID string) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	if _, err := s.db.ExecContext(ctx, query, taskID, userID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// --- Focus sessions ---

// CreateFocusSession appends one immutable focus-session row.
func (s *PostgresStore) CreateFocusSession(ctx context.Context, userID string, durationMinutes int, taskID *string) (*domain.FocusSession, error) {
	query := `INSERT INTO focus_sessions (user_id, duration_minutes, task_id)
	          VALUES ($1, $2, $3)
	          RETURNING id, user_id, duration_minutes, task_id, created_at`

	var fs domain.FocusSession
	err := s.db.QueryRowContext(ctx, query, userID, durationMinutes, taskID).Scan(
		&fs.ID, &fs.UserID, &fs.DurationMinutes, &fs.TaskID, &fs.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create focus session: %w", err)
	}
	return &fs, nil
}

// --- Aggregates ---

// CountTasksDueToday counts non-completed tasks whose deadline is today.
func (s *PostgresStore) CountTasksDueToday(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM tasks
	          WHERE user_id = $1 AND deadline = CURRENT_DATE AND status <> $2`

	var n int
	if err := s.db.QueryRowContext(ctx, query, userID, domain.TaskStatusCompleted).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tasks due today: %w", err)
	}
	return n, nil
}

// ListUpcomingTasks returns the nearest non-completed deadlines.
func (s *PostgresStore) ListUpcomingTasks(ctx context.Context, userID string, limit int) ([]domain.UpcomingTask, error) {
	query := `SELECT name, deadline::text FROM tasks
	          WHERE user_id = $1 AND status <> $2
	          ORDER BY deadline ASC
	          LIMIT $3`

	rows, err := s.db.QueryContext(ctx, query, userID, domain.TaskStatusCompleted, limit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.UpcomingTask{}
	for rows.Next() {
		var t domain.UpcomingTask
		if err := rows.Scan(&t.Name, &t.Deadline); err != nil {
			return nil, fmt.Errorf("scan upcoming task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// WeeklyFocusHours calls the store's get_weekly_focus_hours procedure:
// seven day buckets of focus minutes for the current week.
func (s *PostgresStore) WeeklyFocusHours(ctx context.Context, userID string) ([]domain.WeeklyFocusRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT day, total_minutes FROM get_weekly_focus_hours($1)`, userID)
	if err != nil {
		return nil, fmt.Errorf("weekly focus hours: %w", err)
	}
	defer rows.Close()

	out := []domain.WeeklyFocusRow{}
	for rows.Next() {
		var r domain.WeeklyFocusRow
		if err := rows.Scan(&r.Day, &r.TotalMinutes); err != nil {
			return nil, fmt.Errorf("scan weekly focus row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// TasksCompletedLast7Days calls the store's
// get_tasks_completed_last_7_days procedure.
func (s *PostgresStore) TasksCompletedLast7Days(ctx context.Context, userID string) ([]domain.CompletedTasksRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT day, count FROM get_tasks_completed_last_7_days($1)`, userID)
	if err != nil {
		return nil, fmt.Errorf("tasks completed last 7 days: %w", err)
	}
	defer rows.Close()

	out := []domain.CompletedTasksRow{}
	for rows.Next() {
		var r domain.CompletedTasksRow
		if err := rows.Scan(&r.Day, &r.Count); err != nil {
			return nil, fmt.Errorf("scan completed tasks row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CalculateStreak calls the store's calculate_streak procedure: the count
// of consecutive days ending today with at least one focus session.
func (s *PostgresStore) CalculateStreak(ctx context.Context, userID string) (int, error) {
	var streak int
	if err := s.db.QueryRowContext(ctx, `SELECT calculate_streak($1)`, userID).Scan(&streak); err != nil {
		return 0, fmt.Errorf("calculate streak: %w", err)
	}
	return streak, nil
}

// CountTasks counts all of a user's tasks.
func (s *PostgresStore) CountTasks(ctx context.Context, userID string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks WHERE user_id = $1`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}

// CountCompletedTasks counts a user's completed tasks.
func (s *PostgresStore) CountCompletedTasks(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM tasks WHERE user_id = $1 AND status = $2`

	var n int
	if err := s.db.QueryRowContext(ctx, query, userID, domain.TaskStatusCompleted).Scan(&n); err != nil {
		return 0, fmt.Errorf("count completed tasks: %w", err)
	}
	return n, nil
}

// ListFocusDurations returns every focus-session duration for a user.
func (s *PostgresStore) ListFocusDurations(ctx context.Context, userID string) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT duration_minutes FROM focus_sessions WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("list focus durations: %w", err)
	}
	defer rows.Close()

	durations := []int{}
	for rows.Next() {
		var d int
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scan focus duration: %w", err)
		}
		durations = append(durations, d)
	}
	return durations, rows.Err()
}

// nullable maps an empty string to NULL so optional text columns stay null
// instead of storing "".
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
