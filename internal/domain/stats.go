package domain

// WeeklyFocusRow is one day bucket from the get_weekly_focus_hours store
// procedure: total focus minutes logged on that day of the current week.
type WeeklyFocusRow struct {
	Day          string `json:"day"`
	TotalMinutes int    `json:"total_minutes"`
}

// CompletedTasksRow is one point of the tasks-completed time series from the
// get_tasks_completed_last_7_days store procedure.
type CompletedTasksRow struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// DashboardStats is the view model behind GET /dashboard-stats.
type DashboardStats struct {
	TasksDueToday    int              `json:"tasksDueToday"`
	UpcomingTasks    []UpcomingTask   `json:"upcomingTasks"`
	CurrentStreak    int              `json:"currentStreak"`
	WeeklyFocusHours []WeeklyFocusRow `json:"weeklyFocusHours"`
	DailyGoalMinutes int              `json:"dailyGoalMinutes"`
}

// ProgressStats is the view model behind GET /progress-stats. EarnedBadges
// is recomputed from current counts on every request; nothing is persisted,
// so a badge can disappear if the underlying counts regress.
type ProgressStats struct {
	WeeklyFocusHours       []WeeklyFocusRow    `json:"weeklyFocusHours"`
	TasksCompletedOverTime []CompletedTasksRow `json:"tasksCompletedOverTime"`
	StudyStreak            int                 `json:"studyStreak"`
	EarnedBadges           []string            `json:"earnedBadges"`
}

// ProfileStats is the aggregate block on the profile page.
type ProfileStats struct {
	TotalTasks     int     `json:"totalTasks"`
	CompletedTasks int     `json:"completedTasks"`
	SuccessRate    int     `json:"successRate"`
	FocusHours     float64 `json:"focusHours"`
}
