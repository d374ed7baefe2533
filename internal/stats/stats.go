// Package stats holds the pure derivation logic that turns raw store rows
// into dashboard, progress, and profile view models. Nothing here performs
// I/O or fails: missing upstream data is coerced to zero values, matching
// the fallback behavior the clients rely on.
package stats

import (
	"math"

	"github.com/johnpaulpatigas/focusflow-api/internal/domain"
)

// Badge names in declaration order. Badges are recomputed fresh on every
// request from current counts; none of them is persisted, so a badge
// disappears if the counts regress (e.g. a completed task is deleted).
const (
	BadgeFocusStarter   = "Focus Starter"
	BadgeThreeDayStreak = "3-Day Streak"
	BadgeTaskMaster     = "Task Master"
	BadgeMarathonRunner = "Marathon Runner"
)

// Badge thresholds.
const (
	streakBadgeDays      = 3
	taskMasterCompleted  = 10
	marathonFocusMinutes = 500
)

// ComputeDashboardStats assembles the dashboard view model. Any input may
// independently be absent (nil slice, zero count) and is rendered as its
// zero value; upcoming tasks are never nil so the JSON field is always [].
func ComputeDashboardStats(tasksDueToday int, upcoming []domain.UpcomingTask, weekly []domain.WeeklyFocusRow, streak, dailyGoalMinutes int) domain.DashboardStats {
	if upcoming == nil {
		upcoming = []domain.UpcomingTask{}
	}
	if weekly == nil {
		weekly = []domain.WeeklyFocusRow{}
	}
	return domain.DashboardStats{
		TasksDueToday:    tasksDueToday,
		UpcomingTasks:    upcoming,
		CurrentStreak:    streak,
		WeeklyFocusHours: weekly,
		DailyGoalMinutes: dailyGoalMinutes,
	}
}

// ComputeProgressStats assembles the progress view model and applies the
// badge predicates in declaration order. totalFocusSessions is the length
// of durations, totalFocusMinutes its sum.
func ComputeProgressStats(weekly []domain.WeeklyFocusRow, completed []domain.CompletedTasksRow, streak, completedTasksCount int, durations []int) domain.ProgressStats {
	if weekly == nil {
		weekly = []domain.WeeklyFocusRow{}
	}
	if completed == nil {
		completed = []domain.CompletedTasksRow{}
	}

	totalFocusSessions := len(durations)
	totalFocusMinutes := 0
	for _, d := range durations {
		totalFocusMinutes += d
	}

	badges := []string{}
	if totalFocusSessions > 0 {
		badges = append(badges, BadgeFocusStarter)
	}
	if streak >= streakBadgeDays {
		badges = append(badges, BadgeThreeDayStreak)
	}
	if completedTasksCount >= taskMasterCompleted {
		badges = append(badges, BadgeTaskMaster)
	}
	if totalFocusMinutes >= marathonFocusMinutes {
		badges = append(badges, BadgeMarathonRunner)
	}

	return domain.ProgressStats{
		WeeklyFocusHours:       weekly,
		TasksCompletedOverTime: completed,
		StudyStreak:            streak,
		EarnedBadges:           badges,
	}
}

// ComputeProfileStats derives the profile aggregate block. successRate is
// round(completed/total*100) guarded against a zero total; focusHours is
// the total focus time in hours rounded to one decimal place.
func ComputeProfileStats(totalTasks, completedTasks int, durations []int) domain.ProfileStats {
	totalMinutes := 0
	for _, d := range durations {
		totalMinutes += d
	}

	successRate := 0
	if totalTasks > 0 {
		successRate = int(math.Round(float64(completedTasks) / float64(totalTasks) * 100))
	}

	focusHours := math.Round(float64(totalMinutes)/60*10) / 10

	return domain.ProfileStats{
		TotalTasks:     totalTasks,
		CompletedTasks: completedTasks,
		SuccessRate:    successRate,
		FocusHours:     focusHours,
	}
}
