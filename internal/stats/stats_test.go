package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/johnpaulpatigas/focusflow-api/internal/domain"
)

func TestComputeProgressStats_BadgeBoundaries(t *testing.T) {
	tests := []struct {
		name           string
		streak         int
		completedCount int
		durations      []int
		want           []string
	}{
		{
			name: "no activity earns nothing",
			want: []string{},
		},
		{
			name:      "single session earns focus starter",
			durations: []int{1},
			want:      []string{BadgeFocusStarter},
		},
		{
			name:   "streak of 2 is below the badge",
			streak: 2,
			want:   []string{},
		},
		{
			name:   "streak of 3 earns the streak badge",
			streak: 3,
			want:   []string{BadgeThreeDayStreak},
		},
		{
			name:           "9 completed tasks is below task master",
			completedCount: 9,
			want:           []string{},
		},
		{
			name:           "10 completed tasks earns task master",
			completedCount: 10,
			want:           []string{BadgeTaskMaster},
		},
		{
			name:      "499 focus minutes is below marathon runner",
			durations: []int{499},
			want:      []string{BadgeFocusStarter},
		},
		{
			name:      "500 focus minutes earns marathon runner",
			durations: []int{250, 250},
			want:      []string{BadgeFocusStarter, BadgeMarathonRunner},
		},
		{
			name:           "all badges come back in declaration order",
			streak:         7,
			completedCount: 12,
			durations:      []int{100, 200, 300},
			want:           []string{BadgeFocusStarter, BadgeThreeDayStreak, BadgeTaskMaster, BadgeMarathonRunner},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeProgressStats(nil, nil, tt.streak, tt.completedCount, tt.durations)
			assert.Equal(t, tt.want, got.EarnedBadges)
		})
	}
}

func TestComputeProgressStats_BadgesAreRecomputed(t *testing.T) {
	// Badges are derived fresh from current counts: once all focus
	// sessions are gone, Focus Starter disappears too.
	before := ComputeProgressStats(nil, nil, 0, 0, []int{25})
	assert.Contains(t, before.EarnedBadges, BadgeFocusStarter)

	after := ComputeProgressStats(nil, nil, 0, 0, []int{})
	assert.NotContains(t, after.EarnedBadges, BadgeFocusStarter)
	assert.Empty(t, after.EarnedBadges)
}

func TestComputeProgressStats_NilRowsBecomeEmptySlices(t *testing.T) {
	got := ComputeProgressStats(nil, nil, 0, 0, nil)

	assert.NotNil(t, got.WeeklyFocusHours)
	assert.NotNil(t, got.TasksCompletedOverTime)
	assert.NotNil(t, got.EarnedBadges)
}

func TestComputeProfileStats_ZeroTasksNoDivisionByZero(t *testing.T) {
	got := ComputeProfileStats(0, 0, []int{})

	assert.Equal(t, 0, got.SuccessRate)
	assert.Equal(t, 0.0, got.FocusHours)
}

func TestComputeProfileStats_Formulas(t *testing.T) {
	// 8/10 completed, 125 hours of focus time.
	durations := []int{125 * 60}
	got := ComputeProfileStats(10, 8, durations)

	assert.Equal(t, 10, got.TotalTasks)
	assert.Equal(t, 8, got.CompletedTasks)
	assert.Equal(t, 80, got.SuccessRate)
	assert.Equal(t, 125.0, got.FocusHours)
}

func TestComputeProfileStats_FocusHoursOneDecimal(t *testing.T) {
	// 95 minutes = 1.5833... hours, rounded to one decimal.
	got := ComputeProfileStats(1, 0, []int{95})
	assert.Equal(t, 1.6, got.FocusHours)

	// 33 minutes = 0.55 hours, rounds up.
	got = ComputeProfileStats(1, 0, []int{33})
	assert.Equal(t, 0.6, got.FocusHours)
}

func TestComputeProfileStats_SuccessRateRounds(t *testing.T) {
	got := ComputeProfileStats(3, 1, nil)
	assert.Equal(t, 33, got.SuccessRate)

	got = ComputeProfileStats(3, 2, nil)
	assert.Equal(t, 67, got.SuccessRate)
}

func TestComputeDashboardStats_Defaults(t *testing.T) {
	got := ComputeDashboardStats(0, nil, nil, 0, 0)

	assert.Equal(t, 0, got.TasksDueToday)
	assert.NotNil(t, got.UpcomingTasks)
	assert.Empty(t, got.UpcomingTasks)
	assert.NotNil(t, got.WeeklyFocusHours)
	assert.Equal(t, 0, got.CurrentStreak)
}

func TestComputeDashboardStats_PassesThroughInputs(t *testing.T) {
	deadline := "2026-09-01"
	upcoming := []domain.UpcomingTask{{Name: "Write essay", Deadline: &deadline}}
	weekly := []domain.WeeklyFocusRow{{Day: "Mon", TotalMinutes: 50}}

	got := ComputeDashboardStats(3, upcoming, weekly, 5, 240)

	assert.Equal(t, 3, got.TasksDueToday)
	assert.Equal(t, upcoming, got.UpcomingTasks)
	assert.Equal(t, weekly, got.WeeklyFocusHours)
	assert.Equal(t, 5, got.CurrentStreak)
	assert.Equal(t, 240, got.DailyGoalMinutes)
}
