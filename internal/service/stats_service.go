package service

import (
	"context"
	"log/slog"

	"github.com/johnpaulpatigas/focusflow-api/internal/domain"
	"github.com/johnpaulpatigas/focusflow-api/internal/port"
	"github.com/johnpaulpatigas/focusflow-api/internal/stats"
)

const upcomingTaskLimit = 2

// StatsService gathers raw rows from the store and hands them to the pure
// derivation functions. Store calls run in a fixed order and the first
// error wins; the derivation itself never fails.
type StatsService struct {
	store    port.StatsStore
	profiles port.ProfileStore
}

// NewStatsService creates a new stats service.
func NewStatsService(store port.StatsStore, profiles port.ProfileStore) *StatsService {
	return &StatsService{store: store, profiles: profiles}
}

// Dashboard builds the dashboard view for a user.
func (s *StatsService) Dashboard(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	dueToday, err := s.store.CountTasksDueToday(ctx, userID)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.store.ListUpcomingTasks(ctx, userID, upcomingTaskLimit)
	if err != nil {
		return nil, err
	}
	weekly, err := s.store.WeeklyFocusHours(ctx, userID)
	if err != nil {
		return nil, err
	}
	streak, err := s.store.CalculateStreak(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The daily goal is cosmetic on the dashboard; a missing profile row
	// falls back to the default instead of failing the whole view.
	goal := domain.DefaultDailyGoalMinutes
	if profile, err := s.profiles.GetProfile(ctx, userID); err == nil {
		goal = profile.DailyGoalMinutes
	} else {
		slog.Warn("dashboard profile lookup failed", "user_id", userID, "error", err)
	}

	view := stats.ComputeDashboardStats(dueToday, upcoming, weekly, streak, goal)
	return &view, nil
}

// Progress builds the progress view for a user, badges included.
func (s *StatsService) Progress(ctx context.Context, userID string) (*domain.ProgressStats, error) {
	weekly, err := s.store.WeeklyFocusHours(ctx, userID)
	if err != nil {
		return nil, err
	}
	completed, err := s.store.TasksCompletedLast7Days(ctx, userID)
	if err != nil {
		return nil, err
	}
	streak, err := s.store.CalculateStreak(ctx, userID)
	if err != nil {
		return nil, err
	}
	completedCount, err := s.store.CountCompletedTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	durations, err := s.store.ListFocusDurations(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := stats.ComputeProgressStats(weekly, completed, streak, completedCount, durations)
	return &view, nil
}

// ProfileStats builds the aggregate block for the profile page.
func (s *StatsService) ProfileStats(ctx context.Context, userID string) (*domain.ProfileStats, error) {
	total, err := s.store.CountTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	completed, err := s.store.CountCompletedTasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	durations, err := s.store.ListFocusDurations(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := stats.ComputeProfileStats(total, completed, durations)
	return &view, nil
}
