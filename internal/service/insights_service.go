package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/johnpaulpatigas/focusflow-api/internal/domain"
	"github.com/johnpaulpatigas/focusflow-api/internal/port"
)

const insightsSystemPrompt = "You are a friendly study coach for university students. " +
	"Given a student's current tasks and progress statistics, give short, concrete, " +
	"encouraging advice in markdown. Keep it under 200 words."

// InsightsRequest is the client-supplied snapshot the insights are based
// on. Both fields are optional.
type InsightsRequest struct {
	Tasks         []domain.Task         `json:"tasks"`
	ProgressStats *domain.ProgressStats `json:"progressStats"`
}

// InsightsService assembles a prompt from the student's tasks and progress
// stats and forwards it to the AI backend. One call, no retries.
type InsightsService struct {
	ai port.AIProvider
}

// NewInsightsService creates a new insights service.
func NewInsightsService(ai port.AIProvider) *InsightsService {
	return &InsightsService{ai: ai}
}

// GetInsights returns AI-generated study advice.
func (s *InsightsService) GetInsights(ctx context.Context, req InsightsRequest) (string, error) {
	prompt := BuildInsightsPrompt(req)

	text, err := s.ai.Chat(ctx, insightsSystemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("get insights: %w", err)
	}
	return text, nil
}

// BuildInsightsPrompt renders the snapshot into the user prompt.
func BuildInsightsPrompt(req InsightsRequest) string {
	var b strings.Builder

	b.WriteString("Here is my current situation:\n\n")

	if len(req.Tasks) > 0 {
		b.WriteString("My tasks:\n")
		for _, t := range req.Tasks {
			line := fmt.Sprintf("- %s (status: %s", t.Name, t.Status)
			if t.Priority != "" {
				line += ", priority: " + t.Priority
			}
			if t.Deadline != nil && *t.Deadline != "" {
				line += ", deadline: " + *t.Deadline
			}
			b.WriteString(line + ")\n")
		}
		b.WriteString("\n")
	} else {
		b.WriteString("I have no tasks right now.\n\n")
	}

	if ps := req.ProgressStats; ps != nil {
		fmt.Fprintf(&b, "My study streak is %d days.\n", ps.StudyStreak)
		if len(ps.EarnedBadges) > 0 {
			fmt.Fprintf(&b, "Badges I earned: %s.\n", strings.Join(ps.EarnedBadges, ", "))
		}
		totalMinutes := 0
		for _, row := range ps.WeeklyFocusHours {
			totalMinutes += row.TotalMinutes
		}
		fmt.Fprintf(&b, "I focused %d minutes this week.\n", totalMinutes)
	}

	b.WriteString("\nWhat should I focus on next?")
	return b.String()
}
