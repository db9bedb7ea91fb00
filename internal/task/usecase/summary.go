package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"zenith-planner/internal/model"
	"zenith-planner/internal/task"
	"zenith-planner/internal/task/repository"
)

const headerLayout = "Monday, January 02, 2006"

// DailySummary builds the daily productivity report: counts, overdue
// and urgent buckets, completed list, and a motivational closer.
func (uc *implUseCase) DailySummary(ctx context.Context, sc model.Scope) (task.SummaryOutput, error) {
	all, err := uc.repo.ListTasks(ctx, sc, repository.ListTasksOptions{})
	if err != nil {
		return task.SummaryOutput{}, err
	}

	now := time.Now().In(uc.loc)

	var completed, pending []model.Task
	for _, t := range all {
		switch {
		case t.IsCompleted:
			completed = append(completed, t)
		case !IsEvent(t):
			pending = append(pending, t)
		}
	}

	total := len(completed) + len(pending)
	rate := 0
	if total > 0 {
		rate = int(math.Round(float64(len(completed)) / float64(total) * 100))
	}

	var overdue, urgent []model.Task
	for _, t := range pending {
		if t.DueTime == nil {
			continue
		}
		left := t.DueTime.Sub(now)
		switch {
		case left < 0:
			overdue = append(overdue, t)
		case left < 24*time.Hour:
			urgent = append(urgent, t)
		}
	}

	sections := []task.SummarySection{
		{
			Type:    task.SectionHeader,
			Content: fmt.Sprintf("Daily Productivity Report - %s (IST)", now.Format(headerLayout)),
		},
		{
			Type: task.SectionMetrics,
			Metrics: &task.SummaryMetrics{
				Completed:      len(completed),
				Pending:        len(pending),
				CompletionRate: rate,
			},
		},
	}

	if len(overdue) > 0 {
		sections = append(sections,
			task.SummarySection{Type: task.SectionSubheader, Content: fmt.Sprintf("🚨 Overdue Tasks (%d)", len(overdue))},
			task.SummarySection{Type: task.SectionPendingList, Tasks: overdue},
		)
	}

	if len(urgent) > 0 {
		sections = append(sections,
			task.SummarySection{Type: task.SectionSubheader, Content: "⚡ Urgent Tasks (Due within 24 hours)"},
			task.SummarySection{Type: task.SectionPendingList, Tasks: urgent},
		)
	}

	sections = append(sections,
		task.SummarySection{Type: task.SectionSubheader, Content: fmt.Sprintf("✅ Completed Tasks (%d)", len(completed))},
		task.SummarySection{Type: task.SectionCompletedList, Tasks: completed},
		task.SummarySection{Type: task.SectionMotivation, Content: motivationFor(rate)},
	)

	return task.SummaryOutput{Sections: sections}, nil
}

func motivationFor(rate int) string {
	switch {
	case rate >= 80:
		return "Outstanding work! You're crushing your goals! 🔥🎯"
	case rate >= 60:
		return "Great progress! Keep up the excellent work! 💪✨"
	case rate >= 40:
		return "Good effort! You're on the right track. Stay focused! 🚀📈"
	case rate >= 20:
		return "Every step counts! Let's tackle those tasks together! 🤝💼"
	default:
		return "Don't worry, every expert was once a beginner! Let's start small and build momentum! 🌱💪"
	}
}
