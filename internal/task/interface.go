package task

import (
	"context"

	"zenith-planner/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// AddTaskFromText extracts a structured task from free-form natural
	// language, reconciles it against the deterministic time parser, and
	// persists it for the scoped user.
	AddTaskFromText(ctx context.Context, sc model.Scope, input AddTaskInput) (AddTaskOutput, error)

	// ListPrioritized returns the user's open, non-event tasks ordered by
	// urgency: soonest due first (overdue before everything), then tasks
	// without a due time in creation order.
	ListPrioritized(ctx context.Context, sc model.Scope) ([]PrioritizedTask, error)

	// CountdownEvents returns the user's open countdown-worthy events with
	// their remaining time, soonest first.
	CountdownEvents(ctx context.Context, sc model.Scope) ([]PrioritizedTask, error)

	// MarkComplete completes a task. Recurring tasks with a due time are
	// rescheduled to their next occurrence instead of being terminated.
	MarkComplete(ctx context.Context, sc model.Scope, taskID int64) (StatusOutput, error)

	// DeleteTask removes the user's task.
	DeleteTask(ctx context.Context, sc model.Scope, taskID int64) (StatusOutput, error)

	// DailySummary assembles the structured daily productivity digest.
	DailySummary(ctx context.Context, sc model.Scope) (SummaryOutput, error)
}
