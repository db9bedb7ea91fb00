package usecase

import (
	"context"
	"fmt"

	"zenith-planner/internal/model"
	"zenith-planner/internal/task"
	"zenith-planner/internal/task/repository"
	"zenith-planner/pkg/datemath"
)

// MarkComplete finishes a task. A recurring task with a due time is
// reopened at its next occurrence instead of being closed for good.
func (uc *implUseCase) MarkComplete(ctx context.Context, sc model.Scope, taskID int64) (task.StatusOutput, error) {
	t, err := uc.repo.GetTask(ctx, sc, taskID)
	if err != nil {
		return task.StatusOutput{}, err
	}
	if t.ID == 0 {
		return task.StatusOutput{Message: "Task not found."}, nil
	}

	if t.IsRecurring && t.DueTime != nil {
		due := t.DueTime.In(uc.loc)
		if next, ok := datemath.NextOccurrence(t.RepeatPattern, due); ok {
			if err := uc.repo.ResetRecurring(ctx, sc, t.ID, repository.UpdateDueTimeOptions{DueTime: next}); err != nil {
				return task.StatusOutput{}, err
			}

			uc.l.Infof(ctx, "MarkComplete: recurring task=%d reset to %s", t.ID, next)
			return task.StatusOutput{
				Message: fmt.Sprintf("Task '%s' completed for today. Next one scheduled for %s.",
					t.Title, next.Format(displayLayout)+" IST"),
			}, nil
		}
		// Unknown pattern: fall through and close the task normally.
		uc.l.Warnf(ctx, "MarkComplete: task=%d has unrecognized repeat pattern %q", t.ID, t.RepeatPattern)
	}

	if err := uc.repo.UpdateStatus(ctx, sc, t.ID, true); err != nil {
		return task.StatusOutput{}, err
	}

	uc.l.Infof(ctx, "MarkComplete: task=%d closed", t.ID)
	return task.StatusOutput{Message: fmt.Sprintf("Task '%s' marked as complete.", t.Title)}, nil
}

// DeleteTask removes a task owned by the user.
func (uc *implUseCase) DeleteTask(ctx context.Context, sc model.Scope, taskID int64) (task.StatusOutput, error) {
	t, err := uc.repo.GetTask(ctx, sc, taskID)
	if err != nil {
		return task.StatusOutput{}, err
	}
	if t.ID == 0 {
		return task.StatusOutput{Message: "Task not found."}, nil
	}

	if err := uc.repo.DeleteTask(ctx, sc, taskID); err != nil {
		return task.StatusOutput{}, err
	}

	uc.l.Infof(ctx, "DeleteTask: user=%d task=%d", sc.UserID, taskID)
	return task.StatusOutput{Message: fmt.Sprintf("Task ID %d has been deleted.", taskID)}, nil
}
