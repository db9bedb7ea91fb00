package usecase

import (
	"context"
	"sort"
	"time"

	"zenith-planner/internal/model"
	"zenith-planner/internal/task"
	"zenith-planner/internal/task/repository"
	"zenith-planner/pkg/datemath"
)

// ListPrioritized returns the user's pending non-event tasks ordered by
// urgency: dated tasks first with the least time left on top, undated
// tasks after.
func (uc *implUseCase) ListPrioritized(ctx context.Context, sc model.Scope) ([]task.PrioritizedTask, error) {
	pending := false
	tasks, err := uc.repo.ListTasks(ctx, sc, repository.ListTasksOptions{Completed: &pending})
	if err != nil {
		return nil, err
	}

	now := time.Now().In(uc.loc)

	var dated, undated []task.PrioritizedTask
	for _, t := range tasks {
		if IsEvent(t) {
			continue
		}
		if t.DueTime == nil {
			undated = append(undated, task.PrioritizedTask{Task: t})
			continue
		}

		t = uc.advanceYearlyIfPassed(ctx, sc, t, now)
		dated = append(dated, task.PrioritizedTask{
			Task:       t,
			TimeLeft:   t.DueTime.Sub(now),
			HasDueTime: true,
		})
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].TimeLeft < dated[j].TimeLeft
	})

	return append(dated, undated...), nil
}

// CountdownEvents returns the user's pending dated events ordered by
// time left.
func (uc *implUseCase) CountdownEvents(ctx context.Context, sc model.Scope) ([]task.PrioritizedTask, error) {
	pending := false
	tasks, err := uc.repo.ListTasks(ctx, sc, repository.ListTasksOptions{Completed: &pending})
	if err != nil {
		return nil, err
	}

	now := time.Now().In(uc.loc)

	var events []task.PrioritizedTask
	for _, t := range tasks {
		if t.DueTime == nil || !IsEvent(t) {
			continue
		}

		t = uc.advanceYearlyIfPassed(ctx, sc, t, now)
		events = append(events, task.PrioritizedTask{
			Task:       t,
			TimeLeft:   t.DueTime.Sub(now),
			HasDueTime: true,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].TimeLeft < events[j].TimeLeft
	})

	return events, nil
}

// advanceYearlyIfPassed rolls a birthday-like task whose date already
// passed forward one year and persists the new date. The returned task
// carries the advanced due time.
func (uc *implUseCase) advanceYearlyIfPassed(ctx context.Context, sc model.Scope, t model.Task, now time.Time) model.Task {
	if t.DueTime == nil || !IsYearlyRecurring(t) {
		return t
	}

	due := t.DueTime.In(uc.loc)
	if !due.Before(now) {
		return t
	}

	next := datemath.AddYears(due, 1)
	if err := uc.repo.UpdateDueTime(ctx, sc, t.ID, repository.UpdateDueTimeOptions{DueTime: next}); err != nil {
		uc.l.Errorf(ctx, "advanceYearlyIfPassed: task=%d: %v", t.ID, err)
		return t
	}

	t.DueTime = &next
	return t
}
