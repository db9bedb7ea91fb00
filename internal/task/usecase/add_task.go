package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"zenith-planner/internal/model"
	"zenith-planner/internal/task"
	"zenith-planner/internal/task/repository"
)

const correctedNote = "Time automatically corrected for IST context"

// twelve hours; a larger gap between the extractor's time and the
// deterministic parse means the extractor misread the clock context.
const correctionThreshold = 12 * time.Hour

// AddTaskFromText runs the full interpretation pipeline: extract a
// structured candidate from raw text, reconcile its due time against a
// deterministic parse, normalize recurrence, and persist the task.
func (uc *implUseCase) AddTaskFromText(ctx context.Context, sc model.Scope, input task.AddTaskInput) (task.AddTaskOutput, error) {
	rawText := strings.TrimSpace(input.RawText)
	if rawText == "" {
		return task.AddTaskOutput{}, task.ErrEmptyInput
	}

	now := time.Now().In(uc.loc)

	cand, err := uc.extractor.Extract(ctx, rawText, now)
	if err != nil {
		uc.l.Errorf(ctx, "AddTaskFromText: extraction failed: %v", err)
		return task.AddTaskOutput{}, fmt.Errorf("%w: %v", task.ErrExtraction, err)
	}

	if strings.TrimSpace(cand.Title) == "" {
		return task.AddTaskOutput{}, task.ErrMissingTitle
	}

	category := strings.TrimSpace(cand.Category)
	if category == "" {
		category = model.DefaultCategory
	}

	// A pattern without the flag (or vice versa) is an extractor slip;
	// the pattern is the source of truth.
	pattern := strings.ToLower(strings.TrimSpace(cand.RepeatPattern))
	isRecurring := pattern != ""

	dueTime, notes := uc.reconcileDueTime(ctx, rawText, cand.DueTime, cand.UserNotes, now)

	created, err := uc.repo.CreateTask(ctx, sc, repository.CreateTaskOptions{
		Title:         strings.TrimSpace(cand.Title),
		DueTime:       dueTime,
		Category:      category,
		IsRecurring:   isRecurring,
		RepeatPattern: pattern,
		UserNotes:     notes,
	})
	if err != nil {
		return task.AddTaskOutput{}, err
	}

	uc.l.Infof(ctx, "AddTaskFromText: user=%d task=%d title=%q due=%v", sc.UserID, created.ID, created.Title, created.DueTime)

	dueInfo := ""
	if created.DueTime != nil {
		dueInfo = " scheduled for " + created.DueTime.In(uc.loc).Format(displayLayout) + " IST"
	}

	return task.AddTaskOutput{
		Task:    created,
		Message: fmt.Sprintf("✅ Task '%s'%s added successfully.", created.Title, dueInfo),
	}, nil
}

// reconcileDueTime validates the extractor's due time against the
// deterministic time parser and against the clock.
func (uc *implUseCase) reconcileDueTime(ctx context.Context, rawText, candDue, candNotes string, now time.Time) (*time.Time, string) {
	notes := candNotes

	due, ok := parseISOInLocation(candDue, uc.loc)
	if !ok {
		if candDue != "" {
			uc.l.Warnf(ctx, "reconcileDueTime: dropping unparseable due time %q", candDue)
		}
		return nil, notes
	}

	if manual, found := uc.dateMath.Resolve(rawText, now); found {
		if absDuration(due.Sub(manual)) > correctionThreshold {
			uc.l.Warnf(ctx, "reconcileDueTime: extractor suggested %s, deterministic parse suggests %s", due, manual)
			due = manual
			if notes == "" {
				notes = correctedNote
			}
		}
	}

	if due.Before(now) && !hasRelativeMarker(rawText) {
		due = due.AddDate(0, 0, 1)
		uc.l.Infof(ctx, "reconcileDueTime: past due time moved to %s", due)
	}

	return &due, notes
}
