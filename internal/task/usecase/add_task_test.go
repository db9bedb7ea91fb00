package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"zenith-planner/internal/model"
	"zenith-planner/internal/task"
	"zenith-planner/internal/task/extraction"
	"zenith-planner/internal/task/usecase"
	"zenith-planner/pkg/datemath"
)

const testTimezone = "Asia/Kolkata"

func newAddTaskUC(t *testing.T, ext *mockExtractor, repo *mockRepo) task.UseCase {
	t.Helper()
	dm, err := datemath.NewParser(testTimezone)
	if err != nil {
		t.Fatalf("failed to build parser: %v", err)
	}
	return usecase.New(&mockLogger{}, ext, repo, dm)
}

func TestAddTaskFromText(t *testing.T) {
	sc := model.Scope{UserID: 1}
	loc, _ := time.LoadLocation(testTimezone)

	t.Run("Empty Input Error", func(t *testing.T) {
		uc := newAddTaskUC(t, &mockExtractor{}, newMockRepo())
		_, err := uc.AddTaskFromText(context.Background(), sc, task.AddTaskInput{RawText: "   "})
		if !errors.Is(err, task.ErrEmptyInput) {
			t.Errorf("expected ErrEmptyInput, got %v", err)
		}
	})

	t.Run("Extraction Error", func(t *testing.T) {
		uc := newAddTaskUC(t, &mockExtractor{err: errors.New("service down")}, newMockRepo())
		_, err := uc.AddTaskFromText(context.Background(), sc, task.AddTaskInput{RawText: "call mom"})
		if !errors.Is(err, task.ErrExtraction) {
			t.Errorf("expected ErrExtraction, got %v", err)
		}
	})

	t.Run("Missing Title Error", func(t *testing.T) {
		ext := &mockExtractor{cand: extraction.Candidate{Title: "  "}}
		uc := newAddTaskUC(t, ext, newMockRepo())
		_, err := uc.AddTaskFromText(context.Background(), sc, task.AddTaskInput{RawText: "hmm"})
		if !errors.Is(err, task.ErrMissingTitle) {
			t.Errorf("expected ErrMissingTitle, got %v", err)
		}
	})

	t.Run("Success With Future Due Time", func(t *testing.T) {
		ext := &mockExtractor{cand: extraction.Candidate{
			Title:    "Call Mom",
			DueTime:  "2099-01-02T15:04:00",
			Category: "Personal",
		}}
		repo := newMockRepo()
		uc := newAddTaskUC(t, ext, repo)

		out, err := uc.AddTaskFromText(context.Background(), sc, task.AddTaskInput{RawText: "call mom on friday"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(out.Message, "✅ Task 'Call Mom' scheduled for ") {
			t.Errorf("unexpected message: %q", out.Message)
		}
		if !strings.Contains(out.Message, "at 03:04 PM IST") || !strings.HasSuffix(out.Message, "added successfully.") {
			t.Errorf("unexpected message: %q", out.Message)
		}
		if out.Task.DueTime == nil {
			t.Fatal("expected stored due time")
		}
		if got := out.Task.DueTime.In(loc).Format("2006-01-02 15:04"); got != "2099-01-02 15:04" {
			t.Errorf("stored due time = %s", got)
		}
	})

	t.Run("No Due Time Resolved", func(t *testing.T) {
		ext := &mockExtractor{cand: extraction.Candidate{Title: "Buy groceries"}}
		uc := newAddTaskUC(t, ext, newMockRepo())

		out, err := uc.AddTaskFromText(context.Background(), sc, task.AddTaskInput{RawText: "buy groceries"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Message != "✅ Task 'Buy groceries' added successfully." {
			t.Errorf("unexpected message: %q", out.Message)
		}
		if out.Task.DueTime != nil {
			t.Errorf("expected no due time, got %v", out.Task.DueTime)
		}
	})

	t.Run("Unparseable Due Time Dropped", func(t *testing.T) {
		ext := &mockExtractor{cand: extraction.Candidate{Title: "Buy milk", DueTime: "soonish"}}
		uc := newAddTaskUC(t, ext, newMockRepo())

		out, err := uc.AddTaskFromText(context.Background(), sc, task.AddTaskInput{RawText: "buy milk"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.DueTime != nil {
			t.Errorf("expected invalid due time to be dropped, got %v", out.Task.DueTime)
		}
	})

	t.Run("Default Category", func(t *testing.T) {
		ext := &mockExtractor{cand: extraction.Candidate{Title: "Buy milk"}}
		uc := newAddTaskUC(t, ext, newMockRepo())

		out, err := uc.AddTaskFromText(context.Background(), sc, task.AddTaskInput{RawText: "buy milk"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.Category != model.DefaultCategory {
			t.Errorf("category = %q, want %q", out.Task.Category, model.DefaultCategory)
		}
	})

	t.Run("Recurrence Follows Pattern", func(t *testing.T) {
		ext := &mockExtractor{cand: extraction.Candidate{
			Title:         "Dad's Birthday",
			Category:      "Personal",
			IsRecurring:   false,
			RepeatPattern: " Yearly ",
		}}
		uc := newAddTaskUC(t, ext, newMockRepo())

		out, err := uc.AddTaskFromText(context.Background(), sc, task.AddTaskInput{RawText: "dad's birthday nov 11"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Task.IsRecurring || out.Task.RepeatPattern != "yearly" {
			t.Errorf("recurrence = (%v, %q), want (true, yearly)", out.Task.IsRecurring, out.Task.RepeatPattern)
		}
	})

	t.Run("Flag Without Pattern Cleared", func(t *testing.T) {
		ext := &mockExtractor{cand: extraction.Candidate{Title: "Water plants", IsRecurring: true}}
		uc := newAddTaskUC(t, ext, newMockRepo())

		out, err := uc.AddTaskFromText(context.Background(), sc, task.AddTaskInput{RawText: "water plants"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.IsRecurring {
			t.Error("recurring flag without pattern should be cleared")
		}
	})

	t.Run("Large Divergence Corrected", func(t *testing.T) {
		now := time.Now().In(loc)
		// Extractor puts the dinner two days out; the text says 9:30 pm.
		wrong := now.AddDate(0, 0, 3)
		ext := &mockExtractor{cand: extraction.Candidate{
			Title:   "Dinner with family",
			DueTime: wrong.Format("2006-01-02T15:04:05"),
		}}
		uc := newAddTaskUC(t, ext, newMockRepo())

		out, err := uc.AddTaskFromText(context.Background(), sc, task.AddTaskInput{RawText: "dinner with family at 9:30 pm"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.DueTime == nil {
			t.Fatal("expected due time")
		}
		got := out.Task.DueTime.In(loc)
		if got.Hour() != 21 || got.Minute() != 30 {
			t.Errorf("corrected clock = %02d:%02d, want 21:30", got.Hour(), got.Minute())
		}
		if out.Task.UserNotes != "Time automatically corrected for IST context" {
			t.Errorf("notes = %q", out.Task.UserNotes)
		}
	})

	t.Run("Correction Keeps Existing Notes", func(t *testing.T) {
		now := time.Now().In(loc)
		wrong := now.AddDate(0, 0, 3)
		ext := &mockExtractor{cand: extraction.Candidate{
			Title:     "Dinner with family",
			DueTime:   wrong.Format("2006-01-02T15:04:05"),
			UserNotes: "bring cake",
		}}
		uc := newAddTaskUC(t, ext, newMockRepo())

		out, err := uc.AddTaskFromText(context.Background(), sc, task.AddTaskInput{RawText: "dinner with family at 9:30 pm"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.UserNotes != "bring cake" {
			t.Errorf("notes = %q, want original preserved", out.Task.UserNotes)
		}
	})

	t.Run("Past Due Time Moved To Tomorrow", func(t *testing.T) {
		now := time.Now().In(loc)
		past := now.Add(-2 * time.Hour)
		ext := &mockExtractor{cand: extraction.Candidate{
			Title:   "Submit report",
			DueTime: past.Format("2006-01-02T15:04:05"),
		}}
		uc := newAddTaskUC(t, ext, newMockRepo())

		out, err := uc.AddTaskFromText(context.Background(), sc, task.AddTaskInput{RawText: "submit report"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.DueTime == nil {
			t.Fatal("expected due time")
		}
		want, _ := time.ParseInLocation("2006-01-02T15:04:05", past.Format("2006-01-02T15:04:05"), loc)
		want = want.AddDate(0, 0, 1)
		if !out.Task.DueTime.Equal(want) {
			t.Errorf("due = %v, want %v", out.Task.DueTime, want)
		}
	})

	t.Run("Relative Marker Keeps Past Due Time", func(t *testing.T) {
		now := time.Now().In(loc)
		past := now.Add(-1 * time.Hour)
		ext := &mockExtractor{cand: extraction.Candidate{
			Title:   "Check the oven",
			DueTime: past.Format("2006-01-02T15:04:05"),
		}}
		uc := newAddTaskUC(t, ext, newMockRepo())

		out, err := uc.AddTaskFromText(context.Background(), sc, task.AddTaskInput{RawText: "the timer went off an hour ago, check the oven"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want, _ := time.ParseInLocation("2006-01-02T15:04:05", past.Format("2006-01-02T15:04:05"), loc)
		if !out.Task.DueTime.Equal(want) {
			t.Errorf("due = %v, want untouched %v", out.Task.DueTime, want)
		}
	})

	t.Run("Repository Error Propagated", func(t *testing.T) {
		repo := newMockRepo()
		repo.failCreate = fmt.Errorf("insert failed")
		ext := &mockExtractor{cand: extraction.Candidate{Title: "Buy milk"}}
		uc := newAddTaskUC(t, ext, repo)

		if _, err := uc.AddTaskFromText(context.Background(), sc, task.AddTaskInput{RawText: "buy milk"}); err == nil {
			t.Error("expected repository error")
		}
	})
}
