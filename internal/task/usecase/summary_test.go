package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"zenith-planner/internal/model"
	"zenith-planner/internal/task"
	"zenith-planner/internal/task/usecase"
	"zenith-planner/pkg/datemath"
)

func sectionTypes(out task.SummaryOutput) []task.SectionType {
	types := make([]task.SectionType, 0, len(out.Sections))
	for _, s := range out.Sections {
		types = append(types, s.Type)
	}
	return types
}

func findMetrics(t *testing.T, out task.SummaryOutput) *task.SummaryMetrics {
	t.Helper()
	for _, s := range out.Sections {
		if s.Type == task.SectionMetrics {
			if s.Metrics == nil {
				t.Fatal("metrics section without metrics")
			}
			return s.Metrics
		}
	}
	t.Fatal("no metrics section")
	return nil
}

func TestDailySummary(t *testing.T) {
	sc := model.Scope{UserID: 1}
	now := time.Now()

	newUC := func(repo *mockRepo) task.UseCase {
		dm, _ := datemath.NewParser(testTimezone)
		return usecase.New(&mockLogger{}, &mockExtractor{}, repo, dm)
	}

	t.Run("Completion Rate Rounded", func(t *testing.T) {
		repo := newMockRepo()
		for i := 0; i < 3; i++ {
			repo.seed(model.Task{UserID: 1, Title: fmt.Sprintf("Done %d", i), IsCompleted: true})
		}
		repo.seed(model.Task{UserID: 1, Title: "Open A"})
		repo.seed(model.Task{UserID: 1, Title: "Open B"})

		out, err := newUC(repo).DailySummary(context.Background(), sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		m := findMetrics(t, out)
		if m.Completed != 3 || m.Pending != 2 || m.CompletionRate != 60 {
			t.Errorf("metrics = %+v, want 3/2/60", m)
		}
	})

	t.Run("Empty Day Is Zero Rate", func(t *testing.T) {
		out, err := newUC(newMockRepo()).DailySummary(context.Background(), sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m := findMetrics(t, out); m.CompletionRate != 0 {
			t.Errorf("rate = %d, want 0", m.CompletionRate)
		}
	})

	t.Run("Overdue And Urgent Buckets", func(t *testing.T) {
		repo := newMockRepo()
		repo.seed(model.Task{UserID: 1, Title: "Pay rent", DueTime: timePtr(now.Add(-2 * time.Hour))})
		repo.seed(model.Task{UserID: 1, Title: "Fix sink", DueTime: timePtr(now.Add(3 * time.Hour))})
		repo.seed(model.Task{UserID: 1, Title: "Write essay", DueTime: timePtr(now.Add(72 * time.Hour))})

		out, err := newUC(repo).DailySummary(context.Background(), sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var overdueHeader, urgentHeader bool
		for i, s := range out.Sections {
			switch {
			case strings.HasPrefix(s.Content, "🚨 Overdue Tasks (1)"):
				overdueHeader = true
				if out.Sections[i+1].Type != task.SectionPendingList || out.Sections[i+1].Tasks[0].Title != "Pay rent" {
					t.Errorf("overdue list wrong: %+v", out.Sections[i+1])
				}
			case strings.HasPrefix(s.Content, "⚡ Urgent Tasks"):
				urgentHeader = true
				if out.Sections[i+1].Tasks[0].Title != "Fix sink" {
					t.Errorf("urgent list wrong: %+v", out.Sections[i+1])
				}
			}
		}
		if !overdueHeader || !urgentHeader {
			t.Errorf("missing buckets: overdue=%v urgent=%v", overdueHeader, urgentHeader)
		}
	})

	t.Run("Section Order Without Buckets", func(t *testing.T) {
		repo := newMockRepo()
		repo.seed(model.Task{UserID: 1, Title: "Done", IsCompleted: true})

		out, err := newUC(repo).DailySummary(context.Background(), sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []task.SectionType{
			task.SectionHeader, task.SectionMetrics,
			task.SectionSubheader, task.SectionCompletedList, task.SectionMotivation,
		}
		got := sectionTypes(out)
		if len(got) != len(want) {
			t.Fatalf("sections = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("section %d = %s, want %s", i, got[i], want[i])
			}
		}
		if !strings.HasPrefix(out.Sections[0].Content, "Daily Productivity Report - ") {
			t.Errorf("header = %q", out.Sections[0].Content)
		}
	})

	t.Run("Events Not Counted As Pending", func(t *testing.T) {
		repo := newMockRepo()
		repo.seed(model.Task{UserID: 1, Title: "Team meeting", DueTime: timePtr(now.Add(time.Hour))})
		repo.seed(model.Task{UserID: 1, Title: "Submit report"})

		out, err := newUC(repo).DailySummary(context.Background(), sc)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m := findMetrics(t, out); m.Pending != 1 {
			t.Errorf("pending = %d, want 1", m.Pending)
		}
	})

	t.Run("Motivation Tiers", func(t *testing.T) {
		tiers := []struct {
			completed int
			pending   int
			wantPart  string
		}{
			{4, 1, "Outstanding work"},
			{3, 2, "Great progress"},
			{2, 3, "Good effort"},
			{1, 4, "Every step counts"},
			{0, 5, "every expert was once a beginner"},
		}

		for _, tier := range tiers {
			repo := newMockRepo()
			for i := 0; i < tier.completed; i++ {
				repo.seed(model.Task{UserID: 1, Title: fmt.Sprintf("Done %d", i), IsCompleted: true})
			}
			for i := 0; i < tier.pending; i++ {
				repo.seed(model.Task{UserID: 1, Title: fmt.Sprintf("Open %d", i)})
			}

			out, err := newUC(repo).DailySummary(context.Background(), sc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			last := out.Sections[len(out.Sections)-1]
			if last.Type != task.SectionMotivation || !strings.Contains(last.Content, tier.wantPart) {
				t.Errorf("motivation for %d/%d = %q, want substring %q",
					tier.completed, tier.pending, last.Content, tier.wantPart)
			}
		}
	})
}
