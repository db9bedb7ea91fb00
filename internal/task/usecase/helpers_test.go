package usecase_test

import (
	"context"
	"time"

	"zenith-planner/internal/model"
	"zenith-planner/internal/task/extraction"
	"zenith-planner/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock extractor returning a fixed candidate
type mockExtractor struct {
	cand extraction.Candidate
	err  error
}

func (m *mockExtractor) Extract(ctx context.Context, text string, ref time.Time) (extraction.Candidate, error) {
	return m.cand, m.err
}

// In-memory task repository scoped by user
type mockRepo struct {
	tasks  map[int64]model.Task
	nextID int64

	dueTimeUpdates map[int64]time.Time
	recurringReset map[int64]time.Time
	statusUpdates  map[int64]bool

	failCreate error
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		tasks:          map[int64]model.Task{},
		nextID:         1,
		dueTimeUpdates: map[int64]time.Time{},
		recurringReset: map[int64]time.Time{},
		statusUpdates:  map[int64]bool{},
	}
}

func (m *mockRepo) seed(t model.Task) model.Task {
	if t.ID == 0 {
		t.ID = m.nextID
		m.nextID++
	} else if t.ID >= m.nextID {
		m.nextID = t.ID + 1
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}
	m.tasks[t.ID] = t
	return t
}

func (m *mockRepo) CreateTask(ctx context.Context, sc model.Scope, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.failCreate != nil {
		return model.Task{}, m.failCreate
	}
	return m.seed(model.Task{
		UserID:        sc.UserID,
		Title:         opt.Title,
		DueTime:       opt.DueTime,
		Category:      opt.Category,
		IsRecurring:   opt.IsRecurring,
		RepeatPattern: opt.RepeatPattern,
		UserNotes:     opt.UserNotes,
	}), nil
}

func (m *mockRepo) GetTask(ctx context.Context, sc model.Scope, id int64) (model.Task, error) {
	t, ok := m.tasks[id]
	if !ok || t.UserID != sc.UserID {
		return model.Task{}, nil
	}
	return t, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, sc model.Scope, opt repository.ListTasksOptions) ([]model.Task, error) {
	var out []model.Task
	for id := int64(1); id < m.nextID; id++ {
		t, ok := m.tasks[id]
		if !ok || t.UserID != sc.UserID {
			continue
		}
		if opt.Completed != nil && t.IsCompleted != *opt.Completed {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *mockRepo) UpdateStatus(ctx context.Context, sc model.Scope, id int64, completed bool) error {
	m.statusUpdates[id] = completed
	if t, ok := m.tasks[id]; ok && t.UserID == sc.UserID {
		t.IsCompleted = completed
		m.tasks[id] = t
	}
	return nil
}

func (m *mockRepo) UpdateDueTime(ctx context.Context, sc model.Scope, id int64, opt repository.UpdateDueTimeOptions) error {
	m.dueTimeUpdates[id] = opt.DueTime
	if t, ok := m.tasks[id]; ok && t.UserID == sc.UserID {
		due := opt.DueTime
		t.DueTime = &due
		m.tasks[id] = t
	}
	return nil
}

func (m *mockRepo) ResetRecurring(ctx context.Context, sc model.Scope, id int64, opt repository.UpdateDueTimeOptions) error {
	m.recurringReset[id] = opt.DueTime
	if t, ok := m.tasks[id]; ok && t.UserID == sc.UserID {
		due := opt.DueTime
		t.DueTime = &due
		t.IsCompleted = false
		m.tasks[id] = t
	}
	return nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, sc model.Scope, id int64) error {
	if t, ok := m.tasks[id]; ok && t.UserID == sc.UserID {
		delete(m.tasks, id)
	}
	return nil
}

func timePtr(t time.Time) *time.Time { return &t }
