package repository

import (
	"context"

	"zenith-planner/internal/model"
)

// TaskRepository is the interface for task data access operations.
// All operations are scoped to the calling user; a task owned by
// another user behaves as if it does not exist.
type TaskRepository interface {
	CreateTask(ctx context.Context, sc model.Scope, opt CreateTaskOptions) (model.Task, error)
	// GetTask returns the zero-value Task (ID 0) when no matching row exists.
	GetTask(ctx context.Context, sc model.Scope, id int64) (model.Task, error)
	ListTasks(ctx context.Context, sc model.Scope, opt ListTasksOptions) ([]model.Task, error)
	UpdateStatus(ctx context.Context, sc model.Scope, id int64, completed bool) error
	UpdateDueTime(ctx context.Context, sc model.Scope, id int64, opt UpdateDueTimeOptions) error
	// ResetRecurring moves a recurring task to its next due time and
	// reopens it in a single statement.
	ResetRecurring(ctx context.Context, sc model.Scope, id int64, opt UpdateDueTimeOptions) error
	DeleteTask(ctx context.Context, sc model.Scope, id int64) error
}

// UserRepository is the interface for user data access operations.
type UserRepository interface {
	GetOrCreateUser(ctx context.Context, email, name string) (model.User, error)
}

// Repository bundles all persistence concerns behind one constructor.
type Repository interface {
	TaskRepository
	UserRepository
}
