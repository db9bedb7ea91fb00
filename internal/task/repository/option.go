package repository

import "time"

// CreateTaskOptions holds the parameters for inserting a task.
type CreateTaskOptions struct {
	Title         string
	DueTime       *time.Time // nil when no due time was resolved
	Category      string
	IsRecurring   bool
	RepeatPattern string
	UserNotes     string
}

// ListTasksOptions holds the parameters for listing tasks.
type ListTasksOptions struct {
	Completed *bool // nil lists both completed and pending tasks
}

// UpdateDueTimeOptions holds the parameters for rescheduling a task.
type UpdateDueTimeOptions struct {
	DueTime time.Time
}
