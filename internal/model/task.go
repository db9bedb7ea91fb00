package model

import "time"

// DefaultCategory is the sentinel category for tasks without one.
const DefaultCategory = "Others"

// Task is the central entity: one reminder/event owned by one user.
// DueTime, when set, is always attributable to the target timezone.
type Task struct {
	ID            int64
	UserID        int64
	Title         string
	DueTime       *time.Time // nil when no deadline was resolved
	Category      string
	IsCompleted   bool
	IsRecurring   bool
	RepeatPattern string // daily/weekly/monthly/yearly; set iff IsRecurring
	UserNotes     string
	CreatedAt     time.Time
}
