package task

import (
	"time"

	"zenith-planner/internal/model"
)

// AddTaskInput is the input for natural-language task creation.
type AddTaskInput struct {
	RawText string // Free-form task description from the user
}

// AddTaskOutput is the result of a successful task creation.
type AddTaskOutput struct {
	Task    model.Task
	Message string // User-facing confirmation string
}

// PrioritizedTask is a task with its derived remaining time. TimeLeft
// is computed at read time and never persisted; it is negative for
// overdue tasks and meaningless when HasDueTime is false.
type PrioritizedTask struct {
	Task       model.Task
	TimeLeft   time.Duration
	HasDueTime bool
}

// StatusOutput carries the human-readable result of a mutation.
type StatusOutput struct {
	Message string
}

// SectionType names one block of the daily summary.
type SectionType string

const (
	SectionHeader        SectionType = "header"
	SectionMetrics       SectionType = "metric"
	SectionSubheader     SectionType = "subheader"
	SectionPendingList   SectionType = "pending_list"
	SectionCompletedList SectionType = "completed_list"
	SectionMotivation    SectionType = "motivation"
)

// SummaryMetrics holds the digest completion statistics.
type SummaryMetrics struct {
	Completed      int
	Pending        int
	CompletionRate int // rounded percentage, 0 when there are no tasks
}

// SummarySection is one ordered block of the daily summary. Only the
// fields relevant to its Type are set; the aggregator assembles
// structure, rendering belongs to the presentation layer.
type SummarySection struct {
	Type    SectionType
	Content string
	Metrics *SummaryMetrics
	Tasks   []model.Task
}

// SummaryOutput is the ordered daily digest.
type SummaryOutput struct {
	Sections []SummarySection
}
