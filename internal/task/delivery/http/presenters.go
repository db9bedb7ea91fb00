package http

import (
	"time"

	"zenith-planner/internal/model"
	"zenith-planner/internal/task"
)

// --- Request DTOs ---

type addReq struct {
	Text string `json:"text" binding:"required"`
}

func (r addReq) toInput() task.AddTaskInput {
	return task.AddTaskInput{RawText: r.Text}
}

// --- Response DTOs ---

type taskResp struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	DueTime       *time.Time `json:"due_time,omitempty"`
	Category      string     `json:"category"`
	IsCompleted   bool       `json:"is_completed"`
	IsRecurring   bool       `json:"is_recurring"`
	RepeatPattern string     `json:"repeat_pattern,omitempty"`
	UserNotes     string     `json:"user_notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:            t.ID,
		Title:         t.Title,
		DueTime:       t.DueTime,
		Category:      t.Category,
		IsCompleted:   t.IsCompleted,
		IsRecurring:   t.IsRecurring,
		RepeatPattern: t.RepeatPattern,
		UserNotes:     t.UserNotes,
		CreatedAt:     t.CreatedAt,
	}
}

type addResp struct {
	Task    taskResp `json:"task"`
	Message string   `json:"message"`
}

func (h *handler) newAddResp(out task.AddTaskOutput) addResp {
	return addResp{
		Task:    newTaskResp(out.Task),
		Message: out.Message,
	}
}

type statusResp struct {
	Message string `json:"message"`
}

type prioritizedTaskResp struct {
	taskResp
	TimeLeftSeconds *int64 `json:"time_left_seconds,omitempty"`
}

type listResp struct {
	Tasks []prioritizedTaskResp `json:"tasks"`
	Total int                   `json:"total"`
}

func (h *handler) newListResp(out []task.PrioritizedTask) listResp {
	tasks := make([]prioritizedTaskResp, len(out))
	for i, pt := range out {
		item := prioritizedTaskResp{taskResp: newTaskResp(pt.Task)}
		if pt.HasDueTime {
			secs := int64(pt.TimeLeft / time.Second)
			item.TimeLeftSeconds = &secs
		}
		tasks[i] = item
	}
	return listResp{Tasks: tasks, Total: len(tasks)}
}

type summaryMetricsResp struct {
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	CompletionRate int `json:"completion_rate"`
}

type summarySectionResp struct {
	Type    string              `json:"type"`
	Content string              `json:"content,omitempty"`
	Metrics *summaryMetricsResp `json:"metrics,omitempty"`
	Tasks   []taskResp          `json:"tasks,omitempty"`
}

type summaryResp struct {
	Sections []summarySectionResp `json:"sections"`
}

func (h *handler) newSummaryResp(out task.SummaryOutput) summaryResp {
	sections := make([]summarySectionResp, len(out.Sections))
	for i, s := range out.Sections {
		sec := summarySectionResp{
			Type:    string(s.Type),
			Content: s.Content,
		}
		if s.Metrics != nil {
			sec.Metrics = &summaryMetricsResp{
				Completed:      s.Metrics.Completed,
				Pending:        s.Metrics.Pending,
				CompletionRate: s.Metrics.CompletionRate,
			}
		}
		if len(s.Tasks) > 0 {
			tasks := make([]taskResp, len(s.Tasks))
			for j, t := range s.Tasks {
				tasks[j] = newTaskResp(t)
			}
			sec.Tasks = tasks
		}
		sections[i] = sec
	}
	return summaryResp{Sections: sections}
}
