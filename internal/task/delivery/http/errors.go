package http

import (
	"errors"

	"zenith-planner/internal/task"
)

// friendlyMessage translates expected interpretation failures into the
// messages shown to the user. Anything else is a real server error.
func (h *handler) friendlyMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return "❌ Please enter a task description.", true
	case errors.Is(err, task.ErrMissingTitle):
		return "❌ AI Error: The AI could not determine a title for your task. Please try rephrasing.", true
	case errors.Is(err, task.ErrExtraction):
		return "❌ AI Error: An error occurred while processing your request with the AI.", true
	default:
		return "", false
	}
}
