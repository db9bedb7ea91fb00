package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput   = errors.New("task description is empty")
	ErrMissingTitle = errors.New("no usable title in extracted task")
	ErrExtraction   = errors.New("extraction service failed")
)
