package extraction

import (
	"context"
	"time"
)

// Candidate is the raw structured record produced by the extraction
// service for one task description. There is no contract on
// correctness; the reconciler treats every field as advisory.
type Candidate struct {
	Title         string `json:"title"`
	DueTime       string `json:"due_time"` // ISO-8601 string, may be naive; empty when absent
	Category      string `json:"category"`
	IsRecurring   bool   `json:"is_recurring"`
	RepeatPattern string `json:"repeat_pattern"`
	UserNotes     string `json:"user_notes"`
}

// Extractor converts free-form text into a candidate task record.
// Implementations are remote, fallible and nondeterministic; the
// reconciler and tests substitute deterministic stubs.
type Extractor interface {
	Extract(ctx context.Context, text string, ref time.Time) (Candidate, error)
}
