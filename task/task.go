package task

import "time"

// Task is a single tracked work item.
type Task struct {
	// ID is a positive integer, unique and never reused.
	ID int `json:"id"`

	// Title is the short summary of the task (max 500 chars).
	Title string `json:"title"`

	// Description provides additional context about the task.
	Description string `json:"description"`

	// Priority is the urgency tier used by SelectMostUrgent.
	Priority Priority `json:"priority"`

	// Status is the current lifecycle state.
	Status Status `json:"status"`

	// Origin records the channel the task arrived through.
	Origin Origin `json:"origin"`

	// CreatedAt is when the task was created.
	CreatedAt time.Time `json:"created_at"`

	// CompletedAt is when the task was marked done (nil until then).
	CompletedAt *time.Time `json:"completed_at"`
}

func (t Task) clone() Task {
	if t.CompletedAt != nil {
		completedAt := *t.CompletedAt
		t.CompletedAt = &completedAt
	}
	return t
}
