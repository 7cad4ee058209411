// Package task implements the task lifecycle for a single-user tracker.
//
// Tasks live in an in-memory Store seeded from disk at startup. An Engine
// applies every state transition against that store:
//   - Create adds a pending task
//   - SelectMostUrgent starts the most urgent pending task
//   - Complete, Delete and ArchiveOld move tasks toward a terminal status
//   - UpdatePriority changes priority in any status
package task

// Status represents the lifecycle state of a task.
type Status string

const (
	// StatusPending indicates the task is waiting to be started.
	StatusPending Status = "pending"

	// StatusInProgress indicates the task is being worked on.
	StatusInProgress Status = "in_progress"

	// StatusDone indicates the task has been completed.
	StatusDone Status = "done"

	// StatusArchived indicates the task was moved to the archive.
	StatusArchived Status = "archived"

	// StatusDeleted indicates the task has been logically deleted.
	StatusDeleted Status = "deleted"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusDone, StatusArchived, StatusDeleted}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// IsTerminal returns true when no transition leaves the status.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusArchived, StatusDeleted:
		return true
	case StatusPending, StatusInProgress, StatusDone:
		return false
	default:
		return false
	}
}

// Priority represents the urgency tier of a task.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium" // default
	PriorityLow    Priority = "low"
)

// Priorities returns the priority tiers from most to least urgent.
// Selection scans tiers in this order.
func Priorities() []Priority {
	return []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}
}

// IsValid returns true if the priority is a known valid value.
func (p Priority) IsValid() bool {
	for _, valid := range Priorities() {
		if p == valid {
			return true
		}
	}
	return false
}

// Origin records where a task came from.
type Origin string

const (
	OriginEmail  Origin = "email"
	OriginPhone  Origin = "phone"
	OriginTicket Origin = "ticket"
)

// ValidOrigins returns all valid origin values.
func ValidOrigins() []Origin {
	return []Origin{OriginEmail, OriginPhone, OriginTicket}
}

// IsValid returns true if the origin is a known valid value.
func (o Origin) IsValid() bool {
	for _, valid := range ValidOrigins() {
		if o == valid {
			return true
		}
	}
	return false
}

// MaxTitleLength is the maximum allowed length for a task title.
const MaxTitleLength = 500

// DefaultArchiveAfterDays is how long a done task waits before ArchiveOld
// moves it to the archive.
const DefaultArchiveAfterDays = 7
