package task

import (
	"time"

	internalage "github.com/amonks/triage/internal/age"
)

// AgeData computes the display age and whether timing data exists.
func AgeData(item Task, now time.Time) (time.Duration, bool) {
	return internalage.AgeData(item.CreatedAt, now)
}

// DurationData computes the time between creation and completion and
// whether the task has completed.
func DurationData(item Task) (time.Duration, bool) {
	if item.CompletedAt == nil {
		return 0, false
	}
	return internalage.DurationData(item.CreatedAt, *item.CompletedAt)
}
