// Package age computes display ages and durations for timestamps.
package age

import "time"

// AgeData computes the time elapsed since createdAt and whether timing data exists.
func AgeData(createdAt time.Time, now time.Time) (time.Duration, bool) {
	if createdAt.IsZero() {
		return 0, false
	}
	age := now.Sub(createdAt)
	if age < 0 {
		age = 0
	}
	return age, true
}

// DurationData computes the span between startedAt and completedAt and
// whether both timestamps exist.
func DurationData(startedAt time.Time, completedAt time.Time) (time.Duration, bool) {
	if startedAt.IsZero() || completedAt.IsZero() {
		return 0, false
	}
	return completedAt.Sub(startedAt), true
}

// WholeSeconds truncates a duration to whole seconds.
func WholeSeconds(duration time.Duration) int64 {
	return int64(duration / time.Second)
}
