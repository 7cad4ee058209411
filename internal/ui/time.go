package ui

import (
	"fmt"
	"time"

	internalage "github.com/amonks/triage/internal/age"
)

// TimestampLayout is the day-first layout used for displayed timestamps.
const TimestampLayout = "02/01/2006 15:04"

// FormatTimestamp formats a timestamp for display in local time.
func FormatTimestamp(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Local().Format(TimestampLayout)
}

// FormatDurationShort formats a duration using short units (s/m/h/d).
func FormatDurationShort(duration time.Duration) string {
	if duration < 0 {
		duration = 0
	}

	seconds := internalage.WholeSeconds(duration)
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}

	days := hours / 24
	return fmt.Sprintf("%dd", days)
}
