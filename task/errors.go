package task

import (
	"errors"
	"fmt"

	"github.com/amonks/triage/internal/validation"
)

var (
	// ErrInvalid is the class of errors caused by malformed input.
	ErrInvalid = errors.New("invalid input")

	// ErrNotFound is returned when no task has the requested ID.
	ErrNotFound = errors.New("task not found")

	// ErrPrecondition is the class of errors caused by an operation attempted
	// from the wrong status.
	ErrPrecondition = errors.New("precondition failed")
)

var (
	// ErrEmptyTitle is returned when a task title is empty.
	ErrEmptyTitle = fmt.Errorf("%w: title cannot be empty", ErrInvalid)

	// ErrTitleTooLong is returned when a task title exceeds MaxTitleLength.
	ErrTitleTooLong = fmt.Errorf("%w: title exceeds maximum length", ErrInvalid)

	// ErrInvalidPriority is returned when a priority is outside the known tiers.
	ErrInvalidPriority = fmt.Errorf("%w: invalid priority", ErrInvalid)

	// ErrInvalidOrigin is returned when an origin is outside the known channels.
	ErrInvalidOrigin = fmt.Errorf("%w: invalid origin", ErrInvalid)

	// ErrInvalidStatus is returned when an unknown status is provided.
	ErrInvalidStatus = fmt.Errorf("%w: invalid status", ErrInvalid)

	// ErrInvalidThreshold is returned when the archive threshold is not positive.
	ErrInvalidThreshold = fmt.Errorf("%w: archive threshold must be positive", ErrInvalid)

	// ErrInvalidID is returned when a task ID cannot be parsed.
	ErrInvalidID = fmt.Errorf("%w: task ID must be a positive integer", ErrInvalid)

	// ErrNotInProgress is returned when completing a task that was not started.
	ErrNotInProgress = fmt.Errorf("%w: task must be in progress", ErrPrecondition)

	// ErrArchived is returned when mutating the status of an archived task.
	ErrArchived = fmt.Errorf("%w: task is archived", ErrPrecondition)
)

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidatePriority checks if the priority is valid.
func ValidatePriority(priority Priority) error {
	if !priority.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidPriority, priority, Priorities())
	}
	return nil
}

// ValidateOrigin checks if the origin is valid.
func ValidateOrigin(origin Origin) error {
	if !origin.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidOrigin, origin, ValidOrigins())
	}
	return nil
}

// ValidateTask checks that a loaded record is internally consistent.
func ValidateTask(t *Task) error {
	if t.ID <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidID, t.ID)
	}
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if err := ValidatePriority(t.Priority); err != nil {
		return err
	}
	if !t.Status.IsValid() {
		return validation.FormatInvalidValueError(ErrInvalidStatus, t.Status, ValidStatuses())
	}
	if err := ValidateOrigin(t.Origin); err != nil {
		return err
	}
	return nil
}
