package task

import (
	"fmt"
	"strconv"

	internalstrings "github.com/amonks/triage/internal/strings"
	"github.com/amonks/triage/internal/validation"
)

// ParsePriority converts user input into a Priority.
func ParsePriority(value string) (Priority, error) {
	priority := Priority(internalstrings.NormalizeLowerTrimSpace(value))
	if err := ValidatePriority(priority); err != nil {
		return "", err
	}
	return priority, nil
}

// ParseOrigin converts user input into an Origin.
func ParseOrigin(value string) (Origin, error) {
	origin := Origin(internalstrings.NormalizeLowerTrimSpace(value))
	if err := ValidateOrigin(origin); err != nil {
		return "", err
	}
	return origin, nil
}

// ParseStatus converts user input into a Status.
func ParseStatus(value string) (Status, error) {
	status := Status(internalstrings.NormalizeLowerTrimSpace(value))
	if !status.IsValid() {
		return "", validation.FormatInvalidValueError(ErrInvalidStatus, status, ValidStatuses())
	}
	return status, nil
}

// ParseID converts user input into a task ID.
func ParseID(value string) (int, error) {
	id, err := strconv.Atoi(internalstrings.NormalizeLowerTrimSpace(value))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidID, value)
	}
	return id, nil
}
