package task

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorClasses(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		class error
	}{
		{"empty title", ErrEmptyTitle, ErrInvalid},
		{"title too long", ErrTitleTooLong, ErrInvalid},
		{"priority", ErrInvalidPriority, ErrInvalid},
		{"origin", ErrInvalidOrigin, ErrInvalid},
		{"status", ErrInvalidStatus, ErrInvalid},
		{"threshold", ErrInvalidThreshold, ErrInvalid},
		{"id", ErrInvalidID, ErrInvalid},
		{"not in progress", ErrNotInProgress, ErrPrecondition},
		{"archived", ErrArchived, ErrPrecondition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.class) {
				t.Fatalf("expected %v to wrap %v", tt.err, tt.class)
			}
		})
	}
}

func TestValidateTitle(t *testing.T) {
	if err := ValidateTitle(""); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if err := ValidateTitle(strings.Repeat("a", MaxTitleLength)); err != nil {
		t.Fatalf("expected max length title to be valid, got %v", err)
	}
	if err := ValidateTitle(strings.Repeat("a", MaxTitleLength+1)); !errors.Is(err, ErrTitleTooLong) {
		t.Fatalf("expected ErrTitleTooLong, got %v", err)
	}
}

func TestValidatePriority_ListsValidValues(t *testing.T) {
	err := ValidatePriority(Priority("someday"))
	if err == nil {
		t.Fatal("expected error")
	}
	want := `invalid input: invalid priority: "someday" (valid: urgent, high, medium, low)`
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestValidateTask(t *testing.T) {
	valid := Task{ID: 1, Title: "Call back", Priority: PriorityHigh, Status: StatusPending, Origin: OriginPhone}
	if err := ValidateTask(&valid); err != nil {
		t.Fatalf("expected valid task, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Task)
		want   error
	}{
		{"zero id", func(t *Task) { t.ID = 0 }, ErrInvalidID},
		{"empty title", func(t *Task) { t.Title = "" }, ErrEmptyTitle},
		{"bad priority", func(t *Task) { t.Priority = "p0" }, ErrInvalidPriority},
		{"bad status", func(t *Task) { t.Status = "fazendo" }, ErrInvalidStatus},
		{"bad origin", func(t *Task) { t.Origin = "fax" }, ErrInvalidOrigin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := valid
			tt.mutate(&item)
			if err := ValidateTask(&item); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
