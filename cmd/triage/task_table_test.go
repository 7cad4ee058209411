package main

import (
	"strings"
	"testing"
	"time"

	"github.com/amonks/triage/task"
)

func TestFormatTaskTable(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	completedAt := now.Add(-30 * time.Minute)
	items := []task.Task{
		{
			ID:        1,
			Title:     "Reply to billing email",
			Priority:  task.PriorityUrgent,
			Status:    task.StatusPending,
			Origin:    task.OriginEmail,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:          12,
			Title:       "Reset password",
			Priority:    task.PriorityLow,
			Status:      task.StatusDone,
			Origin:      task.OriginPhone,
			CreatedAt:   now.Add(-90 * time.Minute),
			CompletedAt: &completedAt,
		},
	}

	got := formatTaskTable(items, now)

	expected := strings.Join([]string{
		"ID  PRI     STATUS   ORIGIN  AGE  DURATION  TITLE",
		"1   urgent  pending  email   2h   -         Reply to billing email",
		"12  low     done     phone   1h   1h        Reset password",
		"",
	}, "\n")
	if got != expected {
		t.Fatalf("unexpected table:\n%s\nwant:\n%s", got, expected)
	}
}

func TestFormatTaskListEmpty(t *testing.T) {
	got := formatTaskList(nil, time.Now())
	if got != "No tasks found.\n" {
		t.Fatalf("expected empty notice, got %q", got)
	}
}

func TestFormatTaskTableTruncatesTitle(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	items := []task.Task{{
		ID:        1,
		Title:     strings.Repeat("x", 80),
		Priority:  task.PriorityMedium,
		Status:    task.StatusPending,
		Origin:    task.OriginTicket,
		CreatedAt: now,
	}}

	got := formatTaskTable(items, now)
	if strings.Contains(got, strings.Repeat("x", 80)) {
		t.Fatalf("expected long title to be truncated, got %q", got)
	}
	if !strings.Contains(got, "...") {
		t.Fatalf("expected ellipsis, got %q", got)
	}
}

func TestLabelsAreStatusNamesWithoutColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	for _, status := range task.ValidStatuses() {
		if got := statusLabel(status); got != string(status) {
			t.Fatalf("expected %q, got %q", status, got)
		}
	}
	for _, priority := range task.Priorities() {
		if got := priorityLabel(priority); got != string(priority) {
			t.Fatalf("expected %q, got %q", priority, got)
		}
	}
}
