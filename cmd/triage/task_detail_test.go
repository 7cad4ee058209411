package main

import (
	"strings"
	"testing"
	"time"

	"github.com/amonks/triage/task"
)

func TestFormatTaskDetailCompleted(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	createdAt := time.Date(2025, 3, 7, 14, 5, 0, 0, time.Local)
	completedAt := createdAt.Add(90 * time.Second)
	item := task.Task{
		ID:          4,
		Title:       "Call the customer back",
		Priority:    task.PriorityHigh,
		Status:      task.StatusDone,
		Origin:      task.OriginPhone,
		CreatedAt:   createdAt,
		CompletedAt: &completedAt,
	}

	got := formatTaskDetail(item)

	expected := strings.Join([]string{
		"ID:       4",
		"Title:    Call the customer back",
		"Status:   done",
		"Priority: high",
		"Origin:   phone",
		"Created:  07/03/2025 14:05",
		"Completed: 07/03/2025 14:06",
		"Duration: 90 seconds",
		"",
	}, "\n")
	if got != expected {
		t.Fatalf("unexpected detail:\n%s\nwant:\n%s", got, expected)
	}
}

func TestFormatTaskDetailNotCompleted(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	item := task.Task{
		ID:        2,
		Title:     "Triage ticket",
		Priority:  task.PriorityMedium,
		Status:    task.StatusInProgress,
		Origin:    task.OriginTicket,
		CreatedAt: time.Date(2025, 3, 7, 14, 5, 0, 0, time.Local),
	}

	got := formatTaskDetail(item)
	if !strings.Contains(got, "Not completed.\n") {
		t.Fatalf("expected not completed notice, got %q", got)
	}
	if strings.Contains(got, "Duration:") {
		t.Fatalf("did not expect duration, got %q", got)
	}
	if strings.Contains(got, "Description:") {
		t.Fatalf("did not expect empty description section, got %q", got)
	}
}

func TestFormatTaskDetailRendersDescription(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	item := task.Task{
		ID:          3,
		Title:       "Refund",
		Description: "Customer wants a **refund** for order 1182.",
		Priority:    task.PriorityLow,
		Status:      task.StatusPending,
		Origin:      task.OriginEmail,
		CreatedAt:   time.Date(2025, 3, 7, 14, 5, 0, 0, time.Local),
	}

	got := formatTaskDetail(item)
	if !strings.Contains(got, "\nDescription:\n") {
		t.Fatalf("expected description section, got %q", got)
	}
	if !strings.Contains(got, "refund") || !strings.Contains(got, "1182") {
		t.Fatalf("expected description text, got %q", got)
	}
}

func TestFormatTaskReport(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	createdAt := time.Date(2025, 3, 7, 14, 5, 0, 0, time.Local)
	items := []task.Task{
		{ID: 1, Title: "First", Priority: task.PriorityLow, Status: task.StatusPending, Origin: task.OriginEmail, CreatedAt: createdAt},
		{ID: 2, Title: "Second", Priority: task.PriorityHigh, Status: task.StatusDeleted, Origin: task.OriginPhone, CreatedAt: createdAt},
	}

	got := formatTaskReport(items)
	if strings.Count(got, taskReportSeparator) != 1 {
		t.Fatalf("expected one separator, got %q", got)
	}
	if !strings.Contains(got, "Title:    First") || !strings.Contains(got, "Title:    Second") {
		t.Fatalf("expected both tasks in report, got %q", got)
	}

	if got := formatTaskReport(nil); got != "No tasks found.\n" {
		t.Fatalf("expected empty notice, got %q", got)
	}
}
