package main

import (
	"fmt"
	"strings"

	internalage "github.com/amonks/triage/internal/age"
	"github.com/amonks/triage/internal/markdown"
	"github.com/amonks/triage/internal/ui"
	"github.com/amonks/triage/task"
)

const taskDetailLineWidth = 80
const taskDetailIndent = 2
const taskReportSeparator = "---------------"

// formatTaskDetail renders the labelled detail view of a task.
func formatTaskDetail(item task.Task) string {
	var b strings.Builder

	fmt.Fprintf(&b, "ID:       %d\n", item.ID)
	fmt.Fprintf(&b, "Title:    %s\n", item.Title)
	fmt.Fprintf(&b, "Status:   %s\n", statusLabel(item.Status))
	fmt.Fprintf(&b, "Priority: %s\n", priorityLabel(item.Priority))
	fmt.Fprintf(&b, "Origin:   %s\n", item.Origin)
	fmt.Fprintf(&b, "Created:  %s\n", ui.FormatTimestamp(item.CreatedAt))

	if duration, ok := task.DurationData(item); ok {
		fmt.Fprintf(&b, "Completed: %s\n", ui.FormatTimestamp(*item.CompletedAt))
		fmt.Fprintf(&b, "Duration: %d seconds\n", internalage.WholeSeconds(duration))
	} else {
		b.WriteString("Not completed.\n")
	}

	if description := formatTaskDescription(item.Description); description != "" {
		fmt.Fprintf(&b, "\nDescription:\n%s\n", description)
	}

	return b.String()
}

func formatTaskDescription(value string) string {
	rendered := markdown.Render(taskDetailLineWidth, taskDetailIndent, []byte(value))
	return string(rendered)
}

// formatTaskReport renders the detail view of every task.
func formatTaskReport(items []task.Task) string {
	if len(items) == 0 {
		return "No tasks found.\n"
	}

	blocks := make([]string, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, formatTaskDetail(item))
	}
	return strings.Join(blocks, taskReportSeparator+"\n")
}
