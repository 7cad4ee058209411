package main

import (
	"strconv"
	"time"

	"github.com/amonks/triage/internal/ui"
	"github.com/amonks/triage/task"
)

// formatTaskList renders tasks as a table, or a notice when there are none.
func formatTaskList(items []task.Task, now time.Time) string {
	if len(items) == 0 {
		return "No tasks found.\n"
	}
	return formatTaskTable(items, now)
}

func formatTaskTable(items []task.Task, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "PRI", "STATUS", "ORIGIN", "AGE", "DURATION", "TITLE"}, len(items))

	for _, item := range items {
		builder.AddRow([]string{
			strconv.Itoa(item.ID),
			priorityLabel(item.Priority),
			statusLabel(item.Status),
			string(item.Origin),
			formatTaskAge(item, now),
			formatTaskDuration(item),
			ui.TruncateTableCell(item.Title),
		})
	}

	return builder.String()
}

func formatTaskAge(item task.Task, now time.Time) string {
	ageValue, ok := task.AgeData(item, now)
	if !ok {
		return "-"
	}
	return ui.FormatDurationShort(ageValue)
}

func formatTaskDuration(item task.Task) string {
	duration, ok := task.DurationData(item)
	if !ok {
		return "-"
	}
	return ui.FormatDurationShort(duration)
}

func priorityLabel(p task.Priority) string {
	switch p {
	case task.PriorityUrgent:
		return ui.Render(ui.AlertStyle, string(p))
	case task.PriorityHigh:
		return ui.Render(ui.WarnStyle, string(p))
	case task.PriorityMedium:
		return string(p)
	case task.PriorityLow:
		return ui.Render(ui.MutedStyle, string(p))
	default:
		return string(p)
	}
}

func statusLabel(s task.Status) string {
	switch s {
	case task.StatusPending:
		return string(s)
	case task.StatusInProgress:
		return ui.Render(ui.ActiveStyle, string(s))
	case task.StatusDone:
		return ui.Render(ui.SuccessStyle, string(s))
	case task.StatusArchived, task.StatusDeleted:
		return ui.Render(ui.MutedStyle, string(s))
	default:
		return string(s)
	}
}
