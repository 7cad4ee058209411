package main

import (
	"fmt"
	"strings"

	"github.com/amonks/triage/task"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

const archivedLineWidth = 80
const archivedContinuationIndent = 4

// formatArchivedReport renders one line per archived task. Long titles wrap
// onto indented continuation lines.
func formatArchivedReport(items []task.Task, width int) string {
	if len(items) == 0 {
		return "No archived tasks.\n"
	}

	var b strings.Builder
	for _, item := range items {
		line := fmt.Sprintf("[ARCHIVED] ID %d - %s", item.ID, item.Title)
		wrapped := wordwrap.String(line, width)
		first, rest, found := strings.Cut(wrapped, "\n")
		b.WriteString(first)
		b.WriteByte('\n')
		if found {
			b.WriteString(indent.String(rest, archivedContinuationIndent))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
