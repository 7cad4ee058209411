package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRender_Disabled(t *testing.T) {
	disableColor(t)

	if got := Render(AlertStyle, "urgent"); got != "urgent" {
		t.Fatalf("expected plain value, got %q", got)
	}
}

func TestRender_EmptyValue(t *testing.T) {
	original := colorEnabled
	colorEnabled = func() bool { return true }
	t.Cleanup(func() {
		colorEnabled = original
	})

	if got := Render(AlertStyle, ""); got != "" {
		t.Fatalf("expected empty value, got %q", got)
	}
}

func TestRender_EnabledKeepsVisibleText(t *testing.T) {
	original := colorEnabled
	colorEnabled = func() bool { return true }
	t.Cleanup(func() {
		colorEnabled = original
	})

	got := Render(AlertStyle, "urgent")
	if !strings.Contains(got, "urgent") {
		t.Fatalf("expected value in output, got %q", got)
	}
	if lipgloss.Width(got) != len("urgent") {
		t.Fatalf("expected styling to keep visible width, got %d", lipgloss.Width(got))
	}
}
