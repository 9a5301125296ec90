// Package report renders sweep results for the command line.
package report

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/sprintflow/internal/engine"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	changedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	conflictStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Sweep renders the outcome of one sweep run.
func Sweep(results []engine.SweepResult) string {
	if len(results) == 0 {
		return dimStyle.Render("sweep: no state changes") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("sweep: %d sprint(s) re-evaluated", len(results))))
	b.WriteString("\n")
	for _, r := range results {
		line := fmt.Sprintf("  sprint %d: %s -> %s", r.SprintID, r.OldState, r.NewState)
		if r.Err != nil {
			b.WriteString(conflictStyle.Render(fmt.Sprintf("%s (skipped: %v)", line, r.Err)))
		} else {
			b.WriteString(changedStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Conflicts counts the results that did not commit.
func Conflicts(results []engine.SweepResult) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
