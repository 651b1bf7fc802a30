package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Table renders rows as aligned columns for plain command output.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Render pads every column to its widest cell. A zero width leaves lines
// untruncated.
func (t Table) Render(width int) string {
	if len(t.Headers) == 0 {
		return "No data"
	}
	widths := make([]int, len(t.Headers))
	measure := func(row []string) {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], ansi.StringWidth(cell))
			}
		}
	}
	measure(t.Headers)
	for _, row := range t.Rows {
		measure(row)
	}

	header := lipgloss.NewStyle().Bold(true)
	lines := []string{header.Render(t.line(t.Headers, widths))}
	for _, row := range t.Rows {
		lines = append(lines, t.line(row, widths))
	}
	if width > 0 {
		for i, l := range lines {
			lines[i] = ansi.Truncate(l, width, "…")
		}
	}
	return strings.Join(lines, "\n")
}

func (t Table) line(row []string, widths []int) string {
	cells := make([]string, len(widths))
	for i := range widths {
		var cell string
		if i < len(row) {
			cell = row[i]
		}
		if i < len(widths)-1 {
			cell += strings.Repeat(" ", widths[i]-ansi.StringWidth(cell))
		}
		cells[i] = cell
	}
	return strings.TrimRight(strings.Join(cells, "  "), " ")
}
