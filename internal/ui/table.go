package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column defines a table column.
type Column struct {
	Title string
	Width int
}

// Row is a slice of cell values. Cells may already carry styling.
type Row []string

// Table renders a lipgloss-styled table.
type Table struct {
	Columns []Column
	Rows    []Row
}

// NewTable creates a new table.
func NewTable(cols []Column) *Table {
	return &Table{Columns: cols}
}

// AddRow appends a row.
func (t *Table) AddRow(r Row) {
	t.Rows = append(t.Rows, r)
}

// Render returns the full table as a string.
func (t *Table) Render() string {
	var sb strings.Builder

	header := lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)

	cells := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		cells[i] = fit(header.Render(col.Title), col.Width)
	}
	sb.WriteString(strings.Join(cells, " ") + "\n")

	for i, col := range t.Columns {
		cells[i] = StyleMeta.Render(strings.Repeat("─", col.Width))
	}
	sb.WriteString(strings.Join(cells, " ") + "\n")

	for _, row := range t.Rows {
		for j, col := range t.Columns {
			val := ""
			if j < len(row) {
				val = row[j]
			}
			cells[j] = fit(val, col.Width)
		}
		sb.WriteString(strings.Join(cells, " ") + "\n")
	}
	return sb.String()
}

// fit truncates or pads s to exactly width visible cells, ignoring ANSI codes.
func fit(s string, width int) string {
	if lipgloss.Width(s) > width {
		s = lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// KeyValueBlock renders a set of key-value pairs in a bordered box.
func KeyValueBlock(title string, pairs [][2]string) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(StyleTitle.Render(title))
		sb.WriteString("\n")
	}
	for _, p := range pairs {
		key := StyleMeta.Render(fmt.Sprintf("%-14s", p[0]+":"))
		sb.WriteString(key + " " + StyleValue.Render(p[1]) + "\n")
	}
	return StyleBorder.Render(strings.TrimRight(sb.String(), "\n"))
}
