// Package render styles the office's console output.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			Border(lipgloss.DoubleBorder(), true, false).
			Padding(0, 2)

	subheaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Header renders a section banner.
func Header(title string) string {
	return headerStyle.Render(title)
}

// Subheader renders a step caption such as "--- Signing all forms ---".
func Subheader(caption string) string {
	return subheaderStyle.Render("--- " + caption + " ---")
}

// OK renders a line reporting something that went through.
func OK(line string) string {
	return okStyle.Render(line)
}

// Fail renders a line reporting a refusal or failure.
func Fail(line string) string {
	return failStyle.Render(line)
}

// Table renders rows as left-aligned columns separated by two spaces.
func Table(rows [][]string) string {
	widths := map[int]int{}

	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder

	for _, row := range rows {
		cells := make([]string, len(row))

		for i, cell := range row {
			cells[i] = lipgloss.NewStyle().Width(widths[i]).Render(cell)
		}

		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		b.WriteString("\n")
	}

	return b.String()
}
