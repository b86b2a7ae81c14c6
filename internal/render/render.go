package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/username/multi-date-picker/internal/picker"
)

// cellWidth is the width of a rendered day: cursor mark, two digits, selection mark
const cellWidth = 4

// Month draws the displayed month of m. cursor is the highlighted day of
// month, 0 for none. Selected days carry a trailing '*' so they stay visible
// without colors.
func Month(m *picker.Model, cursor int) string {
	var b strings.Builder

	title := lipgloss.PlaceHorizontal(cellWidth*picker.DaysPerWeek, lipgloss.Center, TitleStyle.Render(m.Title()))
	b.WriteString(title)
	b.WriteString("\n")

	headers := make([]string, 0, picker.DaysPerWeek)
	for _, name := range m.WeekdayNames() {
		headers = append(headers, HeaderStyle.Render(fmt.Sprintf("%*s", cellWidth, abbreviate(name, cellWidth-1))))
	}
	b.WriteString(strings.Join(headers, ""))

	for _, week := range m.Grid().Weeks() {
		b.WriteString("\n")
		for _, cell := range week {
			b.WriteString(Cell(m, cell, cell.Day != 0 && cell.Day == cursor))
		}
	}

	return BoxStyle.Render(b.String())
}

// Cell draws one grid position
func Cell(m *picker.Model, cell picker.DayCell, cursor bool) string {
	if cell.IsBlank() {
		return strings.Repeat(" ", cellWidth)
	}

	selected := m.IsSelected(cell)

	lead, mark := " ", " "
	if cursor {
		lead = ">"
	}
	if selected {
		mark = "*"
	}
	text := fmt.Sprintf("%s%2d%s", lead, cell.Day, mark)

	switch {
	case cursor:
		return CursorStyle.Render(text)
	case selected:
		return SelectedStyle.Render(text)
	case !cell.IsSelectable:
		return DisabledStyle.Render(text)
	case cell.IsToday:
		return TodayStyle.Render(text)
	}
	return DayStyle.Render(text)
}

func abbreviate(name string, n int) string {
	r := []rune(name)
	if len(r) <= n {
		return name
	}
	return string(r[:n])
}
