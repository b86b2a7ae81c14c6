package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/username/multi-date-picker/internal/picker"
	"github.com/username/multi-date-picker/internal/render"
	"github.com/username/multi-date-picker/pkg/dateutil"
)

const help = "←↓↑→ move • enter select • n/p month • g jump • t today • q done"

// Model is the interactive host of a picker.Model
type Model struct {
	picker  *picker.Model
	cursor  int
	jumping bool
	jump    jumpModal
	status  string
	done    bool
}

// New creates the interactive host with the cursor on the reference day
func New(p *picker.Model) Model {
	return Model{
		picker: p,
		cursor: p.ReferenceDate().Day(),
	}
}

// Run shows the picker until the user quits
func Run(p *picker.Model) error {
	_, err := tea.NewProgram(New(p), tea.WithAltScreen()).Run()
	return err
}

// Cursor returns the highlighted day of month
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.jumping {
			// cursor blink of the year field
			var cmd tea.Cmd
			m.jump.yearInput, cmd = m.jump.yearInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if m.jumping {
		return m.updateJump(key)
	}

	m.status = ""
	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.done = true
		return m, tea.Quit
	case "left", "h":
		m.move(-1)
	case "right", "l":
		m.move(1)
	case "up", "k":
		m.move(-picker.DaysPerWeek)
	case "down", "j":
		m.move(picker.DaysPerWeek)
	case "n", "pgdown":
		m.picker.IncrementMonth()
		m.clampCursor()
	case "p", "pgup":
		m.picker.DecrementMonth()
		m.clampCursor()
	case "t":
		today := m.picker.Today()
		if m.picker.JumpTo(today.Month(), today.Year()) {
			m.cursor = today.Day()
		}
	case "g":
		m.jumping = true
		m.jump = newJumpModal(m.picker.MonthNames(), m.picker.ReferenceDate())
	case "enter", " ":
		m.selectCursor()
	}
	return m, nil
}

func (m Model) updateJump(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c":
		m.done = true
		return m, tea.Quit
	case "esc":
		m.jumping = false
	case "tab", "shift+tab":
		return m, m.jump.toggleFocus()
	case "up", "k":
		m.jump.bump(-1)
	case "down", "j":
		m.jump.bump(1)
	case "enter":
		m.jumping = false
		month, year, err := m.jump.value()
		if err != nil || !m.picker.JumpTo(month, year) {
			m.status = fmt.Sprintf("cannot show %q (years %d..%d)", m.jump.yearInput.Value(), picker.MinYear, picker.MaxYear)
			return m, nil
		}
		m.cursor = 1
	default:
		return m, m.jump.update(key)
	}
	return m, nil
}

func (m *Model) move(delta int) {
	cell, ok := m.picker.DayOfMonth(m.cursor)
	if !ok {
		m.cursor = 1
		return
	}
	target := cell.Date.AddDate(0, 0, delta)
	if !dateutil.IsSameDay(dateutil.FirstOfMonth(target), dateutil.FirstOfMonth(cell.Date)) {
		m.picker.SetReferenceDate(target)
	}
	m.cursor = target.Day()
}

func (m *Model) clampCursor() {
	if n := m.picker.NumDays(); m.cursor > n {
		m.cursor = n
	}
}

func (m *Model) selectCursor() {
	cell, ok := m.picker.DayOfMonth(m.cursor)
	if !ok || !m.picker.SelectDay(cell) {
		m.status = "day not selectable"
	}
}

func (m Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(render.Month(m.picker, m.cursor))
	b.WriteString("\n")
	b.WriteString(summary(m.picker))
	b.WriteString("\n")

	switch {
	case m.jumping:
		b.WriteString(m.jump.View())
	case m.status != "":
		b.WriteString(m.status)
	default:
		b.WriteString(render.HelpStyle.Render(help))
	}
	return b.String()
}

// summary describes the external value the host would observe
func summary(p *picker.Model) string {
	sel := p.Selections()
	switch p.Mode() {
	case picker.DateRange:
		if r := p.RangeValue(); r != nil {
			return fmt.Sprintf("range: %s .. %s", r.Start.Format(dateutil.DateLayout), r.End.Format(dateutil.DateLayout))
		}
		if len(sel) == 1 {
			return fmt.Sprintf("range: %s .. (pick end)", sel[0].Format(dateutil.DateLayout))
		}
		return "range: none"
	default:
		parts := make([]string, len(sel))
		for i, d := range sel {
			parts[i] = d.Format(dateutil.DateLayout)
		}
		if len(parts) == 0 {
			return "selected: none"
		}
		return "selected: " + strings.Join(parts, ", ")
	}
}
