package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/username/multi-date-picker/internal/picker"
	"github.com/username/multi-date-picker/internal/render"
)

type jumpFocus int

const (
	jumpFocusMonth jumpFocus = iota
	jumpFocusYear
)

// jumpModal chooses the month and year to display: a month wheel over the
// locale's month names and a year field.
type jumpModal struct {
	months    []string
	month     int // 0-based index into months
	yearInput textinput.Model
	focus     jumpFocus
}

func newJumpModal(months []string, ref time.Time) jumpModal {
	year := textinput.New()
	year.Placeholder = "YYYY"
	year.CharLimit = 4
	year.Width = 6
	year.SetValue(strconv.Itoa(ref.Year()))

	return jumpModal{
		months:    months,
		month:     int(ref.Month()) - 1,
		yearInput: year,
		focus:     jumpFocusMonth,
	}
}

func (j *jumpModal) applyFocus() tea.Cmd {
	j.yearInput.Blur()
	if j.focus == jumpFocusYear {
		return j.yearInput.Focus()
	}
	return nil
}

func (j *jumpModal) toggleFocus() tea.Cmd {
	if j.focus == jumpFocusMonth {
		j.focus = jumpFocusYear
	} else {
		j.focus = jumpFocusMonth
	}
	return j.applyFocus()
}

// bump turns the focused wheel by delta. Months wrap; years stay within
// the picker's range.
func (j *jumpModal) bump(delta int) {
	switch j.focus {
	case jumpFocusMonth:
		n := len(j.months)
		j.month = ((j.month+delta)%n + n) % n
	case jumpFocusYear:
		year, err := strconv.Atoi(strings.TrimSpace(j.yearInput.Value()))
		if err != nil {
			year = picker.MinYear
		} else {
			year += delta
		}
		year = min(max(year, picker.MinYear), picker.MaxYear)
		j.yearInput.SetValue(strconv.Itoa(year))
		j.yearInput.CursorEnd()
	}
}

// value returns the chosen month and year
func (j *jumpModal) value() (time.Month, int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(j.yearInput.Value()))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year %q", j.yearInput.Value())
	}
	return time.Month(j.month + 1), year, nil
}

func (j *jumpModal) update(msg tea.KeyMsg) tea.Cmd {
	if j.focus != jumpFocusYear {
		return nil
	}
	var cmd tea.Cmd
	j.yearInput, cmd = j.yearInput.Update(msg)
	return cmd
}

func (j jumpModal) View() string {
	month := fmt.Sprintf("‹ %s ›", j.months[j.month])
	if j.focus == jumpFocusMonth {
		month = render.CursorStyle.Render(month)
	}
	return "jump to: " + month + " " + j.yearInput.View() + "\n" +
		render.HelpStyle.Render("tab switch field • ↑↓ change • enter show • esc cancel")
}
