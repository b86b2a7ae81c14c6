package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/username/multi-date-picker/internal/locale"
	"github.com/username/multi-date-picker/internal/picker"
)

func fixedClock() time.Time {
	return time.Date(2020, 11, 10, 9, 0, 0, 0, time.UTC)
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		updated, _ := m.Update(k)
		next, ok := updated.(Model)
		if !ok {
			t.Fatalf("Update() returned %T, want Model", updated)
		}
		m = next
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCursorMovement(t *testing.T) {
	p := picker.NewSingleDay(time.Date(2020, 11, 6, 0, 0, 0, 0, time.UTC), nil, picker.WithClock(fixedClock))
	m := New(p)

	if m.Cursor() != 6 {
		t.Fatalf("Cursor() = %d, want 6", m.Cursor())
	}

	tests := []struct {
		name  string
		key   tea.KeyMsg
		want  int
		month time.Month
	}{
		{"Right", tea.KeyMsg{Type: tea.KeyRight}, 7, time.November},
		{"Down", tea.KeyMsg{Type: tea.KeyDown}, 14, time.November},
		{"Left", runes("h"), 13, time.November},
		{"Up", runes("k"), 6, time.November},
		{"Up into October", tea.KeyMsg{Type: tea.KeyUp}, 30, time.October},
		{"Down back to November", tea.KeyMsg{Type: tea.KeyDown}, 6, time.November},
	}

	for _, tt := range tests {
		m = press(t, m, tt.key)
		if m.Cursor() != tt.want || p.ReferenceDate().Month() != tt.month {
			t.Errorf("%s: cursor = %d in %v, want %d in %v", tt.name, m.Cursor(), p.ReferenceDate().Month(), tt.want, tt.month)
		}
	}
}

func TestMonthKeysClampCursor(t *testing.T) {
	p := picker.NewSingleDay(time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC), nil, picker.WithClock(fixedClock))
	m := New(p)

	m = press(t, m, runes("n"))
	if p.ReferenceDate().Month() != time.February {
		t.Errorf("month after n = %v, want February", p.ReferenceDate().Month())
	}
	if m.Cursor() != 28 {
		t.Errorf("Cursor() = %d, want 28", m.Cursor())
	}

	m = press(t, m, runes("p"), runes("p"))
	if got := p.ReferenceDate(); got.Month() != time.December || got.Year() != 2020 {
		t.Errorf("reference after p p = %v, want December 2020", got)
	}
}

func TestSelectWithEnter(t *testing.T) {
	var got []time.Time
	p := picker.NewAnyDays(nil, func(d []time.Time) { got = d }, picker.WithClock(fixedClock))
	m := New(p)

	// today is the 10th, step to the 12th and toggle it
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	if len(got) != 1 || got[0].Day() != 12 {
		t.Fatalf("onChange = %v, want [2020-11-12]", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(got) != 0 {
		t.Errorf("onChange after second enter = %v, want empty", got)
	}
	if !strings.Contains(m.View(), "selected: none") {
		t.Errorf("View() should report empty selection\n%s", m.View())
	}
}

func TestSelectUnselectable(t *testing.T) {
	p := picker.NewSingleDay(time.Date(2020, 11, 6, 0, 0, 0, 0, time.UTC), nil,
		picker.WithClock(fixedClock), picker.WithRule(picker.WeekdaysOnly))
	m := New(p)

	// Nov 7 2020 is a Saturday
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyEnter})
	if p.Selections()[0].Day() != 6 {
		t.Errorf("selection = %v, want unchanged 2020-11-06", p.Selections()[0])
	}
	if !strings.Contains(m.View(), "not selectable") {
		t.Errorf("View() should show status\n%s", m.View())
	}
}

func TestJump(t *testing.T) {
	p := picker.NewSingleDay(time.Date(2020, 11, 6, 0, 0, 0, 0, time.UTC), nil, picker.WithClock(fixedClock))
	m := New(p)

	m = press(t, m, runes("g"))
	if !m.jumping {
		t.Fatal("g should open the month/year chooser")
	}
	if !strings.Contains(m.View(), "November") {
		t.Errorf("chooser should start at the displayed month\n%s", m.View())
	}

	// month wheel: November -> February, wrapping past December
	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
	)
	if !strings.Contains(m.View(), "February") {
		t.Errorf("month wheel should show February\n%s", m.View())
	}

	// year field: replace 2020 with 2024
	m = press(t, m,
		tea.KeyMsg{Type: tea.KeyTab},
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace},
		runes("24"),
		tea.KeyMsg{Type: tea.KeyEnter},
	)
	if got := p.ReferenceDate(); got.Month() != time.February || got.Year() != 2024 {
		t.Errorf("reference = %v, want February 2024", got)
	}
	if m.Cursor() != 1 {
		t.Errorf("Cursor() = %d, want 1", m.Cursor())
	}

	m = press(t, m, runes("t"))
	if got := p.ReferenceDate(); got.Month() != time.November || got.Year() != 2020 || m.Cursor() != 10 {
		t.Errorf("after t: reference = %v cursor = %d, want November 2020 on 10", got, m.Cursor())
	}
}

func TestJump_YearOutOfRange(t *testing.T) {
	p := picker.NewSingleDay(time.Date(2020, 11, 6, 0, 0, 0, 0, time.UTC), nil, picker.WithClock(fixedClock))
	m := New(p)

	m = press(t, m, runes("g"), tea.KeyMsg{Type: tea.KeyTab})
	for i := 0; i < 4; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = press(t, m, runes("2150"), tea.KeyMsg{Type: tea.KeyEnter})

	if got := p.ReferenceDate(); got.Year() != 2020 || got.Month() != time.November {
		t.Errorf("reference = %v, want unchanged after out-of-range jump", got)
	}
	if !strings.Contains(m.View(), "cannot show") {
		t.Errorf("View() should report rejected jump\n%s", m.View())
	}
}

func TestJump_YearWheelClamps(t *testing.T) {
	p := picker.NewSingleDay(time.Date(2099, 6, 1, 0, 0, 0, 0, time.UTC), nil, picker.WithClock(fixedClock))
	m := New(p)

	m = press(t, m, runes("g"), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if got := p.ReferenceDate(); got.Year() != picker.MaxYear || got.Month() != time.June {
		t.Errorf("reference = %v, want June %d", got, picker.MaxYear)
	}

	m = press(t, m, runes("g"), tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})
	if got := p.ReferenceDate(); got.Year() != picker.MaxYear-1 {
		t.Errorf("reference = %v, want year %d", got, picker.MaxYear-1)
	}
}

func TestJump_Cancel(t *testing.T) {
	p := picker.NewSingleDay(time.Date(2020, 11, 6, 0, 0, 0, 0, time.UTC), nil, picker.WithClock(fixedClock))
	m := New(p)

	m = press(t, m, runes("g"), tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEsc})
	if m.jumping {
		t.Error("esc should close the chooser")
	}
	if p.ReferenceDate().Month() != time.November {
		t.Errorf("reference changed to %v", p.ReferenceDate())
	}
}

func TestJump_CtrlCQuits(t *testing.T) {
	p := picker.NewSingleDay(time.Date(2020, 11, 6, 0, 0, 0, 0, time.UTC), nil, picker.WithClock(fixedClock))
	m := New(p)

	m = press(t, m, runes("g"), tea.KeyMsg{Type: tea.KeyTab})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c in the chooser should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c command should produce tea.QuitMsg")
	}
}

func TestJump_LocaleMonthNames(t *testing.T) {
	ru, err := locale.New("ru")
	if err != nil {
		t.Fatalf("locale.New(ru) error = %v", err)
	}
	p := picker.NewSingleDay(time.Date(2021, 1, 5, 0, 0, 0, 0, time.UTC), nil,
		picker.WithClock(fixedClock), picker.WithLocale(ru))
	m := New(p)

	m = press(t, m, runes("g"))
	if !strings.Contains(m.View(), "Январь") {
		t.Errorf("chooser should use locale month names\n%s", m.View())
	}
}

func TestQuit(t *testing.T) {
	p := picker.NewSingleDay(time.Time{}, nil, picker.WithClock(fixedClock))
	m := New(p)

	updated, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q command should produce tea.QuitMsg")
	}
	if updated.(Model).View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestRangeSummary(t *testing.T) {
	p := picker.NewDateRange(nil, nil, picker.WithClock(fixedClock))
	m := New(p)

	if !strings.Contains(m.View(), "range: none") {
		t.Errorf("View() = %s, want empty range", m.View())
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.View(), "pick end") {
		t.Errorf("View() should ask for the range end\n%s", m.View())
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.View(), "2020-11-10 .. 2020-11-17") {
		t.Errorf("View() should show the range\n%s", m.View())
	}
}
