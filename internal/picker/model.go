package picker

import (
	"fmt"
	"slices"
	"time"

	"github.com/username/multi-date-picker/internal/locale"
	"github.com/username/multi-date-picker/pkg/dateutil"
	"go.uber.org/zap"
)

// Years offered by the month/year jump
const (
	MinYear = 1970
	MaxYear = 2099
)

// Mode is the selection behavior of a Model, fixed at construction
type Mode int

const (
	SingleDay Mode = iota
	AnyDays
	DateRange
)

// String returns the config keyword of the mode
func (m Mode) String() string {
	switch m {
	case SingleDay:
		return "single"
	case AnyDays:
		return "any"
	case DateRange:
		return "range"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses a config keyword into a Mode
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "single":
		return SingleDay, nil
	case "any":
		return AnyDays, nil
	case "range":
		return DateRange, nil
	}
	return SingleDay, fmt.Errorf("unknown picker mode: %s", s)
}

// Range is a closed interval of days
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether date falls within the range, by calendar day
func (r Range) Contains(date time.Time) bool {
	return dateutil.BetweenDays(date, r.Start, r.End)
}

// Model holds a displayed month and the current selection. It is not safe
// for concurrent use; the host drives it from a single goroutine.
type Model struct {
	mode        Mode
	eligibility Eligibility
	locale      *locale.Locale
	now         func() time.Time
	logger      *zap.Logger

	// notify pushes the external value to the host binding
	notify func(selections []time.Time)

	reference  time.Time
	grid       Grid
	selections []time.Time
}

func newModel(mode Mode, opts []Option) *Model {
	o := buildOptions(opts)
	return &Model{
		mode:        mode,
		eligibility: o.eligibility,
		locale:      o.locale,
		now:         o.now,
		logger:      o.logger.With(zap.Stringer("mode", mode)),
		notify:      func([]time.Time) {},
	}
}

// NewSingleDay creates a model where exactly one day is always selected.
// onChange receives the new day after every accepted tap.
func NewSingleDay(initial time.Time, onChange func(time.Time), opts ...Option) *Model {
	m := newModel(SingleDay, opts)
	if initial.IsZero() {
		initial = m.Today()
	}
	m.selections = []time.Time{initial}
	if onChange != nil {
		m.notify = func(s []time.Time) { onChange(s[0]) }
	}
	m.SetReferenceDate(initial)
	return m
}

// NewAnyDays creates a model where any set of days can be toggled.
// onChange receives the ascending list (possibly empty) after every accepted tap.
// The initial list is kept in the caller's order until the first tap.
func NewAnyDays(initial []time.Time, onChange func([]time.Time), opts ...Option) *Model {
	m := newModel(AnyDays, opts)
	m.selections = make([]time.Time, 0, len(initial))
	for _, d := range initial {
		if !d.IsZero() {
			m.selections = append(m.selections, d)
		}
	}
	if onChange != nil {
		m.notify = func(s []time.Time) { onChange(slices.Clone(s)) }
	}

	reference := m.Today()
	if len(m.selections) > 0 {
		reference = m.selections[0]
	}
	m.SetReferenceDate(reference)
	return m
}

// NewDateRange creates a model selecting a closed range with two taps.
// onChange receives the range once both ends are chosen and nil while the
// range is incomplete.
func NewDateRange(initial *Range, onChange func(*Range), opts ...Option) *Model {
	m := newModel(DateRange, opts)
	m.selections = []time.Time{}
	reference := m.Today()
	if initial != nil && !initial.Start.IsZero() && !initial.End.IsZero() {
		m.selections = []time.Time{initial.Start, initial.End}
		sortDates(m.selections)
		reference = m.selections[0]
	}
	if onChange != nil {
		m.notify = func(s []time.Time) {
			if len(s) != 2 {
				onChange(nil)
				return
			}
			onChange(&Range{Start: s[0], End: s[1]})
		}
	}
	m.SetReferenceDate(reference)
	return m
}

// Mode returns the selection mode
func (m *Model) Mode() Mode {
	return m.mode
}

// Today returns the current day from the model's clock
func (m *Model) Today() time.Time {
	return dateutil.StartOfDay(m.now())
}

// ReferenceDate returns the date whose month is displayed
func (m *Model) ReferenceDate() time.Time {
	return m.reference
}

// Grid returns the current month grid
func (m *Model) Grid() Grid {
	return m.grid
}

// Title returns the localized "Month Year" of the displayed month
func (m *Model) Title() string {
	return m.grid.Title
}

// NumDays returns the number of days in the displayed month
func (m *Model) NumDays() int {
	return m.grid.NumDays
}

// WeekdayNames returns column headers in grid order
func (m *Model) WeekdayNames() []string {
	return m.locale.WeekdayNames()
}

// MonthNames returns the localized month names for a month/year chooser
func (m *Model) MonthNames() []string {
	return m.locale.MonthNames()
}

// Selections returns a copy of the selected dates
func (m *Model) Selections() []time.Time {
	return slices.Clone(m.selections)
}

// SetReferenceDate displays the month of date. The selection is untouched.
// A zero date means today.
func (m *Model) SetReferenceDate(date time.Time) {
	if date.IsZero() {
		date = m.Today()
	}
	m.reference = date
	m.grid = BuildGrid(date, m.now(), m.eligibility, m.locale)

	m.logger.Debug("Grid rebuilt",
		zap.String("title", m.grid.Title),
		zap.Int("days", m.grid.NumDays))
}

// IncrementMonth displays the next month
func (m *Model) IncrementMonth() {
	m.SetReferenceDate(dateutil.AddMonths(m.reference, 1))
}

// DecrementMonth displays the previous month
func (m *Model) DecrementMonth() {
	m.SetReferenceDate(dateutil.AddMonths(m.reference, -1))
}

// JumpTo displays the first day of the given month and year. Months outside
// 1..12 or years outside MinYear..MaxYear are ignored and false is returned.
func (m *Model) JumpTo(month time.Month, year int) bool {
	if month < time.January || month > time.December || year < MinYear || year > MaxYear {
		m.logger.Debug("Jump ignored",
			zap.Int("month", int(month)),
			zap.Int("year", year))
		return false
	}
	m.SetReferenceDate(time.Date(year, month, 1, 0, 0, 0, 0, m.reference.Location()))
	return true
}

// DayOfMonth returns the grid cell for day, if the displayed month has it
func (m *Model) DayOfMonth(day int) (DayCell, bool) {
	if day < 1 || day > 31 {
		return DayCell{}, false
	}
	for _, cell := range m.grid.Cells {
		if cell.Day == day {
			return cell, true
		}
	}
	return DayCell{}, false
}

// SelectDay applies a tap on cell and notifies the host. Taps on blank or
// unselectable cells change nothing and return false.
func (m *Model) SelectDay(cell DayCell) bool {
	if !cell.IsSelectable || cell.IsBlank() {
		m.logger.Debug("Tap ignored",
			zap.Int("index", cell.Index),
			zap.Int("day", cell.Day),
			zap.Bool("selectable", cell.IsSelectable))
		return false
	}
	date := cell.Date

	switch m.mode {
	case SingleDay:
		m.selections = []time.Time{date}

	case AnyDays:
		if pos := m.indexOf(date); pos >= 0 {
			m.selections = slices.Delete(m.selections, pos, pos+1)
		} else {
			m.selections = append(m.selections, date)
		}
		sortDates(m.selections)

	case DateRange:
		// a tap after a complete (or empty) range starts a new one
		if len(m.selections) != 1 {
			m.selections = []time.Time{date}
		} else {
			m.selections = append(m.selections, date)
		}
		sortDates(m.selections)
	}

	m.logger.Debug("Day selected",
		zap.Time("date", date),
		zap.Int("selections", len(m.selections)))

	m.notify(m.selections)
	return true
}

// IsSelected reports whether cell should be drawn as selected
func (m *Model) IsSelected(cell DayCell) bool {
	if !cell.IsSelectable || cell.IsBlank() {
		return false
	}

	if m.mode == DateRange {
		switch len(m.selections) {
		case 0:
			return false
		case 1:
			return dateutil.IsSameDay(m.selections[0], cell.Date)
		default:
			return dateutil.BetweenDays(cell.Date, m.selections[0], m.selections[1])
		}
	}

	return m.indexOf(cell.Date) >= 0
}

// RangeValue returns the completed range, or nil while fewer than two ends
// are chosen. It is only meaningful in DateRange mode.
func (m *Model) RangeValue() *Range {
	if m.mode != DateRange || len(m.selections) != 2 {
		return nil
	}
	return &Range{Start: m.selections[0], End: m.selections[1]}
}

func (m *Model) indexOf(date time.Time) int {
	return slices.IndexFunc(m.selections, func(d time.Time) bool {
		return dateutil.IsSameDay(d, date)
	})
}

func sortDates(dates []time.Time) {
	slices.SortFunc(dates, func(a, b time.Time) int {
		return a.Compare(b)
	})
}
