package picker

import "time"

const (
	// GridSize is the number of cells in a month grid: 6 weeks of 7 days
	GridSize = 42

	// DaysPerWeek is the number of grid columns
	DaysPerWeek = 7
)

// DayCell is one position in a month grid. Blank filler cells have Day 0
// and a zero Date.
type DayCell struct {
	// Index is the position in the grid, row-major
	Index int

	// Day is the day of month, or 0 for a blank cell
	Day int

	// Date is midnight of the represented day in the reference date's location
	Date time.Time

	// IsSelectable is set when the active eligibility allows the day
	IsSelectable bool

	// IsToday is set only for the current real-world day
	IsToday bool
}

// IsBlank reports whether the cell is padding with no date
func (c DayCell) IsBlank() bool {
	return c.Day == 0 || c.Date.IsZero()
}

// Row returns the zero-based week row of the cell
func (c DayCell) Row() int {
	return c.Index / DaysPerWeek
}

// Column returns the zero-based weekday column of the cell
func (c DayCell) Column() int {
	return c.Index % DaysPerWeek
}

// Grid is a month laid out for display
type Grid struct {
	Cells   [GridSize]DayCell
	Title   string
	NumDays int
}

// Weeks splits the grid into rows of seven cells
func (g Grid) Weeks() [][]DayCell {
	weeks := make([][]DayCell, 0, GridSize/DaysPerWeek)
	for start := 0; start < GridSize; start += DaysPerWeek {
		weeks = append(weeks, g.Cells[start:start+DaysPerWeek])
	}
	return weeks
}
