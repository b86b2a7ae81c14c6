package picker

import (
	"fmt"
	"time"

	"github.com/username/multi-date-picker/internal/locale"
	"github.com/username/multi-date-picker/pkg/dateutil"
)

// BuildGrid lays out the month of reference as GridSize cells: blanks up to
// the first weekday, days 1..N, then blanks to fill. It is a pure function of
// its arguments. Dates are created in reference's location.
func BuildGrid(reference, today time.Time, eligibility Eligibility, loc *locale.Locale) Grid {
	if loc == nil {
		loc = locale.Default()
	}

	year, month := reference.Year(), reference.Month()
	first := time.Date(year, month, 1, 0, 0, 0, 0, reference.Location())
	numDays := dateutil.DaysInMonth(year, month)
	ord := loc.WeekdayOrdinal(first.Weekday())

	cells := make([]DayCell, 0, GridSize)
	for i := 1; i < ord; i++ {
		cells = append(cells, DayCell{Index: len(cells)})
	}

	for day := 1; day <= numDays; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, reference.Location())
		cells = append(cells, DayCell{
			Index:        len(cells),
			Day:          day,
			Date:         date,
			IsToday:      dateutil.IsSameDay(date, today),
			IsSelectable: eligibility.Allows(date, loc),
		})
	}

	remainder := GridSize - len(cells)
	if remainder < 0 {
		panic(fmt.Sprintf("picker: %d leading blanks and %d days overflow the %d-cell grid",
			ord-1, numDays, GridSize))
	}
	for i := 0; i < remainder; i++ {
		cells = append(cells, DayCell{Index: len(cells)})
	}

	grid := Grid{
		Title:   loc.Title(first),
		NumDays: numDays,
	}
	copy(grid.Cells[:], cells)
	return grid
}
