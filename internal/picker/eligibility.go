package picker

import (
	"fmt"
	"time"

	"github.com/username/multi-date-picker/internal/calendar"
	"github.com/username/multi-date-picker/internal/locale"
	"github.com/username/multi-date-picker/pkg/dateutil"
)

// Rule selects which days may be picked when no min/max bound is set
type Rule int

const (
	AllDays Rule = iota
	WeekdaysOnly
	WeekendsOnly
	// WorkdaysOnly consults a production calendar, so holidays are excluded
	// and transferred working weekends are included.
	WorkdaysOnly
)

// String returns the config keyword of the rule
func (r Rule) String() string {
	switch r {
	case AllDays:
		return "all"
	case WeekdaysOnly:
		return "weekdays"
	case WeekendsOnly:
		return "weekends"
	case WorkdaysOnly:
		return "workdays"
	}
	return fmt.Sprintf("Rule(%d)", int(r))
}

// ParseRule parses a config keyword into a Rule
func ParseRule(s string) (Rule, error) {
	switch s {
	case "", "all":
		return AllDays, nil
	case "weekdays":
		return WeekdaysOnly, nil
	case "weekends":
		return WeekendsOnly, nil
	case "workdays":
		return WorkdaysOnly, nil
	}
	return AllDays, fmt.Errorf("unknown day rule: %s", s)
}

// Eligibility decides whether a day can be selected. When either bound is
// set, the bounds alone decide and Rule is ignored.
type Eligibility struct {
	Rule     Rule
	MinDate  *time.Time
	MaxDate  *time.Time
	Calendar calendar.Calendar
}

// Allows reports whether date is selectable. Bounds are inclusive and
// compared by calendar day.
func (e Eligibility) Allows(date time.Time, loc *locale.Locale) bool {
	switch {
	case e.MinDate != nil && e.MaxDate != nil:
		return dateutil.BetweenDays(date, *e.MinDate, *e.MaxDate)
	case e.MinDate != nil:
		return dateutil.CompareDay(date, *e.MinDate) >= 0
	case e.MaxDate != nil:
		return dateutil.CompareDay(date, *e.MaxDate) <= 0
	}

	switch e.Rule {
	case WeekendsOnly:
		return loc.IsWeekend(date.Weekday())
	case WeekdaysOnly:
		return !loc.IsWeekend(date.Weekday())
	case WorkdaysOnly:
		if e.Calendar != nil {
			if ok, err := e.Calendar.IsWorkday(date); err == nil {
				return ok
			}
		}
		return !loc.IsWeekend(date.Weekday())
	}
	return true
}
