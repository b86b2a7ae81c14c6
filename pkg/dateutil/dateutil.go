package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the canonical on-disk and command-line date format
const DateLayout = "2006-01-02"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// FirstOfMonth returns midnight of the first day of the date's month
func FirstOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of next month is last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths moves the date by n calendar months, keeping the day of month
// where it exists and clamping to the last day otherwise (Jan 31 + 1 = Feb 28/29).
func AddMonths(date time.Time, n int) time.Time {
	first := time.Date(date.Year(), date.Month()+time.Month(n), 1,
		date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())

	day := date.Day()
	if last := DaysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// CompareDay orders two dates by calendar day only: -1, 0 or +1.
func CompareDay(date1, date2 time.Time) int {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	switch {
	case y1 != y2:
		return sign(y1 - y2)
	case m1 != m2:
		return sign(int(m1) - int(m2))
	default:
		return sign(d1 - d2)
	}
}

// BetweenDays reports whether date falls within [from, to] comparing calendar days
func BetweenDays(date, from, to time.Time) bool {
	return CompareDay(date, from) >= 0 && CompareDay(date, to) <= 0
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// ParseDate parses date string in various formats into the given location
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	formats := []string{
		DateLayout,
		"02.01.2006",
		"2006/01/02",
		"2006-01-02T15:04:05",
	}

	for _, format := range formats {
		if t, err := time.ParseInLocation(format, dateStr, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
}
