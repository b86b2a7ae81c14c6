package calendar

import "time"

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeShortened
)

// String returns the keyword used for the type in holiday files
func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	case DayTypeShortened:
		return "shortened"
	}
	return "unknown"
}

// IsWorkday reports whether the type counts as a working day
func (t DayType) IsWorkday() bool {
	return t == DayTypeWorkday || t == DayTypeShortened
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date time.Time
	Type DayType
	Note string
}

// Calendar classifies days as working or non-working
type Calendar interface {
	// IsWorkday checks if the given date is a working day
	IsWorkday(date time.Time) (bool, error)

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date time.Time) (*DayInfo, error)
}
