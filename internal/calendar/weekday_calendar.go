package calendar

import (
	"time"

	"github.com/username/multi-date-picker/pkg/dateutil"
)

// WeekendSet tells which weekdays are weekend days
type WeekendSet interface {
	IsWeekend(day time.Weekday) bool
}

// WeekdayCalendar implements Calendar from the weekend days alone; it knows
// every date and never fails.
type WeekdayCalendar struct {
	weekend WeekendSet
}

// NewWeekdayCalendar creates a WeekdayCalendar. A nil set means Saturday and Sunday.
func NewWeekdayCalendar(weekend WeekendSet) *WeekdayCalendar {
	return &WeekdayCalendar{weekend: weekend}
}

// IsWorkday checks if the given date is a working day
func (wc *WeekdayCalendar) IsWorkday(date time.Time) (bool, error) {
	return !wc.isWeekend(date), nil
}

// GetDayInfo returns detailed info for a specific day
func (wc *WeekdayCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	dayType := DayTypeWorkday
	if wc.isWeekend(date) {
		dayType = DayTypeWeekend
	}
	return &DayInfo{
		Date: dateutil.StartOfDay(date),
		Type: dayType,
	}, nil
}

func (wc *WeekdayCalendar) isWeekend(date time.Time) bool {
	if wc.weekend == nil {
		return dateutil.IsWeekend(date)
	}
	return wc.weekend.IsWeekend(date.Weekday())
}
