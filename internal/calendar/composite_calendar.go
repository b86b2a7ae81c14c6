package calendar

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// CompositeCalendar implements Calendar with fallback strategy
// Primary: FileCalendar (holiday file)
// Fallback: WeekdayCalendar (locale weekend)
type CompositeCalendar struct {
	primary  Calendar
	fallback Calendar
	logger   *zap.Logger
}

// NewCompositeCalendar creates a new CompositeCalendar
func NewCompositeCalendar(primary, fallback Calendar, logger *zap.Logger) *CompositeCalendar {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompositeCalendar{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

// IsWorkday checks if the given date is a working day
func (cc *CompositeCalendar) IsWorkday(date time.Time) (bool, error) {
	isWorkday, err := cc.primary.IsWorkday(date)
	if err == nil {
		return isWorkday, nil
	}

	cc.logger.Debug("Primary calendar has no entry, using fallback",
		zap.Time("date", date),
		zap.Error(err))

	return cc.fallback.IsWorkday(date)
}

// GetDayInfo returns detailed info for a specific day
func (cc *CompositeCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	dayInfo, err := cc.primary.GetDayInfo(date)
	if err == nil {
		return dayInfo, nil
	}

	cc.logger.Debug("Primary calendar has no entry, using fallback",
		zap.Time("date", date),
		zap.Error(err))

	return cc.fallback.GetDayInfo(date)
}

// LoadPrimary loads the primary calendar (if FileCalendar)
func (cc *CompositeCalendar) LoadPrimary() error {
	if fc, ok := cc.primary.(*FileCalendar); ok {
		if err := fc.Load(); err != nil {
			return fmt.Errorf("failed to load holiday calendar: %w", err)
		}
		cc.logger.Info("Holiday calendar loaded successfully")
	}
	return nil
}
