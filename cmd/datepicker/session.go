package main

import (
	"fmt"
	"time"

	"github.com/username/multi-date-picker/internal/calendar"
	"github.com/username/multi-date-picker/internal/config"
	"github.com/username/multi-date-picker/internal/picker"
	"github.com/username/multi-date-picker/internal/state"
	"go.uber.org/zap"
)

// session wires a picker model to the configured locale, calendar and
// selection store. The store is the host binding: every accepted tap is
// recorded there.
type session struct {
	cfg    *config.Config
	store  *state.Store
	model  *picker.Model
	logger *zap.Logger

	// persist saves the store after each recorded change
	persist bool
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ExpandEnvVars()
	return cfg, nil
}

// newSession builds the model from cfg. With fresh set the stored selection
// is not used as the initial value.
func newSession(cfg *config.Config, log *zap.Logger, fresh bool) (*session, error) {
	loc, err := cfg.Locale.GetLocale()
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:    cfg,
		store:  state.NewStore(cfg.State.SelectionFile, log),
		logger: log,
	}
	if err := s.store.Load(); err != nil {
		return nil, fmt.Errorf("failed to load selection: %w", err)
	}

	mode := cfg.Picker.GetMode()
	log.Debug("Picker configured",
		zap.Stringer("mode", mode),
		zap.Stringer("rule", cfg.Picker.GetRule()),
		zap.String("locale", loc.Tag()),
		zap.Stringer("first_weekday", loc.FirstWeekday()))

	var initial []time.Time
	if !fresh {
		initial, err = s.store.Dates(mode, time.Local)
		if err != nil {
			return nil, err
		}
	}

	opts := []picker.Option{
		picker.WithRule(cfg.Picker.GetRule()),
		picker.WithLocale(loc),
		picker.WithLogger(log),
	}
	minDate, err := cfg.Picker.GetMinDate()
	if err != nil {
		return nil, err
	}
	if minDate != nil {
		opts = append(opts, picker.WithMinDate(*minDate))
	}
	maxDate, err := cfg.Picker.GetMaxDate()
	if err != nil {
		return nil, err
	}
	if maxDate != nil {
		opts = append(opts, picker.WithMaxDate(*maxDate))
	}

	if cfg.Picker.GetRule() == picker.WorkdaysOnly {
		holidays := calendar.NewFileCalendar(cfg.Calendar.HolidaysFile, log)
		cal := calendar.NewCompositeCalendar(holidays, calendar.NewWeekdayCalendar(loc), log)
		if err := cal.LoadPrimary(); err != nil {
			log.Warn("Failed to load holiday calendar, using weekends only", zap.Error(err))
		}
		opts = append(opts, picker.WithCalendar(cal))
	}

	switch mode {
	case picker.SingleDay:
		var day time.Time
		if len(initial) > 0 {
			day = initial[0]
		}
		s.model = picker.NewSingleDay(day, func(d time.Time) {
			s.commit([]time.Time{d})
		}, opts...)

	case picker.AnyDays:
		s.model = picker.NewAnyDays(initial, s.commit, opts...)

	case picker.DateRange:
		var r *picker.Range
		if len(initial) == 2 {
			r = &picker.Range{Start: initial[0], End: initial[1]}
		}
		s.model = picker.NewDateRange(r, func(r *picker.Range) {
			if r == nil {
				s.commit(nil)
				return
			}
			s.commit([]time.Time{r.Start, r.End})
		}, opts...)
	}

	return s, nil
}

func (s *session) commit(dates []time.Time) {
	s.store.Record(s.model.Mode(), dates)
	if !s.persist {
		return
	}
	if err := s.store.Save(); err != nil {
		s.logger.Error("Failed to save selection", zap.Error(err))
	}
}

// tap selects date the way a user would: show its month, then tap its cell
func (s *session) tap(date time.Time) bool {
	s.model.SetReferenceDate(date)
	cell, ok := s.model.DayOfMonth(date.Day())
	if !ok {
		return false
	}
	return s.model.SelectDay(cell)
}
