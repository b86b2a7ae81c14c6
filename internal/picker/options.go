package picker

import (
	"time"

	"github.com/username/multi-date-picker/internal/calendar"
	"github.com/username/multi-date-picker/internal/locale"
	"go.uber.org/zap"
)

type options struct {
	eligibility Eligibility
	locale      *locale.Locale
	now         func() time.Time
	logger      *zap.Logger
}

// Option configures a Model at construction
type Option func(*options)

// WithRule sets the weekday/weekend rule
func WithRule(rule Rule) Option {
	return func(o *options) {
		o.eligibility.Rule = rule
	}
}

// WithMinDate sets the earliest selectable day
func WithMinDate(date time.Time) Option {
	return func(o *options) {
		o.eligibility.MinDate = &date
	}
}

// WithMaxDate sets the latest selectable day
func WithMaxDate(date time.Time) Option {
	return func(o *options) {
		o.eligibility.MaxDate = &date
	}
}

// WithCalendar sets the production calendar used by WorkdaysOnly
func WithCalendar(cal calendar.Calendar) Option {
	return func(o *options) {
		o.eligibility.Calendar = cal
	}
}

// WithLocale sets month/weekday names and the first day of the week
func WithLocale(loc *locale.Locale) Option {
	return func(o *options) {
		o.locale = loc
	}
}

// WithClock overrides the source of "today"
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func buildOptions(opts []Option) options {
	o := options{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.locale == nil {
		o.locale = locale.Default()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.now == nil {
		o.now = time.Now
	}
	return o
}
