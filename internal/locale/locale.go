package locale

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_GB"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/fr"
	"github.com/go-playground/locales/ja"
	"github.com/go-playground/locales/ru"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultTag is used when no locale is configured
const DefaultTag = "en_US"

type entry struct {
	factory      func() locales.Translator
	firstWeekday time.Weekday
	// standalone month names, for languages whose translator only has the
	// genitive form used inside dates ("1 января")
	months []string
}

var russianMonths = []string{
	"январь", "февраль", "март", "апрель", "май", "июнь",
	"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
}

var registry = map[string]entry{
	"en":    {en.New, time.Sunday, nil},
	"en_US": {en_US.New, time.Sunday, nil},
	"en_GB": {en_GB.New, time.Monday, nil},
	"de":    {de.New, time.Monday, nil},
	"fr":    {fr.New, time.Monday, nil},
	"es":    {es.New, time.Monday, nil},
	"ru":    {ru.New, time.Monday, russianMonths},
	"ja":    {ja.New, time.Sunday, nil},
}

// Locale supplies the calendar conventions the picker needs: month and
// weekday names, the first day of the week and the two weekend days.
type Locale struct {
	tag          string
	translator   locales.Translator
	caser        cases.Caser
	months       []string
	firstWeekday time.Weekday
	weekend      [2]time.Weekday
}

// New returns the locale registered under tag ("en_US", "ru", "de-DE" ...).
// Region variants without their own data fall back to the base language.
func New(tag string) (*Locale, error) {
	if tag == "" {
		tag = DefaultTag
	}
	key := strings.ReplaceAll(tag, "-", "_")

	e, ok := registry[key]
	if !ok {
		base, _, _ := strings.Cut(key, "_")
		e, ok = registry[base]
		if !ok {
			return nil, fmt.Errorf("unsupported locale: %s (supported: %s)", tag, strings.Join(Supported(), ", "))
		}
	}

	return &Locale{
		tag:          key,
		translator:   e.factory(),
		caser:        cases.Title(language.Make(strings.ReplaceAll(key, "_", "-"))),
		months:       e.months,
		firstWeekday: e.firstWeekday,
		weekend:      [2]time.Weekday{time.Saturday, time.Sunday},
	}, nil
}

// Default returns the en_US locale
func Default() *Locale {
	l, err := New(DefaultTag)
	if err != nil {
		panic(err)
	}
	return l
}

// Supported lists the registered locale tags in sorted order
func Supported() []string {
	tags := make([]string, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// WithFirstWeekday returns a copy of the locale whose week starts on day
func (l *Locale) WithFirstWeekday(day time.Weekday) *Locale {
	c := *l
	c.firstWeekday = day
	return &c
}

// Tag returns the normalized locale tag
func (l *Locale) Tag() string {
	return l.tag
}

// FirstWeekday returns the day the locale week starts on
func (l *Locale) FirstWeekday() time.Weekday {
	return l.firstWeekday
}

// WeekdayOrdinal returns the 1-based position of day in the locale week
func (l *Locale) WeekdayOrdinal(day time.Weekday) int {
	return (int(day)-int(l.firstWeekday)+7)%7 + 1
}

// IsWeekend reports whether day is one of the locale's two weekend days
func (l *Locale) IsWeekend(day time.Weekday) bool {
	return day == l.weekend[0] || day == l.weekend[1]
}

// MonthName returns the title-cased standalone month name, as used in a
// "Month Year" header
func (l *Locale) MonthName(month time.Month) string {
	if l.months != nil {
		return l.caser.String(l.months[month-1])
	}
	return l.caser.String(l.translator.MonthWide(month))
}

// MonthNames returns the twelve month names, January first
func (l *Locale) MonthNames() []string {
	names := make([]string, 12)
	for i := range names {
		names[i] = l.MonthName(time.Month(i + 1))
	}
	return names
}

// WeekdayNames returns abbreviated weekday names starting at the first weekday
func (l *Locale) WeekdayNames() []string {
	names := make([]string, 7)
	for i := range names {
		names[i] = l.translator.WeekdayAbbreviated(time.Weekday((int(l.firstWeekday) + i) % 7))
	}
	return names
}

// Title formats "Month Year" for the given date
func (l *Locale) Title(date time.Time) string {
	return fmt.Sprintf("%s %d", l.MonthName(date.Month()), date.Year())
}
