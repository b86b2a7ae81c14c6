package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/username/multi-date-picker/internal/picker"
	"github.com/username/multi-date-picker/pkg/dateutil"
)

const productID = "-//multi-date-picker//EN"

// Formats understood by Write
const (
	FormatJSON = "json"
	FormatICS  = "ics"
)

// Value is the external selection of a picker: one date, a list of dates,
// or a range that is absent until both ends are chosen.
type Value struct {
	Mode  picker.Mode
	Dates []time.Time
}

// ValueOf captures the external value of a model
func ValueOf(m *picker.Model) Value {
	return Value{Mode: m.Mode(), Dates: m.Selections()}
}

// Range returns the completed range, nil otherwise
func (v Value) Range() *picker.Range {
	if v.Mode != picker.DateRange || len(v.Dates) != 2 {
		return nil
	}
	return &picker.Range{Start: v.Dates[0], End: v.Dates[1]}
}

type jsonRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Write serializes v in the given format
func Write(w io.Writer, format string, v Value) error {
	switch format {
	case FormatJSON, "":
		return JSON(w, v)
	case FormatICS:
		return ICS(w, v, "Selected")
	}
	return fmt.Errorf("unsupported export format: %s", format)
}

// JSON writes v as an indented JSON document
func JSON(w io.Writer, v Value) error {
	out := map[string]any{"mode": v.Mode.String()}

	switch v.Mode {
	case picker.SingleDay:
		if len(v.Dates) > 0 {
			out["date"] = v.Dates[0].Format(dateutil.DateLayout)
		}
	case picker.AnyDays:
		dates := make([]string, len(v.Dates))
		for i, d := range v.Dates {
			dates[i] = d.Format(dateutil.DateLayout)
		}
		out["dates"] = dates
	case picker.DateRange:
		// null until both ends are chosen
		var rng *jsonRange
		if r := v.Range(); r != nil {
			rng = &jsonRange{
				Start: r.Start.Format(dateutil.DateLayout),
				End:   r.End.Format(dateutil.DateLayout),
			}
		}
		out["range"] = rng
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode selection: %w", err)
	}
	return nil
}

// ICS writes v as an iCalendar document of all-day events: one per date,
// or one spanning a completed range.
func ICS(w io.Writer, v Value, summary string) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)

	stamp := time.Now().UTC()

	if v.Mode == picker.DateRange {
		if r := v.Range(); r != nil {
			addAllDay(cal, r.Start, r.End, summary, stamp)
		}
	} else {
		for _, d := range v.Dates {
			addAllDay(cal, d, d, summary, stamp)
		}
	}

	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}

func addAllDay(cal *ics.Calendar, start, end time.Time, summary string, stamp time.Time) {
	first := dateutil.StartOfDay(start)
	last := dateutil.StartOfDay(end)

	event := cal.AddEvent(eventUID(first, last))
	event.SetDtStampTime(stamp)
	event.SetSummary(summary)
	event.SetAllDayStartAt(first)
	// DTEND is exclusive for all-day events
	event.SetAllDayEndAt(last.AddDate(0, 0, 1))
}

// eventUID is stable for the same span so re-exports update rather than duplicate
func eventUID(start, end time.Time) string {
	name := start.Format(dateutil.DateLayout) + "/" + end.Format(dateutil.DateLayout)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(productID+name)).String()
}
