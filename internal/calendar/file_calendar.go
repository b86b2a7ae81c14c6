package calendar

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/username/multi-date-picker/pkg/dateutil"
	"go.uber.org/zap"
)

// FileCalendar implements Calendar using a local holiday file.
// Only days listed in the file are known; lookups for other days fail so a
// CompositeCalendar can fall back to the plain weekday rule.
type FileCalendar struct {
	filePath string
	logger   *zap.Logger
	data     map[string]*DayInfo // key: "YYYY-MM-DD"
}

// NewFileCalendar creates a new FileCalendar instance
func NewFileCalendar(filePath string, logger *zap.Logger) *FileCalendar {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileCalendar{
		filePath: filePath,
		logger:   logger,
		data:     make(map[string]*DayInfo),
	}
}

// Load loads calendar data from file
func (fc *FileCalendar) Load() error {
	file, err := os.Open(fc.filePath)
	if err != nil {
		return fmt.Errorf("failed to open calendar file: %w", err)
	}
	defer file.Close()

	if err := fc.read(file); err != nil {
		return err
	}

	fc.logger.Info("Calendar file loaded",
		zap.String("file", fc.filePath),
		zap.Int("days", len(fc.data)))

	return nil
}

// read parses lines of the form
//
//	YYYY-MM-DD type [note]
//
// e.g. "2025-01-01 holiday New Year". Malformed lines are logged and skipped.
func (fc *FileCalendar) read(r io.Reader) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, " ", 3)
		if len(parts) < 2 {
			fc.logger.Warn("Invalid line format", zap.String("line", line))
			continue
		}

		date, err := time.Parse(dateutil.DateLayout, parts[0])
		if err != nil {
			fc.logger.Warn("Failed to parse date", zap.String("date", parts[0]), zap.Error(err))
			continue
		}

		dayType, ok := parseDayType(parts[1])
		if !ok {
			fc.logger.Warn("Unknown day type", zap.String("type", parts[1]))
			continue
		}

		note := ""
		if len(parts) == 3 {
			note = strings.TrimSpace(parts[2])
		}

		fc.data[parts[0]] = &DayInfo{
			Date: date,
			Type: dayType,
			Note: note,
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading calendar file: %w", err)
	}
	return nil
}

func parseDayType(s string) (DayType, bool) {
	switch s {
	case "workday":
		return DayTypeWorkday, true
	case "weekend":
		return DayTypeWeekend, true
	case "holiday":
		return DayTypeHoliday, true
	case "shortened":
		return DayTypeShortened, true
	}
	return 0, false
}

// IsWorkday checks if the given date is a working day
func (fc *FileCalendar) IsWorkday(date time.Time) (bool, error) {
	dayInfo, err := fc.GetDayInfo(date)
	if err != nil {
		return false, err
	}

	return dayInfo.Type.IsWorkday(), nil
}

// GetDayInfo returns detailed info for a specific day
func (fc *FileCalendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	key := date.Format(dateutil.DateLayout)

	dayInfo, ok := fc.data[key]
	if !ok {
		return nil, fmt.Errorf("day not found in calendar: %s", key)
	}

	return dayInfo, nil
}
