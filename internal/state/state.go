package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/username/multi-date-picker/internal/picker"
	"github.com/username/multi-date-picker/pkg/dateutil"
	"go.uber.org/zap"
)

// Selection is the persisted host binding of a picker
type Selection struct {
	Mode      string   `json:"mode"`
	Dates     []string `json:"dates"` // YYYY-MM-DD, ascending after any tap
	UpdatedAt string   `json:"updated_at"`
}

// Store keeps the last committed selection in a JSON file
type Store struct {
	stateFile string
	state     *Selection
	logger    *zap.Logger
}

// NewStore creates a new selection store
func NewStore(stateFile string, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		stateFile: stateFile,
		logger:    logger,
	}
}

// Load loads the selection from file
func (s *Store) Load() error {
	data, err := os.ReadFile(s.stateFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// File doesn't exist yet - will be created on first save
			s.state = &Selection{Dates: []string{}}
			return nil
		}
		return fmt.Errorf("failed to read state file: %w", err)
	}

	var state Selection
	if err := json.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to parse state file: %w", err)
	}

	s.state = &state
	s.logger.Info("Selection state loaded",
		zap.String("mode", state.Mode),
		zap.Strings("dates", state.Dates))

	return nil
}

// Save saves the selection to file
func (s *Store) Save() error {
	if s.state == nil {
		s.state = &Selection{Dates: []string{}}
	}

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if dir := filepath.Dir(s.stateFile); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	if err := os.WriteFile(s.stateFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	s.logger.Info("Selection state saved",
		zap.String("mode", s.state.Mode),
		zap.Int("dates", len(s.state.Dates)))

	return nil
}

// Clear forgets the stored selection
func (s *Store) Clear() error {
	s.state = &Selection{Dates: []string{}}
	return s.Save()
}

// Record replaces the stored selection with dates committed in mode
func (s *Store) Record(mode picker.Mode, dates []time.Time) {
	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = d.Format(dateutil.DateLayout)
	}

	s.state = &Selection{
		Mode:      mode.String(),
		Dates:     formatted,
		UpdatedAt: time.Now().Format(time.RFC3339),
	}
}

// Dates returns the stored dates for mode, parsed in loc. A selection
// stored under a different mode is ignored.
func (s *Store) Dates(mode picker.Mode, loc *time.Location) ([]time.Time, error) {
	if s.state == nil || s.state.Mode != mode.String() {
		return nil, nil
	}

	dates := make([]time.Time, 0, len(s.state.Dates))
	for _, str := range s.state.Dates {
		d, err := dateutil.ParseDate(str, loc)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored date: %w", err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// GetCurrentState returns current state
func (s *Store) GetCurrentState() *Selection {
	return s.state
}
