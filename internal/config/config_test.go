package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/username/multi-date-picker/internal/picker"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
picker:
  mode: range
  include_days: weekends
  min_date: "2020-10-10"
  max_date: "2020-10-20"
locale:
  tag: en_GB
state:
  selection_file: /tmp/sel.json
log:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Picker.GetMode() != picker.DateRange {
		t.Errorf("GetMode() = %v, want %v", cfg.Picker.GetMode(), picker.DateRange)
	}
	if cfg.Picker.GetRule() != picker.WeekendsOnly {
		t.Errorf("GetRule() = %v, want %v", cfg.Picker.GetRule(), picker.WeekendsOnly)
	}
	minDate, err := cfg.Picker.GetMinDate()
	if err != nil || minDate == nil || minDate.Day() != 10 {
		t.Errorf("GetMinDate() = %v, %v, want 2020-10-10", minDate, err)
	}
	loc, err := cfg.Locale.GetLocale()
	if err != nil {
		t.Fatalf("GetLocale() error = %v", err)
	}
	if loc.FirstWeekday() != time.Monday {
		t.Errorf("FirstWeekday() = %v, want Monday", loc.FirstWeekday())
	}
	if cfg.State.SelectionFile != "/tmp/sel.json" {
		t.Errorf("SelectionFile = %q", cfg.State.SelectionFile)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	d := Default()
	if cfg.Picker.Mode != d.Picker.Mode || cfg.Locale.Tag != d.Locale.Tag || cfg.State.SelectionFile != d.State.SelectionFile {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, d)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DATEPICKER_PICKER_MODE", "any")

	cfg, err := Load(writeConfig(t, "picker:\n  mode: single\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Picker.Mode != "any" {
		t.Errorf("Picker.Mode = %q, want %q from environment", cfg.Picker.Mode, "any")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"Defaults", func(c *Config) {}, ""},
		{"Bad mode", func(c *Config) { c.Picker.Mode = "many" }, "Picker.Mode"},
		{"Bad rule", func(c *Config) { c.Picker.IncludeDays = "mondays" }, "Picker.IncludeDays"},
		{"Bad date", func(c *Config) { c.Picker.MinDate = "soon" }, "picker.min_date"},
		{"Min after max", func(c *Config) {
			c.Picker.MinDate = "2020-10-20"
			c.Picker.MaxDate = "2020-10-10"
		}, "after"},
		{"Unknown locale", func(c *Config) { c.Locale.Tag = "tlh" }, "locale.tag"},
		{"Bad weekday", func(c *Config) { c.Locale.FirstWeekday = "caturday" }, "Locale.FirstWeekday"},
		{"Workdays without file", func(c *Config) { c.Picker.IncludeDays = "workdays" }, "holidays_file"},
		{"Workdays with file", func(c *Config) {
			c.Picker.IncludeDays = "workdays"
			c.Calendar.HolidaysFile = "holidays.txt"
		}, ""},
		{"Empty state file", func(c *Config) { c.State.SelectionFile = "" }, "State.SelectionFile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestGetLocale_FirstWeekdayOverride(t *testing.T) {
	c := LocaleConfig{Tag: "en_US", FirstWeekday: "monday"}

	loc, err := c.GetLocale()
	if err != nil {
		t.Fatalf("GetLocale() error = %v", err)
	}
	if loc.FirstWeekday() != time.Monday {
		t.Errorf("FirstWeekday() = %v, want Monday", loc.FirstWeekday())
	}
}

func TestLoad_SearchPaths(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("picker:\n  mode: range\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Picker.Mode != "range" {
		t.Errorf("Picker.Mode = %q, want %q from ./config.yaml", cfg.Picker.Mode, "range")
	}
}
