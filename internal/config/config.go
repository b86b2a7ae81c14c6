package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/username/multi-date-picker/internal/locale"
	"github.com/username/multi-date-picker/internal/picker"
	"github.com/username/multi-date-picker/pkg/dateutil"
)

// EnvPrefix prefixes environment overrides, e.g. DATEPICKER_PICKER_MODE
const EnvPrefix = "DATEPICKER"

// Config represents application configuration
type Config struct {
	Picker   PickerConfig   `mapstructure:"picker"`
	Locale   LocaleConfig   `mapstructure:"locale"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	State    StateConfig    `mapstructure:"state"`
	Log      LogConfig      `mapstructure:"log"`
}

// PickerConfig represents selection mode and day eligibility
type PickerConfig struct {
	Mode        string `mapstructure:"mode" validate:"oneof=single any range"`
	IncludeDays string `mapstructure:"include_days" validate:"oneof=all weekdays weekends workdays"`
	MinDate     string `mapstructure:"min_date"` // YYYY-MM-DD, empty for no bound
	MaxDate     string `mapstructure:"max_date"` // YYYY-MM-DD, empty for no bound
}

// LocaleConfig represents month/weekday naming and week layout
type LocaleConfig struct {
	Tag          string `mapstructure:"tag" validate:"required"`
	FirstWeekday string `mapstructure:"first_weekday" validate:"omitempty,oneof=sunday monday tuesday wednesday thursday friday saturday"`
}

// CalendarConfig represents the holiday calendar used by the workdays rule
type CalendarConfig struct {
	HolidaysFile string `mapstructure:"holidays_file"`
}

// StateConfig represents state storage configuration
type StateConfig struct {
	SelectionFile string `mapstructure:"selection_file" validate:"required"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	return &Config{
		Picker: PickerConfig{
			Mode:        "single",
			IncludeDays: "all",
		},
		Locale: LocaleConfig{
			Tag: locale.DefaultTag,
		},
		State: StateConfig{
			SelectionFile: "selection.json",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("picker.mode", d.Picker.Mode)
	v.SetDefault("picker.include_days", d.Picker.IncludeDays)
	v.SetDefault("picker.min_date", "")
	v.SetDefault("picker.max_date", "")
	v.SetDefault("locale.tag", d.Locale.Tag)
	v.SetDefault("locale.first_weekday", "")
	v.SetDefault("calendar.holidays_file", "")
	v.SetDefault("state.selection_file", d.State.SelectionFile)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", d.Log.Level)
}

// Load loads configuration from file. A missing file is not an error:
// defaults and environment overrides still apply.
func Load(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.multi-date-picker")
		v.AddConfigPath("/etc/multi-date-picker")
	}

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			fe := ve[0]
			return fmt.Errorf("%s failed '%s' check (value %q)", fieldPath(fe.Namespace()), fe.Tag(), fmt.Sprint(fe.Value()))
		}
		return err
	}

	minDate, err := c.Picker.GetMinDate()
	if err != nil {
		return err
	}
	maxDate, err := c.Picker.GetMaxDate()
	if err != nil {
		return err
	}
	if minDate != nil && maxDate != nil && dateutil.CompareDay(*minDate, *maxDate) > 0 {
		return fmt.Errorf("picker.min_date %s is after picker.max_date %s", c.Picker.MinDate, c.Picker.MaxDate)
	}

	if _, err := locale.New(c.Locale.Tag); err != nil {
		return fmt.Errorf("locale.tag: %w", err)
	}

	if c.Picker.IncludeDays == "workdays" && c.Calendar.HolidaysFile == "" {
		return fmt.Errorf("calendar.holidays_file is required for include_days 'workdays'")
	}

	return nil
}

// fieldPath turns "Config.Picker.MinDate" into "Picker.MinDate"
func fieldPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}
	return rest
}

// GetMode returns the selection mode
func (c *PickerConfig) GetMode() picker.Mode {
	mode, err := picker.ParseMode(c.Mode)
	if err != nil {
		return picker.SingleDay
	}
	return mode
}

// GetRule returns the eligibility rule
func (c *PickerConfig) GetRule() picker.Rule {
	rule, err := picker.ParseRule(c.IncludeDays)
	if err != nil {
		return picker.AllDays
	}
	return rule
}

// GetMinDate returns the parsed lower bound, nil when unset
func (c *PickerConfig) GetMinDate() (*time.Time, error) {
	return parseOptionalDate("picker.min_date", c.MinDate)
}

// GetMaxDate returns the parsed upper bound, nil when unset
func (c *PickerConfig) GetMaxDate() (*time.Time, error) {
	return parseOptionalDate("picker.max_date", c.MaxDate)
}

func parseOptionalDate(key, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	date, err := dateutil.ParseDate(value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &date, nil
}

// GetLocale returns the configured locale, with the first weekday override applied
func (c *LocaleConfig) GetLocale() (*locale.Locale, error) {
	loc, err := locale.New(c.Tag)
	if err != nil {
		return nil, err
	}
	if c.FirstWeekday == "" {
		return loc, nil
	}
	for day := time.Sunday; day <= time.Saturday; day++ {
		if strings.EqualFold(day.String(), c.FirstWeekday) {
			return loc.WithFirstWeekday(day), nil
		}
	}
	return nil, fmt.Errorf("unknown weekday: %s", c.FirstWeekday)
}

// ExpandEnvVars expands environment variables in path settings
func (c *Config) ExpandEnvVars() {
	c.Calendar.HolidaysFile = os.ExpandEnv(c.Calendar.HolidaysFile)
	c.State.SelectionFile = os.ExpandEnv(c.State.SelectionFile)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
