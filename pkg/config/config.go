package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okhsunrog/sch-parse/pkg/schedule"
)

// DateLayout is the format used for dates in the config file and on the command line
const DateLayout = "2006-01-02"

// DefaultTimezone is where MIET lessons take place
const DefaultTimezone = "Europe/Moscow"

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	DefaultGroup  string   `json:"default_group,omitempty"`
	SavedGroups   []string `json:"saved_groups,omitempty"`
	ScheduleStart string   `json:"schedule_start,omitempty"` // Monday the week numbering starts from
	Timezone      string   `json:"timezone,omitempty"`
	AccentColor   string   `json:"accent_color,omitempty"`
}

// getConfigPath returns the absolute path to ~/.sch-parse.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".sch-parse.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Anchor returns the configured schedule start, or schedule.DefaultAnchor when unset
func (c *AppConfig) Anchor() (time.Time, error) {
	if c == nil || c.ScheduleStart == "" {
		return schedule.DefaultAnchor, nil
	}
	return ValidateAnchor(c.ScheduleStart)
}

// ValidateAnchor parses a YYYY-MM-DD date and checks that it is a Monday
func ValidateAnchor(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid schedule start %q: expected YYYY-MM-DD", s)
	}
	if t.Weekday() != time.Monday {
		return time.Time{}, fmt.Errorf("schedule start %s is a %s, expected a Monday", s, t.Weekday())
	}
	return t, nil
}

// Location loads the configured timezone, falling back to DefaultTimezone
func (c *AppConfig) Location() (*time.Location, error) {
	name := DefaultTimezone
	if c != nil && c.Timezone != "" {
		name = c.Timezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("could not load timezone %q: %w", name, err)
	}
	return loc, nil
}
