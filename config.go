package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ---------------------------------------------------------------------------
// Configuration (TOML-based)
// ---------------------------------------------------------------------------

const defaultRowsPerPage = 20

// settings is the top-level TOML structure.
type settings struct {
	DBPath        string  `toml:"db_path"`
	RowsPerPage   int     `toml:"rows_per_page"`
	SwipeCost     float64 `toml:"swipe_cost"`
	SwipesPerDay  int     `toml:"swipes_per_day"`
	SemesterStart string  `toml:"semester_start"`
	ChartDays     int     `toml:"chart_days"`
}

const defaultConfigTOML = `# Larder settings.
# db_path defaults to purchases.db next to this file when empty.

db_path = ""
rows_per_page = 20

# Meal-swipe estimate parameters.
swipe_cost = 15.12
swipes_per_day = 2
semester_start = "2024-09-01"

# Trailing window of the spend chart, in days.
chart_days = 30
`

// configDir returns the directory for larder config files, using
// XDG_CONFIG_HOME or falling back to ~/.config.
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "larder"), nil
}

func configFilePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func defaultSettings() settings {
	return settings{
		RowsPerPage:   defaultRowsPerPage,
		SwipeCost:     15.12,
		SwipesPerDay:  2,
		SemesterStart: "2024-09-01",
		ChartDays:     30,
	}
}

// loadSettings reads the config file, creating it with commented
// defaults if missing. Unset or invalid values fall back to defaults so
// a hand-edited file can never leave the app unusable.
func loadSettings() (settings, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultSettings(), err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0755); mkErr != nil {
			return defaultSettings(), fmt.Errorf("create config dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultConfigTOML), 0644); wErr != nil {
			return defaultSettings(), fmt.Errorf("write default config: %w", wErr)
		}
	}

	cfg := defaultSettings()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultSettings(), fmt.Errorf("parse config: %w", err)
	}
	normalizeSettings(&cfg, filepath.Dir(path))
	return cfg, nil
}

func normalizeSettings(cfg *settings, dir string) {
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dir, "purchases.db")
	}
	if cfg.RowsPerPage <= 0 {
		cfg.RowsPerPage = defaultRowsPerPage
	}
	if cfg.SwipeCost <= 0 {
		cfg.SwipeCost = 15.12
	}
	if cfg.SwipesPerDay <= 0 {
		cfg.SwipesPerDay = 2
	}
	if cfg.SemesterStart == "" {
		cfg.SemesterStart = "2024-09-01"
	}
	if cfg.ChartDays <= 0 {
		cfg.ChartDays = 30
	}
}
