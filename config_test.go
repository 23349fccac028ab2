package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadSettingsCreatesDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}

	path, err := configFilePath()
	if err != nil {
		t.Fatalf("configFilePath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if !strings.Contains(string(data), "rows_per_page") {
		t.Error("default config missing settings")
	}

	if cfg.RowsPerPage != defaultRowsPerPage {
		t.Errorf("RowsPerPage = %d, want %d", cfg.RowsPerPage, defaultRowsPerPage)
	}
	if cfg.DBPath == "" {
		t.Error("db path should default next to the config file")
	}
	if filepath.Dir(cfg.DBPath) != filepath.Dir(path) {
		t.Errorf("db path %q not beside config %q", cfg.DBPath, path)
	}
}

func TestLoadSettingsReadsExisting(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "larder")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatal(err)
	}
	custom := `
db_path = "/tmp/custom.db"
rows_per_page = 7
swipe_cost = 9.5
swipes_per_day = 3
semester_start = "2025-02-01"
chart_days = 14
`
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if cfg.DBPath != "/tmp/custom.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.RowsPerPage != 7 || cfg.SwipesPerDay != 3 || cfg.ChartDays != 14 {
		t.Errorf("settings not honored: %+v", cfg)
	}
	if cfg.SwipeCost != 9.5 || cfg.SemesterStart != "2025-02-01" {
		t.Errorf("settings not honored: %+v", cfg)
	}
}

func TestNormalizeSettingsBackfillsInvalid(t *testing.T) {
	cfg := settings{RowsPerPage: -1, SwipeCost: 0, SwipesPerDay: 0, ChartDays: 0}
	normalizeSettings(&cfg, "/cfg")

	if cfg.DBPath != filepath.Join("/cfg", "purchases.db") {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	def := defaultSettings()
	if cfg.RowsPerPage != def.RowsPerPage || cfg.SwipesPerDay != def.SwipesPerDay {
		t.Errorf("invalid values not backfilled: %+v", cfg)
	}
	if cfg.SwipeCost != def.SwipeCost || cfg.SemesterStart != def.SemesterStart || cfg.ChartDays != def.ChartDays {
		t.Errorf("invalid values not backfilled: %+v", cfg)
	}
}
