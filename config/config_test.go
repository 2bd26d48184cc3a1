package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quentis/validog/config"
	"github.com/quentis/validog/vlog"
)

func writeSettings(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write settings file %s: %v", path, err)
	}
	return path
}

func TestLoadJSON5(t *testing.T) {
	path := writeSettings(t, "settings.json5", `{
		// Only surface problems.
		enabledLevels: ["Warning", "Error"],
	}`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	levels, err := cfg.Levels()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := vlog.LevelWarning | vlog.LevelError
	if levels != expected {
		t.Errorf("Expected levels %s but got %s", expected, levels)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeSettings(t, "settings.toml", `enabled_levels = ["Trace", "Debug", "Error"]`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	levels, err := cfg.Levels()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := vlog.LevelTrace | vlog.LevelDebug | vlog.LevelError
	if levels != expected {
		t.Errorf("Expected levels %s but got %s", expected, levels)
	}
}

func TestEmptyLevelListFallsBackToDefaults(t *testing.T) {
	path := writeSettings(t, "settings.json", `{}`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	levels, err := cfg.Levels()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if levels != vlog.DefaultLevels {
		t.Errorf("Expected default levels but got %s", levels)
	}
}

func TestUnknownLevelName(t *testing.T) {
	path := writeSettings(t, "settings.json5", `{enabledLevels: ["Fatal"]}`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := cfg.Levels(); err == nil {
		t.Error("Expected error for unknown level name but got none")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.json5")); err == nil {
		t.Error("Expected error for missing file but got none")
	}
}

func TestNewLoggerFromFile(t *testing.T) {
	path := writeSettings(t, "settings.toml", `enabled_levels = ["Error"]`)

	logger, err := config.NewLoggerFromFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !logger.IsEnabled(vlog.LevelError) {
		t.Error("Expected Error to be enabled")
	}
	if logger.IsEnabled(vlog.LevelWarning) {
		t.Error("Expected Warning to be disabled")
	}
}
