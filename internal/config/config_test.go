package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadReturnsDefaultsWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SPINDLE_THEME_FILE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Picker.Mode != "time" {
		t.Errorf("Picker.Mode = %q, want %q", cfg.Picker.Mode, "time")
	}
	if cfg.KeyMappings.ScrollUp != "k" || cfg.KeyMappings.ScrollDown != "j" {
		t.Errorf("key mappings = %+v, want vim-style defaults", cfg.KeyMappings)
	}
	if cfg.ColorScheme.Accent == "" {
		t.Error("color scheme not filled with defaults")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SPINDLE_THEME_FILE", "")

	cfg := defaultConfig()
	cfg.Picker.Mode = "spin"
	cfg.Picker.Max = 42
	cfg.KeyMappings.Confirm = " "
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Picker.Mode != "spin" || loaded.Picker.Max != 42 {
		t.Errorf("picker = %+v, want mode spin max 42", loaded.Picker)
	}
	if loaded.KeyMappings.Confirm != " " {
		t.Errorf("Confirm = %q, want space", loaded.KeyMappings.Confirm)
	}
}

func TestLoadFillsPartialConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("SPINDLE_THEME_FILE", "")

	configDir := filepath.Join(dir, "spindle")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatal(err)
	}
	partial := []byte("picker:\n  mode: date\ntheme:\n  accent: \"#FF0000\"\n")
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), partial, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Picker.Mode != "date" {
		t.Errorf("Picker.Mode = %q, want %q", cfg.Picker.Mode, "date")
	}
	if cfg.Picker.Step != 1 {
		t.Errorf("Picker.Step = %v, want default 1", cfg.Picker.Step)
	}
	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Accent = %q, want override kept", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.ActiveFg == "" {
		t.Error("unset colors should fall back to the preset")
	}
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Quit = %q, want default q", cfg.KeyMappings.Quit)
	}
}

func TestThemeFileOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	themePath := filepath.Join(dir, "theme.yaml")
	theme := []byte("theme:\n  accent: \"#00FF00\"\n  title: \"#0000FF\"\n")
	if err := os.WriteFile(themePath, theme, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SPINDLE_THEME_FILE", themePath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ColorScheme.Accent != "#00FF00" {
		t.Errorf("Accent = %q, want theme file override", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Title != "#0000FF" {
		t.Errorf("Title = %q, want theme file override", cfg.ColorScheme.Title)
	}
}

func TestColorSchemePresets(t *testing.T) {
	mono := GetPreset("monochrome")
	if mono.Accent != "#FFFFFF" {
		t.Errorf("monochrome accent = %q", mono.Accent)
	}
	def := GetPreset("anything-else")
	if def.Preset != "default" {
		t.Errorf("unknown preset should fall back to default, got %q", def.Preset)
	}
}

func TestColorSchemeApplyDefaultsKeepsOverrides(t *testing.T) {
	scheme := ColorScheme{Preset: "monochrome", Accent: "#123456"}
	scheme.ApplyDefaults()
	if scheme.Accent != "#123456" {
		t.Errorf("Accent = %q, want explicit override kept", scheme.Accent)
	}
	if scheme.FocusedBorder != monochromeScheme().FocusedBorder {
		t.Errorf("FocusedBorder = %q, want monochrome preset value", scheme.FocusedBorder)
	}
}

func TestColorSchemeMergeFrom(t *testing.T) {
	scheme := defaultScheme()
	scheme.MergeFrom(ColorScheme{Accent: "#AAAAAA"})
	if scheme.Accent != "#AAAAAA" {
		t.Errorf("Accent = %q, want merged value", scheme.Accent)
	}
	if scheme.Title != defaultScheme().Title {
		t.Errorf("Title = %q, want untouched", scheme.Title)
	}
}
