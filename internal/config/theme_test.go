package config

import (
	"os"
	"testing"
)

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	themeContent := []byte(`theme:
  accent: "#FF0000"
  tag_urgent: "#00FF00"
`)
	tmpFile, err := os.CreateTemp(t.TempDir(), "tagdo-theme-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if _, err := tmpFile.Write(themeContent); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	if err := tmpFile.Close(); err != nil {
		t.Fatalf("Failed to close temp file: %v", err)
	}

	t.Setenv("TAGDO_THEME_FILE", tmpFile.Name())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Expected accent to be #FF0000, got %s", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.TagColor("URGENT") != "#00FF00" {
		t.Errorf("Expected URGENT tag color to be #00FF00, got %s", cfg.ColorScheme.TagColor("URGENT"))
	}

	// Verify other colors still have defaults
	if cfg.ColorScheme.ErrorFg == "" {
		t.Error("Expected error_fg to have default value")
	}
}

func TestThemeFilePresetSwitch(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := t.TempDir() + "/theme.yaml"
	if err := os.WriteFile(path, []byte("theme:\n  preset: matrix\n"), 0644); err != nil {
		t.Fatalf("Failed to write theme: %v", err)
	}
	t.Setenv("TAGDO_THEME_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.ColorScheme.Accent != "#00FF00" {
		t.Errorf("Expected matrix accent #00FF00, got %s", cfg.ColorScheme.Accent)
	}
}

func TestTagColorUnknownFallsBack(t *testing.T) {
	scheme := DefaultColorScheme()
	if scheme.TagColor("???") != scheme.TagNone {
		t.Errorf("TagColor(unknown) = %s, want TagNone %s", scheme.TagColor("???"), scheme.TagNone)
	}
}
