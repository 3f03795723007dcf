package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := Load(filepath.Join(home, "does-not-exist.toml"))
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
	if cfg.SelectionMode != defaultMode {
		t.Fatalf("SelectionMode = %q, want %q", cfg.SelectionMode, defaultMode)
	}
	if cfg.Columns != 1 {
		t.Fatalf("Columns = %d, want 1", cfg.Columns)
	}
}

func TestLoadParsesAndValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
theme = "light"
selection_mode = "banana"
columns = -3
wrap = true
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := Load(path)
	if cfg.Theme != "light" {
		t.Fatalf("Theme = %q, want light", cfg.Theme)
	}
	if cfg.SelectionMode != defaultMode {
		t.Fatalf("SelectionMode = %q, want %q (invalid value rejected)", cfg.SelectionMode, defaultMode)
	}
	if cfg.Columns != 1 {
		t.Fatalf("Columns = %d, want 1 (floor applied)", cfg.Columns)
	}
	if !cfg.Wrap {
		t.Fatalf("Wrap should be true")
	}
}

func TestLoadCorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("{{{not toml"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := Load(path)
	if cfg.Theme != defaultTheme || cfg.SelectionMode != defaultMode {
		t.Fatalf("corrupt config should yield defaults, got %#v", cfg)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	want := Config{
		Theme:                 "light",
		SelectionMode:         "single",
		Columns:               4,
		SelectionFollowsFocus: true,
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := Load(path)
	if got != want {
		t.Fatalf("round trip = %#v, want %#v", got, want)
	}
}
