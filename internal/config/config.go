// Package config handles selkit browser configuration persistence.
// Settings are stored in ~/.config/selkit/config.toml.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the browser's user-facing settings.
type Config struct {
	Theme                 string `toml:"theme"`
	SelectionMode         string `toml:"selection_mode"`
	Columns               int    `toml:"columns"`
	SelectionFollowsFocus bool   `toml:"selection_follows_focus"`
	DisallowEmpty         bool   `toml:"disallow_empty_selection"`
	Wrap                  bool   `toml:"wrap"`
}

const (
	defaultConfigPath = "~/.config/selkit/config.toml"
	defaultTheme      = "dark"
	defaultMode       = "multiple"
)

// DefaultPath returns the default configuration file path.
func DefaultPath() string {
	return defaultConfigPath
}

func defaults() Config {
	return Config{
		Theme:         defaultTheme,
		SelectionMode: defaultMode,
		Columns:       1,
	}
}

// Load reads the config from the given path, falling back to defaults when
// the file is missing or unreadable. A broken config never blocks startup.
func Load(path string) Config {
	cfg := defaults()

	resolved, err := resolvePath(path)
	if err != nil {
		return cfg
	}

	file, err := os.Open(resolved)
	if err != nil {
		return cfg // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return cfg
	}

	if err := toml.Unmarshal(bytes, &cfg); err != nil {
		return defaults()
	}

	if strings.TrimSpace(cfg.Theme) == "" {
		cfg.Theme = defaultTheme
	}
	switch cfg.SelectionMode {
	case "none", "single", "multiple":
	default:
		cfg.SelectionMode = defaultMode
	}
	if cfg.Columns < 1 {
		cfg.Columns = 1
	}

	return cfg
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg Config) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	bytes, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", errors.New("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
