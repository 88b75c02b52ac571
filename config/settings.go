package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Settings holds the application's own preferences. Credentials live elsewhere.
type Settings struct {
	Log       LogSettings       `toml:"log"`
	Clipboard ClipboardSettings `toml:"clipboard"`
	History   HistorySettings   `toml:"history"`
	Tray      TraySettings      `toml:"tray"`
}

type LogSettings struct {
	Level string `toml:"level"`
}

type ClipboardSettings struct {
	OpenRetries  int `toml:"open_retries"`
	RetryDelayMs int `toml:"retry_delay_ms"`
}

type HistorySettings struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

type TraySettings struct {
	Enabled bool `toml:"enabled"`
}

// Default settings
func defaultSettings() *Settings {
	return &Settings{
		Log: LogSettings{
			Level: "info",
		},
		Clipboard: ClipboardSettings{
			OpenRetries:  10,
			RetryDelayMs: 10,
		},
		History: HistorySettings{
			Enabled: true,
		},
		Tray: TraySettings{
			Enabled: true,
		},
	}
}

// SettingsDir returns the per-user directory holding settings and history
func SettingsDir() (string, error) {
	base := os.Getenv("APPDATA")
	if base == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to locate config directory: %w", err)
		}
		base = dir
	}
	return filepath.Join(base, "gpwhelper"), nil
}

// SettingsPath returns the default path to the settings file
func SettingsPath() (string, error) {
	dir, err := SettingsDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.toml"), nil
}

// LoadSettings loads settings from path, or from SettingsPath when path is empty.
// A missing file is created with default values.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		p, err := SettingsPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := defaultSettings()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := saveSettings(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default settings: %w", err)
		}
	} else if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	if cfg.History.Path == "" {
		cfg.History.Path = filepath.Join(filepath.Dir(path), "history.db")
	}
	if _, err := cfg.LogLevel(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// saveSettings writes the settings to the TOML file
func saveSettings(path string, cfg *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// LogLevel maps the configured level name to a slog level
func (s *Settings) LogLevel() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s.Log.Level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", s.Log.Level)
	}
}

// RetryDelay returns the pause between clipboard open attempts
func (s *Settings) RetryDelay() time.Duration {
	return time.Duration(s.Clipboard.RetryDelayMs) * time.Millisecond
}
