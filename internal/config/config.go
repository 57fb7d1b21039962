// Package config loads the nirius YAML configuration and derives the
// control-socket path.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk daemon configuration. Every field has a working
// default, so a missing or broken config never stops the daemon.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log-level"`
	// DefaultMark is the mark used by mark commands without --mark.
	DefaultMark string `yaml:"default-mark"`
	// ControlSocket overrides the derived nirius socket path.
	ControlSocket string `yaml:"control-socket,omitempty"`
}

func Default() Config {
	return Config{
		LogLevel:    "info",
		DefaultMark: "default",
	}
}

// Path returns the user config file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "nirius", "config.yaml"), nil
}

// Load reads the config file, writing a default one on first use. An
// unreadable or invalid file degrades to defaults with a log line instead
// of failing.
func Load() Config {
	path, err := Path()
	if err != nil {
		slog.Error("could not resolve config path, using defaults", "error", err)
		return Default()
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if err := save(path, cfg); err != nil {
			slog.Debug("could not write default config", "path", path, "error", err)
		}
		return cfg
	}
	if err != nil {
		slog.Error("could not read config, using defaults", "path", path, "error", err)
		return Default()
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		slog.Error("invalid config, using defaults", "path", path, "error", err)
		return Default()
	}
	return cfg
}

func save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// SocketPath returns the control-socket path: the configured override, or
// $XDG_RUNTIME_DIR/nirius-$WAYLAND_DISPLAY.sock with /tmp and "unknown" as
// fallbacks.
func (c Config) SocketPath() string {
	if c.ControlSocket != "" {
		return c.ControlSocket
	}
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		runtimeDir = "/tmp"
	}
	display := os.Getenv("WAYLAND_DISPLAY")
	if display == "" {
		display = "unknown"
	}
	return filepath.Join(runtimeDir, fmt.Sprintf("nirius-%s.sock", display))
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
