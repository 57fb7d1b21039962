package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestSocketPath_DerivedFromEnvironment(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	t.Setenv("WAYLAND_DISPLAY", "wayland-1")

	got := Default().SocketPath()
	want := "/run/user/1000/nirius-wayland-1.sock"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSocketPath_Fallbacks(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "")
	t.Setenv("WAYLAND_DISPLAY", "")

	got := Default().SocketPath()
	want := "/tmp/nirius-unknown.sock"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSocketPath_Override(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	cfg := Default()
	cfg.ControlSocket = "/tmp/custom.sock"

	if got := cfg.SocketPath(); got != "/tmp/custom.sock" {
		t.Errorf("expected the override, got %q", got)
	}
}

func TestLoad_WritesDefaultOnFirstUse(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	cfg := Load()
	if cfg.LogLevel != "info" || cfg.DefaultMark != "default" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if _, err := os.Stat(filepath.Join(home, "nirius", "config.yaml")); err != nil {
		t.Errorf("expected default config written: %v", err)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "nirius")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "log-level: debug\ndefault-mark: work\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load()
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log-level debug, got %q", cfg.LogLevel)
	}
	if cfg.DefaultMark != "work" {
		t.Errorf("expected default-mark work, got %q", cfg.DefaultMark)
	}
}

func TestLoad_InvalidFileDegradesToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	dir := filepath.Join(home, "nirius")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := Load()
	if cfg.LogLevel != "info" || cfg.DefaultMark != "default" {
		t.Errorf("expected defaults for an invalid file, got %+v", cfg)
	}
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
		"":      slog.LevelInfo,
	}
	for in, want := range cases {
		cfg := Default()
		cfg.LogLevel = in
		if got := cfg.SlogLevel(); got != want {
			t.Errorf("level %q: expected %v, got %v", in, want, got)
		}
	}
}
