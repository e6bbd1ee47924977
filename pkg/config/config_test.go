package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Dashboard.RefreshInterval.Duration != 2*time.Second {
		t.Errorf("RefreshInterval = %v, want 2s", cfg.Dashboard.RefreshInterval)
	}
	if cfg.Dashboard.CanvasWidth != 400 || cfg.Dashboard.CanvasHeight != 250 {
		t.Errorf("canvas = %dx%d, want 400x250", cfg.Dashboard.CanvasWidth, cfg.Dashboard.CanvasHeight)
	}
	if cfg.Theme.Name != "dark" {
		t.Errorf("Theme.Name = %q, want dark", cfg.Theme.Name)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
	if got := strings.Join(cfg.StartWidgets(), ","); got != "line,bar,metric" {
		t.Errorf("StartWidgets() = %q, want line,bar,metric", got)
	}
}

func TestLoadFromReader(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromReader(strings.NewReader(`
[general]
log_level = "debug"
seed = 7

[dashboard]
refresh_interval = "5s"
initial_widgets = ["pie", "metric"]

[theme]
name = "light"
`))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.General.LogLevel != "debug" || cfg.General.Seed != 7 {
		t.Errorf("general = %+v", cfg.General)
	}
	if cfg.Dashboard.RefreshInterval.Duration != 5*time.Second {
		t.Errorf("RefreshInterval = %v, want 5s", cfg.Dashboard.RefreshInterval)
	}
	if cfg.Dashboard.CanvasWidth != 400 {
		t.Errorf("unset CanvasWidth = %d, want default 400", cfg.Dashboard.CanvasWidth)
	}
	if got := strings.Join(cfg.StartWidgets(), ","); got != "pie,metric" {
		t.Errorf("StartWidgets() = %q, want pie,metric", got)
	}
	if cfg.Theme.Name != "light" {
		t.Errorf("Theme.Name = %q, want light", cfg.Theme.Name)
	}
}

func TestLoadFromReaderUnknownKey(t *testing.T) {
	clearEnv(t)
	_, err := LoadFromReader(strings.NewReader("[dashboard]\nrefresh = \"1s\"\n"))
	if err == nil || !strings.Contains(err.Error(), "dashboard.refresh") {
		t.Errorf("err = %v, want unknown key dashboard.refresh", err)
	}
}

func TestLoadFromReaderBadDuration(t *testing.T) {
	clearEnv(t)
	for _, in := range []string{`"soon"`, `"-2s"`, `-5`, `true`} {
		_, err := LoadFromReader(strings.NewReader("[dashboard]\nrefresh_interval = " + in + "\n"))
		if err == nil {
			t.Errorf("refresh_interval = %s: expected error", in)
		}
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("QFLUX_THEME", "light")
	t.Setenv("QFLUX_SEED", "99")
	t.Setenv("QFLUX_PROTOCOL", "halfblocks")

	cfg, err := LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	if cfg.Theme.Name != "light" || cfg.General.Seed != 99 || cfg.Image.Protocol != "halfblocks" {
		t.Errorf("overrides not applied: %+v %+v %+v", cfg.Theme, cfg.General, cfg.Image)
	}
}

func TestEnvOverrideBadSeed(t *testing.T) {
	clearEnv(t)
	t.Setenv("QFLUX_SEED", "abc")
	if _, err := LoadFromReader(strings.NewReader("")); err == nil {
		t.Error("expected error for non-numeric QFLUX_SEED")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFromFile(missing) = %v", err)
	}
	if cfg.Dashboard.Preset != "default" {
		t.Errorf("Preset = %q, want default", cfg.Dashboard.Preset)
	}
}

func TestLoadSearchesXDG(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, AppName), 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, AppName, "config.toml")
	if err := os.WriteFile(path, []byte("[theme]\nname = \"light\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme.Name != "light" {
		t.Errorf("Theme.Name = %q, want light", cfg.Theme.Name)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"short interval", func(c *Config) { c.Dashboard.RefreshInterval.Duration = 100 * time.Millisecond }, "refresh_interval"},
		{"zero canvas", func(c *Config) { c.Dashboard.CanvasWidth = 0 }, "canvas"},
		{"zero buffer", func(c *Config) { c.Dashboard.TickBuffer = 0 }, "tick_buffer"},
		{"unknown widget", func(c *Config) { c.Dashboard.InitialWidgets = []string{"radar"} }, "radar"},
		{"unknown preset", func(c *Config) { c.Dashboard.Preset = "huge" }, "preset"},
		{"bad level", func(c *Config) { c.General.LogLevel = "loud" }, "log_level"},
		{"bad protocol", func(c *Config) { c.Image.Protocol = "vga" }, "protocol"},
		{"zero scale", func(c *Config) { c.Image.Scale = 0 }, "scale"},
		{"empty theme", func(c *Config) { c.Theme.Name = "" }, "theme.name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dashboard.TickBuffer = -1
	cfg.Image.Scale = 0
	err := cfg.Validate()
	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) || len(joined.Unwrap()) != 2 {
		t.Errorf("Validate() = %v, want two joined errors", err)
	}
}

func TestWidgetPreset(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"default", "line,bar,metric"},
		{"full", "line,bar,pie,metric"},
		{"charts", "line,bar,pie"},
		{"empty", ""},
		{"whatever", "line,bar,metric"},
	}
	for _, tt := range tests {
		if got := strings.Join(WidgetPreset(tt.name), ","); got != tt.want {
			t.Errorf("WidgetPreset(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDurationText(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1500ms")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if d.Duration != 1500*time.Millisecond {
		t.Errorf("Duration = %v, want 1.5s", d.Duration)
	}
	out, _ := d.MarshalText()
	if string(out) != "1.5s" {
		t.Errorf("MarshalText = %q, want 1.5s", out)
	}
	if err := d.UnmarshalText(nil); err != nil || d.Duration != 0 {
		t.Errorf("empty UnmarshalText = %v, %v", d.Duration, err)
	}
}

func TestDurationMilliseconds(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFromReader(strings.NewReader("[dashboard]\nrefresh_interval = 2500\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Dashboard.RefreshInterval.Duration; got != 2500*time.Millisecond {
		t.Errorf("refresh_interval = %v, want 2.5s", got)
	}
}

// --- helpers ---

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"QFLUX_THEME", "QFLUX_SEED", "QFLUX_PROTOCOL"} {
		t.Setenv(k, "")
	}
}
