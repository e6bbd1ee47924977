// Package config provides TOML-based configuration for quantum-flux.
package config

// Config is the complete configuration file.
type Config struct {
	General   GeneralConfig   `toml:"general"`
	Dashboard DashboardConfig `toml:"dashboard"`
	Theme     ThemeConfig     `toml:"theme"`
	Image     ImageConfig     `toml:"image"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"` // debug, info, warn, error
	LogFile  string `toml:"log_file"`  // empty disables file logging
	Seed     uint64 `toml:"seed"`      // 0 seeds from the clock
}

// DashboardConfig controls widgets and refresh timing.
type DashboardConfig struct {
	RefreshInterval Duration `toml:"refresh_interval"`
	CanvasWidth     int      `toml:"canvas_width"`
	CanvasHeight    int      `toml:"canvas_height"`
	// Preset names a starting widget set; InitialWidgets, when non-empty,
	// replaces it.
	Preset         string   `toml:"preset"`
	InitialWidgets []string `toml:"initial_widgets"`
	TickBuffer     int      `toml:"tick_buffer"`
}

// ThemeConfig selects the color scheme.
type ThemeConfig struct {
	Name      string `toml:"name"`
	CustomDir string `toml:"custom_dir"`
}

// ImageConfig controls snapshot output.
type ImageConfig struct {
	Protocol string `toml:"protocol"` // auto, halfblocks, kitty, iterm2, sixel, none
	Scale    int    `toml:"scale"`    // pixels per logical unit in PNG snapshots
}

// StartWidgets returns the widget kinds to create at startup.
func (c *Config) StartWidgets() []string {
	if len(c.Dashboard.InitialWidgets) > 0 {
		return c.Dashboard.InitialWidgets
	}
	return WidgetPreset(c.Dashboard.Preset)
}
