package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/quantum-flux/pkg/widgets"
)

// MinRefreshInterval is the shortest refresh period the cron-backed timers
// can honor.
const MinRefreshInterval = time.Second

var (
	logLevels = []string{"debug", "info", "warn", "error"}
	protocols = []string{"auto", "halfblocks", "kitty", "iterm2", "sixel", "none"}
)

// Validate reports every invalid setting in one joined error.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(logLevels, strings.ToLower(c.General.LogLevel)) {
		errs = append(errs, fmt.Errorf("general.log_level: unknown level %q", c.General.LogLevel))
	}

	d := c.Dashboard
	if d.RefreshInterval.Duration < MinRefreshInterval {
		errs = append(errs, fmt.Errorf("dashboard.refresh_interval: %s is below %s", d.RefreshInterval, MinRefreshInterval))
	}
	if d.CanvasWidth <= 0 || d.CanvasHeight <= 0 {
		errs = append(errs, fmt.Errorf("dashboard.canvas: size %dx%d must be positive", d.CanvasWidth, d.CanvasHeight))
	}
	if d.TickBuffer <= 0 {
		errs = append(errs, fmt.Errorf("dashboard.tick_buffer: %d must be positive", d.TickBuffer))
	}
	if d.Preset != "" && !slices.Contains(PresetNames(), d.Preset) {
		errs = append(errs, fmt.Errorf("dashboard.preset: unknown preset %q", d.Preset))
	}
	for _, name := range d.InitialWidgets {
		if _, ok := widgets.ParseKind(name); !ok {
			errs = append(errs, fmt.Errorf("dashboard.initial_widgets: unknown widget type %q", name))
		}
	}

	if c.Theme.Name == "" {
		errs = append(errs, errors.New("theme.name: must not be empty"))
	}

	if !slices.Contains(protocols, strings.ToLower(c.Image.Protocol)) {
		errs = append(errs, fmt.Errorf("image.protocol: unknown protocol %q", c.Image.Protocol))
	}
	if c.Image.Scale < 1 {
		errs = append(errs, fmt.Errorf("image.scale: %d must be at least 1", c.Image.Scale))
	}

	return errors.Join(errs...)
}
