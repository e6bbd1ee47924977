// Package theme holds the dashboard color schemes. Two builtins, dark and
// light, are always registered; custom schemes can be loaded from TOML
// files and either add a new name or replace a builtin.
package theme

import (
	"sort"
	"strings"
	"sync"

	"gitlab.com/tinyland/lab/quantum-flux/pkg/chart"
)

// Builtin theme names.
const (
	Dark  = "dark"
	Light = "light"
)

// Theme defines the complete color palette for the dashboard.
type Theme struct {
	Name string

	// Base colors
	Background    string // hex color e.g. "#0f172a"
	Surface       string // widget tile background
	Foreground    string // primary text
	TextSecondary string // labels, captions
	Accent        string // highlights, focused borders

	// Widget colors
	Border      string // unfocused tile borders, chart gridlines
	BorderFocus string // focused tile border

	// Change colors for the metric tile
	Positive string
	Negative string

	// Help
	HelpKey  string // keybinding highlight color
	HelpDesc string // help description color
}

// Palette returns the theme-dependent colors the chart renderer uses.
func (t Theme) Palette() chart.Palette {
	return chart.Palette{
		Grid:       t.Border,
		Text:       t.TextSecondary,
		Background: t.Surface,
	}
}

// Icon returns the toggle glyph shown for the theme.
func (t Theme) Icon() string {
	if t.Name == Light {
		return "☀️"
	}
	return "🌙"
}

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
}

// Get returns a named theme, falling back to dark if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry[Dark]
}

// Has reports whether a theme is registered under name.
func Has(name string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := registry[strings.ToLower(name)]
	return ok
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Toggle returns the name the theme button switches to: light from dark,
// dark from anything else.
func Toggle(name string) string {
	if strings.EqualFold(name, Dark) {
		return Light
	}
	return Dark
}

// Register adds or replaces a theme under its lowercase name.
func Register(t Theme) error {
	if err := thValidateTheme(t); err != nil {
		return err
	}
	thRegister(t)
	return nil
}

// thRegister adds a theme to the registry under its lowercase name.
func thRegister(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}

// reset restores the builtin-only registry.
func reset() {
	mu.Lock()
	registry = map[string]Theme{}
	mu.Unlock()
	thRegisterBuiltins()
}
