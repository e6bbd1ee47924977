package theme

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name   string       `toml:"name"`
	Base   thTOMLBase   `toml:"base"`
	Widget thTOMLWidget `toml:"widget"`
	Change thTOMLChange `toml:"change"`
	Help   thTOMLHelp   `toml:"help"`
}

type thTOMLBase struct {
	Background    string `toml:"background"`
	Surface       string `toml:"surface"`
	Foreground    string `toml:"foreground"`
	TextSecondary string `toml:"text_secondary"`
	Accent        string `toml:"accent"`
}

type thTOMLWidget struct {
	Border      string `toml:"border"`
	BorderFocus string `toml:"border_focus"`
}

type thTOMLChange struct {
	Positive string `toml:"positive"`
	Negative string `toml:"negative"`
}

type thTOMLHelp struct {
	Key  string `toml:"key"`
	Desc string `toml:"desc"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:          tt.Name,
		Background:    tt.Base.Background,
		Surface:       tt.Base.Surface,
		Foreground:    tt.Base.Foreground,
		TextSecondary: tt.Base.TextSecondary,
		Accent:        tt.Base.Accent,

		Border:      tt.Widget.Border,
		BorderFocus: tt.Widget.BorderFocus,

		Positive: tt.Change.Positive,
		Negative: tt.Change.Negative,

		HelpKey:  tt.Help.Key,
		HelpDesc: tt.Help.Desc,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}

	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Base: thTOMLBase{
			Background:    t.Background,
			Surface:       t.Surface,
			Foreground:    t.Foreground,
			TextSecondary: t.TextSecondary,
			Accent:        t.Accent,
		},
		Widget: thTOMLWidget{
			Border:      t.Border,
			BorderFocus: t.BorderFocus,
		},
		Change: thTOMLChange{
			Positive: t.Positive,
			Negative: t.Negative,
		},
		Help: thTOMLHelp{
			Key:  t.HelpKey,
			Desc: t.HelpDesc,
		},
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadDir registers every *.toml theme in dir and returns the names it
// loaded, sorted. A theme named dark or light replaces that builtin. The
// first invalid file aborts the load; themes registered before it stay.
func LoadDir(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("theme: scan %s: %w", dir, err)
	}
	sort.Strings(paths)

	var names []string
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return names, fmt.Errorf("theme: read %s: %w", p, err)
		}
		t, err := LoadFromTOML(data)
		if err != nil {
			return names, fmt.Errorf("theme: load %s: %w", filepath.Base(p), err)
		}
		t.Name = strings.ToLower(t.Name)
		thRegister(t)
		names = append(names, t.Name)
	}
	return names, nil
}

// thValidateTheme checks that all required color fields are present and valid hex.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}

	colorFields := []struct {
		field, value string
	}{
		{"background", t.Background},
		{"surface", t.Surface},
		{"foreground", t.Foreground},
		{"text_secondary", t.TextSecondary},
		{"accent", t.Accent},
		{"border", t.Border},
		{"border_focus", t.BorderFocus},
		{"positive", t.Positive},
		{"negative", t.Negative},
		{"help_key", t.HelpKey},
		{"help_desc", t.HelpDesc},
	}

	for _, f := range colorFields {
		if f.value == "" {
			return fmt.Errorf("theme: missing required field %q", f.field)
		}
	}
	for _, f := range colorFields {
		if !thHexColorRegex.MatchString(f.value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", f.value, f.field)
		}
	}

	return nil
}
