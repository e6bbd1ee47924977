package config

import (
	"fmt"
	"time"
)

// Duration wraps time.Duration for TOML. It accepts Go duration strings
// ("500ms", "2s", "1m") or a bare integer number of milliseconds.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler so integer values can be read
// as milliseconds.
func (d *Duration) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		return d.UnmarshalText([]byte(v))
	case int64:
		if v < 0 {
			return fmt.Errorf("negative duration %dms not allowed", v)
		}
		d.Duration = time.Duration(v) * time.Millisecond
		return nil
	default:
		return fmt.Errorf("invalid duration %v: want a string or milliseconds", v)
	}
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
