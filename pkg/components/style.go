package components

import (
	"fmt"
	"strconv"
	"strings"
)

// Color produces an ANSI foreground escape sequence. A hex color like
// "#ff5500" or "ff5500" gives a true-color (24-bit) sequence; a 256-color
// index like "196", as produced by theme.Adapt, gives an indexed one.
// Returns an empty string if the input is empty or malformed. Raw escape
// sequences are passed through.
func Color(c string) string {
	return colorSeq(38, c)
}

// BgColor is Color for the background.
func BgColor(c string) string {
	return colorSeq(48, c)
}

// Reset returns the ANSI reset sequence that clears all styling.
func Reset() string {
	return "\x1b[0m"
}

func colorSeq(base int, c string) string {
	if strings.HasPrefix(c, "\x1b") {
		return c
	}
	if r, g, b, ok := parseHex(c); ok {
		return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", base, r, g, b)
	}
	if n, err := strconv.ParseUint(c, 10, 8); err == nil {
		return fmt.Sprintf("\x1b[%d;5;%dm", base, n)
	}
	return ""
}

// parseHex parses "#RRGGBB" or "RRGGBB".
func parseHex(hex string) (r, g, b uint8, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
