package chart

import (
	"image/color"
	"strconv"
	"strings"
)

// ParseHex parses "#RRGGBB" or "RRGGBB" into an opaque color.
func ParseHex(hex string) (color.RGBA, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, true
}

// Hex formats c as "#rrggbb", ignoring alpha.
func Hex(c color.RGBA) string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+i*2] = digits[v>>4]
		b[2+i*2] = digits[v&0x0f]
	}
	return string(b)
}

// Mix linearly interpolates between two hex colors; t=0 yields a, t=1
// yields b. Unparseable inputs fall back to the other color.
func Mix(a, b string, t float64) string {
	ca, okA := ParseHex(a)
	cb, okB := ParseHex(b)
	switch {
	case !okA && !okB:
		return a
	case !okA:
		return b
	case !okB:
		return a
	}
	return Hex(mixRGBA(ca, cb, t))
}

func mixRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 0xff}
}
