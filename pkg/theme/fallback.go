package theme

import (
	"strconv"

	"github.com/muesli/termenv"
)

// Adapt converts the hex colors of t to ANSI color indexes when the
// terminal has fewer than 24 bits of color: 256-color indexes at depth 8,
// the 16 basic colors at depth 4 and no color at all below that. Colors
// that are not hex are kept as they are.
//
// Adapted themes are for terminal styling only; chart surfaces need the
// hex form returned by Get.
func Adapt(t Theme, colorDepth int) Theme {
	if colorDepth >= 24 {
		return t
	}
	p := profileForDepth(colorDepth)
	conv := func(c string) string { return thConvert(p, c) }

	t.Background = conv(t.Background)
	t.Surface = conv(t.Surface)
	t.Foreground = conv(t.Foreground)
	t.TextSecondary = conv(t.TextSecondary)
	t.Accent = conv(t.Accent)

	t.Border = conv(t.Border)
	t.BorderFocus = conv(t.BorderFocus)

	t.Positive = conv(t.Positive)
	t.Negative = conv(t.Negative)

	t.HelpKey = conv(t.HelpKey)
	t.HelpDesc = conv(t.HelpDesc)

	return t
}

// DepthFromProfile maps a termenv color profile to the bit depth Adapt
// expects.
func DepthFromProfile(p termenv.Profile) int {
	switch p {
	case termenv.TrueColor:
		return 24
	case termenv.ANSI256:
		return 8
	case termenv.ANSI:
		return 4
	default:
		return 1
	}
}

func profileForDepth(depth int) termenv.Profile {
	switch {
	case depth >= 24:
		return termenv.TrueColor
	case depth >= 8:
		return termenv.ANSI256
	case depth >= 4:
		return termenv.ANSI
	default:
		return termenv.Ascii
	}
}

// thConvert returns the index of the nearest color p can show, as a
// string lipgloss accepts. termenv chooses between the 6x6x6 cube and the
// gray ramp by HSLuv distance, so exact grays may map into the cube.
func thConvert(p termenv.Profile, hex string) string {
	if p == termenv.Ascii {
		return ""
	}
	switch c := p.Color(hex).(type) {
	case termenv.ANSI256Color:
		return strconv.Itoa(int(c))
	case termenv.ANSIColor:
		return strconv.Itoa(int(c))
	default:
		return hex
	}
}
