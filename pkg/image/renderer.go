// Package image turns chart widgets into pictures: PNG snapshots drawn by
// the raster surface, and inline terminal images written with the kitty,
// iTerm2 or sixel protocols or with colored half blocks.
package image

import (
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/blacktop/go-termimg"

	"gitlab.com/tinyland/lab/quantum-flux/pkg/terminal"
)

// ErrDisabled is returned by Render when the protocol is none.
var ErrDisabled = errors.New("image rendering is disabled (protocol=none)")

// Renderer writes images as terminal escape sequences.
type Renderer struct {
	protocol terminal.GraphicsProtocol
	cellW    int
	cellH    int
}

// NewRenderer returns a Renderer for proto. The terminal size supplies the
// cell pixel size graphics protocols resize against; zero values fall back
// to 8x16.
func NewRenderer(proto terminal.GraphicsProtocol, size terminal.Size) *Renderer {
	r := &Renderer{protocol: proto, cellW: size.CellW, cellH: size.CellH}
	if r.cellW <= 0 {
		r.cellW = 8
	}
	if r.cellH <= 0 {
		r.cellH = 16
	}
	return r
}

// Protocol returns the active rendering protocol.
func (r *Renderer) Protocol() terminal.GraphicsProtocol {
	return r.protocol
}

// Render converts img to an escape string that fits in cols x rows cells.
func (r *Renderer) Render(img image.Image, cols, rows int) (string, error) {
	if img == nil {
		return "", errors.New("image is nil")
	}

	var (
		out string
		err error
	)
	switch r.protocol {
	case terminal.ProtocolNone:
		return "", ErrDisabled
	case terminal.ProtocolKitty:
		out, err = r.renderTermimg(img, termimg.Kitty, cols, rows)
	case terminal.ProtocolITerm2:
		out, err = r.renderTermimg(img, termimg.ITerm2, cols, rows)
	case terminal.ProtocolSixel:
		out, err = r.renderTermimg(img, termimg.Sixel, cols, rows)
	default:
		// Each half-block cell shows one pixel column and two pixel rows.
		out = renderHalfblocks(ResizeToFit(img, cols, rows, 1, 2))
	}
	if err != nil {
		return "", fmt.Errorf("render %s: %w", r.protocol, err)
	}
	return out, nil
}

// renderTermimg delegates to go-termimg for the graphics protocols.
func (r *Renderer) renderTermimg(img image.Image, proto termimg.Protocol, cols, rows int) (string, error) {
	ti := termimg.New(ResizeToFit(img, cols, rows, r.cellW, r.cellH))
	if ti == nil {
		return "", errors.New("go-termimg: failed to create image wrapper")
	}
	ti.Protocol(proto).Size(cols, rows).Scale(termimg.ScaleFit)
	return ti.Render()
}

// renderHalfblocks draws two pixel rows per line with the upper half block:
// the top pixel is the foreground, the bottom pixel the background.
// Transparent pixels show the terminal background.
func renderHalfblocks(img image.Image) string {
	src := ImageToNRGBA(img)
	b := src.Bounds()
	if b.Empty() {
		return ""
	}

	var sb strings.Builder
	sb.Grow(b.Dx() * (b.Dy()/2 + 1) * 30)
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteString("\x1b[0m\n")
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := src.NRGBAAt(x, y)
			bot := src.NRGBAAt(x, y+1) // zero outside the bounds
			switch {
			case top.A == 0 && bot.A == 0:
				sb.WriteString("\x1b[0m ")
			case top.A == 0:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[49m▄", bot.R, bot.G, bot.B)
			case bot.A == 0:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[49m▀", top.R, top.G, top.B)
			default:
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
					top.R, top.G, top.B, bot.R, bot.G, bot.B)
			}
		}
	}
	sb.WriteString("\x1b[0m")
	return sb.String()
}
