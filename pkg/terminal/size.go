package terminal

import (
	"os"
	"strconv"

	"github.com/charmbracelet/x/term"
	"golang.org/x/sys/unix"
)

// Size represents terminal dimensions in both character cells and pixels.
type Size struct {
	Cols  int // Character columns
	Rows  int // Character rows
	CellW int // Pixel width per cell (0 if unknown)
	CellH int // Pixel height per cell (0 if unknown)
}

// GetSize returns the dimensions of the terminal on stdout, or stderr when
// stdout is redirected. It tries TIOCGWINSZ (which also reports pixels),
// then x/term, then COLUMNS/LINES, then 80x24.
func GetSize() Size {
	for _, f := range []*os.File{os.Stdout, os.Stderr} {
		if s := getSizeFromIoctl(f.Fd()); s.Cols > 0 && s.Rows > 0 {
			return s
		}
		if cols, rows, err := term.GetSize(f.Fd()); err == nil && cols > 0 && rows > 0 {
			return Size{Cols: cols, Rows: rows}
		}
	}
	return getSizeFromEnv()
}

// getSizeFromIoctl queries the terminal size via TIOCGWINSZ ioctl.
// Returns a zero-value Size on failure.
func getSizeFromIoctl(fd uintptr) Size {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return Size{}
	}

	s := Size{Cols: int(ws.Col), Rows: int(ws.Row)}
	if ws.Xpixel > 0 && s.Cols > 0 {
		s.CellW = int(ws.Xpixel) / s.Cols
	}
	if ws.Ypixel > 0 && s.Rows > 0 {
		s.CellH = int(ws.Ypixel) / s.Rows
	}
	return s
}

// getSizeFromEnv reads COLUMNS/LINES, falling back to 80x24.
func getSizeFromEnv() Size {
	return Size{Cols: envInt("COLUMNS", 80), Rows: envInt("LINES", 24)}
}

// envInt reads a positive integer from the named environment variable.
func envInt(name string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
