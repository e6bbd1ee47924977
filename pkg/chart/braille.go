package chart

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Braille is a Surface that rasterizes onto a grid of terminal cells using
// Unicode Braille patterns, 2 dots wide and 4 dots tall per cell. Logical
// coordinates are scaled independently on each axis to the dot grid, so
// circles become ellipses when the cell aspect differs from the logical one.
//
// Stroke widths are ignored: every stroke is one dot thick. Text is placed
// on whole cells and overwrites any dots beneath it.
type Braille struct {
	cols, rows int

	scaleX, scaleY float64 // dots per logical unit

	dots  [][]uint8
	color [][]string
	text  [][]rune
	tcol  [][]string
}

// NewBraille returns a Braille surface of cols x rows cells. Sizes below one
// cell are raised to one.
func NewBraille(cols, rows int) *Braille {
	b := &Braille{}
	b.Resize(cols, rows)
	return b
}

// Resize changes the cell grid. The content is discarded; the next Clear
// sets the logical scale.
func (b *Braille) Resize(cols, rows int) {
	b.cols = max(cols, 1)
	b.rows = max(rows, 1)
	b.dots = make([][]uint8, b.rows)
	b.color = make([][]string, b.rows)
	b.text = make([][]rune, b.rows)
	b.tcol = make([][]string, b.rows)
	for r := range b.rows {
		b.dots[r] = make([]uint8, b.cols)
		b.color[r] = make([]string, b.cols)
		b.text[r] = make([]rune, b.cols)
		b.tcol[r] = make([]string, b.cols)
	}
	b.scaleX, b.scaleY = 1, 1
}

// Size returns the grid size in cells.
func (b *Braille) Size() (cols, rows int) {
	return b.cols, b.rows
}

// Clear erases every cell and maps the logical width x height onto the grid.
func (b *Braille) Clear(width, height float64) {
	for r := range b.rows {
		for c := range b.cols {
			b.dots[r][c] = 0
			b.color[r][c] = ""
			b.text[r][c] = 0
			b.tcol[r][c] = ""
		}
	}
	b.scaleX, b.scaleY = 1, 1
	if width > 0 {
		b.scaleX = float64(b.cols*2) / width
	}
	if height > 0 {
		b.scaleY = float64(b.rows*4) / height
	}
}

// StrokeLine plots a one-dot line between the endpoints.
func (b *Braille) StrokeLine(from, to Point, color string, _ float64) {
	x0, y0 := b.toDot(from)
	x1, y1 := b.toDot(to)
	b.line(x0, y0, x1, y1, color)
}

// StrokePolyline plots each segment.
func (b *Braille) StrokePolyline(pts []Point, color string, _ float64) {
	for i := 1; i < len(pts); i++ {
		b.StrokeLine(pts[i-1], pts[i], color, 1)
	}
	if len(pts) == 1 {
		x, y := b.toDot(pts[0])
		b.set(x, y, color)
	}
}

// FillCircle fills the dots whose centers fall inside the circle. A circle
// smaller than one dot still sets its center dot.
func (b *Braille) FillCircle(center Point, radius float64, color string) {
	cx, cy := b.toDot(center)
	b.set(cx, cy, color)
	b.fillWhere(center, radius, color, func(dx, dy float64) bool {
		return dx*dx+dy*dy <= radius*radius
	})
}

// FillRect sets every dot inside r. Gradients change color per dot row.
func (b *Braille) FillRect(r Rect, paint Paint) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0 := int(math.Floor(r.X * b.scaleX))
	x1 := int(math.Ceil((r.X+r.W)*b.scaleX)) - 1
	y0 := int(math.Floor(r.Y * b.scaleY))
	y1 := int(math.Ceil((r.Y+r.H)*b.scaleY)) - 1

	for y := y0; y <= y1; y++ {
		c := paint.From
		if paint.IsGradient() && y1 > y0 {
			c = Mix(paint.From, paint.To, float64(y-y0)/float64(y1-y0))
		}
		for x := x0; x <= x1; x++ {
			b.set(x, y, c)
		}
	}
}

// FillWedge sets the dots inside the sector.
func (b *Braille) FillWedge(center Point, radius, start, sweep float64, color string) {
	if sweep <= 0 {
		return
	}
	full := sweep >= 2*math.Pi
	b.fillWhere(center, radius, color, func(dx, dy float64) bool {
		if dx*dx+dy*dy > radius*radius {
			return false
		}
		if full {
			return true
		}
		a := normAngle(math.Atan2(dy, dx) - start)
		return a <= sweep
	})
}

// FillText writes text into the cell row containing the baseline.
func (b *Braille) FillText(text string, at Point, color string, _ Font, align Align) {
	runes := []rune(text)
	row := int(math.Floor(at.Y * b.scaleY / 4))
	col := int(math.Round(at.X * b.scaleX / 2))
	switch align {
	case AlignCenter:
		col -= len(runes) / 2
	case AlignRight:
		col -= len(runes)
	}
	if row < 0 || row >= b.rows {
		return
	}
	for i, r := range runes {
		c := col + i
		if c < 0 || c >= b.cols {
			continue
		}
		b.text[row][c] = r
		b.tcol[row][c] = color
	}
}

// Lines returns the grid as plain text, one string per row.
func (b *Braille) Lines() []string {
	lines := make([]string, b.rows)
	for r := range b.rows {
		var sb strings.Builder
		for c := range b.cols {
			ch, _ := b.cell(r, c)
			sb.WriteRune(ch)
		}
		lines[r] = sb.String()
	}
	return lines
}

// String renders the grid with colored runs, rows joined by newlines.
func (b *Braille) String() string {
	lines := make([]string, b.rows)
	for r := range b.rows {
		var sb strings.Builder
		var run strings.Builder
		runColor := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(runColor)).Render(run.String()))
			}
			run.Reset()
		}
		for c := range b.cols {
			ch, col := b.cell(r, c)
			if col != runColor {
				flush()
				runColor = col
			}
			run.WriteRune(ch)
		}
		flush()
		lines[r] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// DotCount returns the number of set dots, ignoring text.
func (b *Braille) DotCount() int {
	n := 0
	for r := range b.rows {
		for c := range b.cols {
			for v := b.dots[r][c]; v != 0; v &= v - 1 {
				n++
			}
		}
	}
	return n
}

func (b *Braille) cell(r, c int) (rune, string) {
	if t := b.text[r][c]; t != 0 {
		return t, b.tcol[r][c]
	}
	if d := b.dots[r][c]; d != 0 {
		return rune(0x2800) + rune(d), b.color[r][c]
	}
	return ' ', ""
}

func (b *Braille) toDot(p Point) (int, int) {
	return int(math.Floor(p.X * b.scaleX)), int(math.Floor(p.Y * b.scaleY))
}

func (b *Braille) set(x, y int, color string) {
	if x < 0 || y < 0 || x >= b.cols*2 || y >= b.rows*4 {
		return
	}
	r, c := y/4, x/2
	b.dots[r][c] |= brailleBit(x%2, y%4)
	b.color[r][c] = color
}

// line is Bresenham's algorithm over dot coordinates.
func (b *Braille) line(x0, y0, x1, y1 int, color string) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		b.set(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// fillWhere visits the dots in the bounding box of a circle and sets those
// whose center, in logical units relative to center, satisfies inside.
func (b *Braille) fillWhere(center Point, radius float64, color string, inside func(dx, dy float64) bool) {
	if radius <= 0 {
		return
	}
	x0 := int(math.Floor((center.X - radius) * b.scaleX))
	x1 := int(math.Ceil((center.X + radius) * b.scaleX))
	y0 := int(math.Floor((center.Y - radius) * b.scaleY))
	y1 := int(math.Ceil((center.Y + radius) * b.scaleY))
	for y := y0; y <= y1; y++ {
		ly := (float64(y)+0.5)/b.scaleY - center.Y
		for x := x0; x <= x1; x++ {
			lx := (float64(x)+0.5)/b.scaleX - center.X
			if inside(lx, ly) {
				b.set(x, y, color)
			}
		}
	}
}

// brailleBit returns the bitmask for a dot at offset (offX, offY) within a
// Braille cell. offX is 0 (left) or 1 (right). offY is 0..3 (top to bottom).
//
//	1 4      bit: 0x01  0x08
//	2 5           0x02  0x10
//	3 6           0x04  0x20
//	7 8           0x40  0x80
func brailleBit(offX, offY int) uint8 {
	leftBits := [4]uint8{0x01, 0x02, 0x04, 0x40}
	rightBits := [4]uint8{0x08, 0x10, 0x20, 0x80}

	if offY < 0 || offY > 3 {
		return 0
	}
	if offX == 0 {
		return leftBits[offY]
	}
	return rightBits[offY]
}

// normAngle maps a into [0, 2π).
func normAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
