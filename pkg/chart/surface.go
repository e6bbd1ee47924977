// Package chart computes chart geometry and issues drawing operations onto
// an abstract 2-D Surface. Geometry is pure and independent of the surface;
// Render only translates it into Surface calls.
//
// Coordinates are logical units with the origin at the top-left corner and
// y growing downward. Angles are radians measured from the positive x axis;
// because y grows downward, a positive sweep runs clockwise on screen.
package chart

// Point is a position in logical surface units.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in logical surface units.
type Rect struct {
	X, Y, W, H float64
}

// Align controls horizontal text anchoring relative to the text position.
type Align int

const (
	// AlignLeft starts text at the anchor.
	AlignLeft Align = iota
	// AlignCenter centers text on the anchor.
	AlignCenter
	// AlignRight ends text at the anchor.
	AlignRight
)

// Paint is a solid fill (To empty) or a vertical gradient from From at the
// top edge to To at the bottom edge.
type Paint struct {
	From string
	To   string
}

// Solid returns a single-color paint.
func Solid(color string) Paint {
	return Paint{From: color}
}

// Gradient returns a top-to-bottom gradient paint.
func Gradient(top, bottom string) Paint {
	return Paint{From: top, To: bottom}
}

// IsGradient reports whether p interpolates between two colors.
func (p Paint) IsGradient() bool {
	return p.To != "" && p.To != p.From
}

// Font describes text size (logical units) and weight. Surfaces that only
// have one face honor Bold at most.
type Font struct {
	Size float64
	Bold bool
}

// Surface is the drawing target a chart is rendered onto. Colors are hex
// strings ("#3b82f6"). Implementations clip silently; no operation fails.
type Surface interface {
	// Clear erases the surface and sets its logical size.
	Clear(width, height float64)
	// StrokeLine draws a straight segment.
	StrokeLine(from, to Point, color string, width float64)
	// StrokePolyline draws connected segments through pts.
	StrokePolyline(pts []Point, color string, width float64)
	// FillCircle fills a disc.
	FillCircle(center Point, radius float64, color string)
	// FillRect fills a rectangle with a solid or gradient paint.
	FillRect(r Rect, paint Paint)
	// FillWedge fills the circular sector starting at angle start and
	// spanning sweep radians.
	FillWedge(center Point, radius, start, sweep float64, color string)
	// FillText draws a single line of text whose baseline passes through at.
	FillText(text string, at Point, color string, font Font, align Align)
}
