package chart

import (
	"fmt"
	"math"

	"gitlab.com/tinyland/lab/quantum-flux/pkg/widgets"
)

// Layout constants shared by the chart types.
const (
	// Padding is the inset of the plot box from every surface edge.
	Padding = 40.0
	// GridBands is the number of horizontal bands between gridlines; the
	// line chart draws GridBands+1 lines bounding them.
	GridBands = 5
	// BarGutter is subtracted from each bar's slot width.
	BarGutter = 10.0
	// LineWidth is the stroke width of the line chart's polyline.
	LineWidth = 3.0
	// DotRadius is the radius of the marker at each line chart point.
	DotRadius = 4.0
	// PieLabelRatio places slice labels at this fraction of the radius.
	PieLabelRatio = 0.7
	// PieInset is subtracted from half the smaller surface side.
	PieInset = 40.0
	// LabelOffset places bar labels below the plot box.
	LabelOffset = 20.0
)

// LineGeometry is the computed layout of a line chart.
type LineGeometry struct {
	Left, Right float64   // horizontal extent of gridlines
	Grid        []float64 // y of each gridline, top to bottom
	Points      []Point   // one per sample, in window order
}

// LineLayout normalizes values over their own min/max into the padded plot
// box. A flat series (max == min) uses a range of 1 so every point sits on
// the bottom edge. A single value is centered horizontally.
func LineLayout(values []float64, width, height float64) LineGeometry {
	chartW := width - Padding*2
	chartH := height - Padding*2

	g := LineGeometry{
		Left:  Padding,
		Right: width - Padding,
		Grid:  make([]float64, GridBands+1),
	}
	for i := range g.Grid {
		g.Grid[i] = Padding + chartH/GridBands*float64(i)
	}

	if len(values) == 0 {
		return g
	}

	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}
	span := maxV - minV
	if span == 0 {
		span = 1
	}

	g.Points = make([]Point, len(values))
	for i, v := range values {
		var x float64
		if len(values) == 1 {
			x = Padding + chartW/2
		} else {
			x = Padding + chartW/float64(len(values)-1)*float64(i)
		}
		y := Padding + chartH - (v-minV)/span*chartH
		g.Points[i] = Point{X: x, Y: y}
	}
	return g
}

// Bar is the computed layout of one bar.
type Bar struct {
	Rect    Rect
	Label   string
	LabelAt Point // baseline anchor, centered under the bar
}

// BarLayout sizes each bar proportionally to value/max. When the maximum is
// not positive every bar has zero height.
func BarLayout(points []widgets.Point, width, height float64) []Bar {
	if len(points) == 0 {
		return nil
	}
	chartW := width - Padding*2
	chartH := height - Padding*2

	maxV := 0.0
	for _, p := range points {
		maxV = math.Max(maxV, p.Value)
	}

	slot := chartW / float64(len(points))
	barW := math.Max(slot-BarGutter, 0)

	bars := make([]Bar, len(points))
	for i, p := range points {
		barH := 0.0
		if maxV > 0 {
			barH = math.Max(p.Value, 0) / maxV * chartH
		}
		x := Padding + slot*float64(i) + BarGutter/2
		y := Padding + chartH - barH
		bars[i] = Bar{
			Rect:    Rect{X: x, Y: y, W: barW, H: barH},
			Label:   p.Label,
			LabelAt: Point{X: x + barW/2, Y: height - Padding + LabelOffset},
		}
	}
	return bars
}

// Slice is the computed layout of one pie slice.
type Slice struct {
	Start   float64 // radians
	Sweep   float64 // radians, clockwise on screen
	Percent float64 // share of the total, 0-100
	Color   string
	LabelAt Point
}

// Label returns the percentage text drawn on the slice.
func (s Slice) Label() string {
	return fmt.Sprintf("%.1f%%", s.Percent)
}

// PieGeometry is the computed layout of a pie chart.
type PieGeometry struct {
	Center Point
	Radius float64
	Slices []Slice
}

// PieLayout splits a full turn proportionally to values, starting at the
// top (-π/2) and proceeding clockwise. A non-positive total gives every
// slice an equal share so the chart stays readable.
func PieLayout(values []float64, width, height float64) PieGeometry {
	g := PieGeometry{
		Center: Point{X: width / 2, Y: height / 2},
		Radius: math.Max(math.Min(width, height)/2-PieInset, 0),
	}
	if len(values) == 0 {
		return g
	}

	total := 0.0
	for _, v := range values {
		total += math.Max(v, 0)
	}

	angle := -math.Pi / 2
	g.Slices = make([]Slice, len(values))
	for i, v := range values {
		share := 1 / float64(len(values))
		if total > 0 {
			share = math.Max(v, 0) / total
		}
		sweep := share * 2 * math.Pi
		mid := angle + sweep/2
		g.Slices[i] = Slice{
			Start:   angle,
			Sweep:   sweep,
			Percent: share * 100,
			Color:   PieColor(i),
			LabelAt: Point{
				X: g.Center.X + math.Cos(mid)*g.Radius*PieLabelRatio,
				Y: g.Center.Y + math.Sin(mid)*g.Radius*PieLabelRatio,
			},
		}
		angle += sweep
	}
	return g
}
