package chart

import "gitlab.com/tinyland/lab/quantum-flux/pkg/widgets"

var (
	barLabelFont = Font{Size: 12}
	pieLabelFont = Font{Size: 14, Bold: true}
)

// Render clears s and draws data as the chart for kind at the given logical
// size. Metric and unknown kinds are not charts: the surface is only
// cleared. A payload that does not match kind is ignored.
func Render(s Surface, kind widgets.Kind, data widgets.Data, width, height float64, pal Palette) {
	s.Clear(width, height)

	switch kind {
	case widgets.KindTimeSeries:
		if ts, ok := data.(*widgets.TimeSeries); ok {
			drawLine(s, LineLayout(ts.Values(), width, height), pal)
		}
	case widgets.KindBarSet:
		if c, ok := data.(*widgets.Categories); ok {
			drawBars(s, BarLayout(c.Points, width, height), pal)
		}
	case widgets.KindPieSet:
		if c, ok := data.(*widgets.Categories); ok {
			drawPie(s, PieLayout(c.Values(), width, height))
		}
	case widgets.KindMetric, widgets.KindUnknown:
	}
}

func drawLine(s Surface, g LineGeometry, pal Palette) {
	for _, y := range g.Grid {
		s.StrokeLine(Point{X: g.Left, Y: y}, Point{X: g.Right, Y: y}, pal.Grid, 1)
	}
	if len(g.Points) == 0 {
		return
	}
	s.StrokePolyline(g.Points, LineColor, LineWidth)
	for _, p := range g.Points {
		s.FillCircle(p, DotRadius, LineColor)
	}
}

func drawBars(s Surface, bars []Bar, pal Palette) {
	paint := Gradient(BarTopColor, BarBottomColor)
	for _, b := range bars {
		s.FillRect(b.Rect, paint)
		s.FillText(b.Label, b.LabelAt, pal.Text, barLabelFont, AlignCenter)
	}
}

func drawPie(s Surface, g PieGeometry) {
	for _, sl := range g.Slices {
		s.FillWedge(g.Center, g.Radius, sl.Start, sl.Sweep, sl.Color)
		s.FillText(sl.Label(), sl.LabelAt, PieLabelColor, pieLabelFont, AlignCenter)
	}
}
