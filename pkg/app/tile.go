package app

import (
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/quantum-flux/pkg/chart"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/theme"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/widgets"
)

// tile is the terminal container of one dashboard widget. Chart tiles own
// a Braille canvas the dashboard draws into; metric tiles keep the two
// text fields it last published.
type tile struct {
	id     string
	kind   widgets.Kind
	title  string
	canvas *chart.Braille
	metric widgets.MetricText
}

func newTile(w *widgets.Widget, cols, rows int) *tile {
	t := &tile{id: w.ID, kind: w.Kind, title: w.Title}
	if w.Kind.IsChart() {
		t.canvas = chart.NewBraille(cols, rows)
	}
	return t
}

// ID returns the widget id.
func (t *tile) ID() string {
	return t.id
}

// Title returns the display title.
func (t *tile) Title() string {
	return t.title
}

// resize fits the canvas to the tile interior. It reports whether the size
// changed, in which case the canvas is blank until redrawn.
func (t *tile) resize(cols, rows int) bool {
	if t.canvas == nil {
		return false
	}
	c, r := t.canvas.Size()
	if c == max(cols, 1) && r == max(rows, 1) {
		return false
	}
	t.canvas.Resize(cols, rows)
	return true
}

// View renders the tile interior at width x height cells.
func (t *tile) View(width, height int, s theme.Styles) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	switch {
	case t.canvas != nil:
		return t.canvas.String()
	case t.kind == widgets.KindMetric:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center,
				s.Accent.Bold(true).Render(t.metric.Value),
				s.Dim.Render("Total Value"),
				s.Change(t.metric.Change, t.metric.Positive),
			))
	default:
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			s.Dim.Render("Unknown widget type"))
	}
}
