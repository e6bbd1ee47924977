package app

import (
	"slices"

	"gitlab.com/tinyland/lab/quantum-flux/pkg/chart"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/dashboard"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/theme"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/widgets"
)

// board is the dashboard.View half of the model. AppModel is copied on
// every Update, so the state the dashboard writes into lives here behind
// a pointer that every copy shares.
type board struct {
	order    []string
	tiles    map[string]*tile
	counters dashboard.Counters

	theme  theme.Theme
	depth  int
	styles theme.Styles

	// Canvas size for tiles created before the next relayout.
	cols, rows int
}

func newBoard(t theme.Theme, depth int) *board {
	b := &board{
		tiles: make(map[string]*tile),
		depth: depth,
		cols:  defaultMinTileWidth - 2,
		rows:  defaultTileHeight - 2,
	}
	b.ThemeChanged(t)
	return b
}

// WidgetAdded implements dashboard.View.
func (b *board) WidgetAdded(w *widgets.Widget) {
	b.tiles[w.ID] = newTile(w, b.cols, b.rows)
	b.order = append(b.order, w.ID)
}

// WidgetRemoved implements dashboard.View.
func (b *board) WidgetRemoved(id string) {
	delete(b.tiles, id)
	b.order = slices.DeleteFunc(b.order, func(o string) bool { return o == id })
}

// Surface implements dashboard.View.
func (b *board) Surface(id string) (chart.Surface, bool) {
	t, ok := b.tiles[id]
	if !ok || t.canvas == nil {
		return nil, false
	}
	return t.canvas, true
}

// MetricUpdated implements dashboard.View.
func (b *board) MetricUpdated(id string, text widgets.MetricText) {
	if t, ok := b.tiles[id]; ok {
		t.metric = text
	}
}

// CountersUpdated implements dashboard.View.
func (b *board) CountersUpdated(c dashboard.Counters) {
	b.counters = c
}

// ThemeChanged implements dashboard.View. Terminal styles use the theme
// adapted to the color depth; chart colors come from the dashboard.
func (b *board) ThemeChanged(t theme.Theme) {
	b.theme = t
	b.styles = theme.NewStyles(theme.Adapt(t, b.depth))
}

func (b *board) index(id string) int {
	return slices.Index(b.order, id)
}
