package dashboard

import (
	"gitlab.com/tinyland/lab/quantum-flux/pkg/chart"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/theme"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/widgets"
)

// Counters are the aggregate header figures.
type Counters struct {
	Widgets    int `yaml:"widgets" json:"widgets"`
	DataPoints int `yaml:"data_points" json:"data_points"`
}

// View is the display side of the dashboard. The core calls it on the
// event loop goroutine only.
type View interface {
	// WidgetAdded asks the view to build a container for w. Chart widgets
	// need a surface available from Surface before the call returns.
	WidgetAdded(w *widgets.Widget)
	// WidgetRemoved drops the container for id.
	WidgetRemoved(id string)
	// Surface returns the drawing surface of a chart widget, or false if
	// the view has none (yet, or any more).
	Surface(id string) (chart.Surface, bool)
	// MetricUpdated replaces the two live text fields of a metric tile.
	MetricUpdated(id string, text widgets.MetricText)
	// CountersUpdated refreshes the header counters.
	CountersUpdated(c Counters)
	// ThemeChanged switches the view's colors and theme icon.
	ThemeChanged(t theme.Theme)
}

// nopView discards every update.
type nopView struct{}

func (nopView) WidgetAdded(*widgets.Widget)              {}
func (nopView) WidgetRemoved(string)                     {}
func (nopView) Surface(string) (chart.Surface, bool)     { return nil, false }
func (nopView) MetricUpdated(string, widgets.MetricText) {}
func (nopView) CountersUpdated(Counters)                 {}
func (nopView) ThemeChanged(theme.Theme)                 {}
