// Package dashboard is the application core: it owns the widget registry,
// the refresh timers, the data generator and the current theme, and it
// pushes every visible change to a View. All methods must be called from
// one goroutine, the event loop; timer goroutines only feed the
// scheduler's tick channel.
package dashboard

import (
	"context"
	"log/slog"

	"gitlab.com/tinyland/lab/quantum-flux/pkg/chart"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/scheduler"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/series"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/theme"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/widgets"
)

// Logical chart surface size.
const (
	CanvasWidth  = 400.0
	CanvasHeight = 250.0
)

// Stats counts the work done for one widget.
type Stats struct {
	Ticks   int `yaml:"ticks" json:"ticks"`     // tick bodies applied, timer or refresh
	Renders int `yaml:"renders" json:"renders"` // chart renders that reached a surface
}

// Option configures a Dashboard.
type Option func(*Dashboard)

// WithView sets the display binding.
func WithView(v View) Option {
	return func(d *Dashboard) {
		if v != nil {
			d.view = v
		}
	}
}

// WithGenerator sets the data generator.
func WithGenerator(g *series.Generator) Option {
	return func(d *Dashboard) {
		if g != nil {
			d.gen = g
		}
	}
}

// WithTheme sets the starting theme by name.
func WithTheme(name string) Option {
	return func(d *Dashboard) { d.theme = theme.Get(name) }
}

// WithCanvas sets the logical chart size. Non-positive sizes are ignored.
func WithCanvas(width, height float64) Option {
	return func(d *Dashboard) {
		if width > 0 && height > 0 {
			d.width, d.height = width, height
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dashboard) {
		if l != nil {
			d.log = l
		}
	}
}

// Dashboard is the explicit application state.
type Dashboard struct {
	reg   *widgets.Registry
	sched *scheduler.Scheduler
	gen   *series.Generator
	view  View
	theme theme.Theme
	log   *slog.Logger

	width, height float64
	stats         map[string]*Stats
}

// New returns an empty dashboard whose timers run on sched.
func New(sched *scheduler.Scheduler, opts ...Option) *Dashboard {
	d := &Dashboard{
		reg:    widgets.NewRegistry(),
		sched:  sched,
		view:   nopView{},
		theme:  theme.Get(theme.Dark),
		log:    slog.Default(),
		width:  CanvasWidth,
		height: CanvasHeight,
		stats:  make(map[string]*Stats),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.gen == nil {
		d.gen = series.NewGenerator(nil)
	}
	return d
}

// SetView replaces the display binding. A nil view discards updates.
func (d *Dashboard) SetView(v View) {
	if v == nil {
		v = nopView{}
	}
	d.view = v
}

// AddWidget creates a widget of kind with fresh data, shows it, draws it
// once and starts its refresh timer. Unknown kinds are added with the
// default title and an empty payload.
func (d *Dashboard) AddWidget(kind widgets.Kind) *widgets.Widget {
	w := d.reg.Add(kind, d.gen.Generate(kind))
	d.stats[w.ID] = &Stats{}

	d.view.WidgetAdded(w)
	d.present(w)

	if err := d.sched.Start(w.ID); err != nil {
		d.log.Error("start refresh timer", "widget", w.ID, "error", err)
	}
	d.log.Info("widget added", "widget", w.ID, "kind", w.Kind, "title", w.Title)
	d.publishCounters()
	return w
}

// RemoveWidget stops the widget's timer and drops it. Unknown ids are
// ignored.
func (d *Dashboard) RemoveWidget(id string) {
	// Stop first so a tick already queued is rejected by Accept.
	d.sched.Stop(id)
	if !d.reg.Remove(id) {
		return
	}
	d.view.WidgetRemoved(id)
	d.log.Info("widget removed", "widget", id)
	d.publishCounters()
}

// RefreshWidget regenerates the widget's data as if newly added and
// applies one tick body immediately. The timer cadence is unaffected.
func (d *Dashboard) RefreshWidget(id string) {
	w, ok := d.reg.Find(id)
	if !ok {
		return
	}
	w.Data = d.gen.Generate(w.Kind)
	d.tick(w)
	d.log.Debug("widget refreshed", "widget", id)
}

// ToggleTheme flips between dark and light and redraws every chart
// widget. Data is untouched and metric tiles are not redrawn.
func (d *Dashboard) ToggleTheme() theme.Theme {
	d.theme = theme.Get(theme.Toggle(d.theme.Name))
	d.view.ThemeChanged(d.theme)
	d.RedrawCharts()
	d.log.Info("theme toggled", "theme", d.theme.Name)
	return d.theme
}

// HandleTick runs the tick body for id if its timer is still active. It
// reports whether the tick was applied.
func (d *Dashboard) HandleTick(id string) bool {
	if !d.sched.Accept(id) {
		d.log.Debug("stale tick ignored", "widget", id)
		return false
	}
	w, ok := d.reg.Find(id)
	if !ok {
		return false
	}
	d.tick(w)
	return true
}

// Drain applies every tick currently queued and returns how many were
// applied.
func (d *Dashboard) Drain() int {
	n := 0
	for {
		select {
		case id := <-d.sched.Ticks():
			if d.HandleTick(id) {
				n++
			}
		default:
			return n
		}
	}
}

// Queue returns the scheduler's tick channel for views that run their own
// event loop. Every id received must be passed to HandleTick.
func (d *Dashboard) Queue() <-chan string {
	return d.sched.Ticks()
}

// Run is the headless event loop: it applies ticks until ctx is done.
func (d *Dashboard) Run(ctx context.Context) error {
	ticks := d.sched.Ticks()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case id := <-ticks:
			d.HandleTick(id)
		}
	}
}

// Redraw re-renders one chart widget without changing its data. It is
// used by views after a resize.
func (d *Dashboard) Redraw(id string) {
	if w, ok := d.reg.Find(id); ok && w.Kind.IsChart() {
		d.render(w)
	}
}

// RedrawCharts re-renders every chart widget in order.
func (d *Dashboard) RedrawCharts() {
	for _, w := range d.reg.List() {
		if w.Kind.IsChart() {
			d.render(w)
		}
	}
}

// Close stops every timer. The dashboard must not be used afterwards.
func (d *Dashboard) Close() {
	d.sched.Close()
}

// Theme returns the current theme.
func (d *Dashboard) Theme() theme.Theme {
	return d.theme
}

// Canvas returns the logical chart size.
func (d *Dashboard) Canvas() (width, height float64) {
	return d.width, d.height
}

// Widgets returns the live widgets in insertion order.
func (d *Dashboard) Widgets() []*widgets.Widget {
	return d.reg.List()
}

// Find returns the live widget with id.
func (d *Dashboard) Find(id string) (*widgets.Widget, bool) {
	return d.reg.Find(id)
}

// Count returns the number of live widgets.
func (d *Dashboard) Count() int {
	return d.reg.Count()
}

// TotalDataPoints sums the payload sizes of all live widgets.
func (d *Dashboard) TotalDataPoints() int {
	return d.reg.TotalDataPoints()
}

// Counters returns the current header figures.
func (d *Dashboard) Counters() Counters {
	return Counters{Widgets: d.reg.Count(), DataPoints: d.reg.TotalDataPoints()}
}

// Stats returns the counters for id. Counters of removed widgets stay
// readable and frozen.
func (d *Dashboard) Stats(id string) Stats {
	if s, ok := d.stats[id]; ok {
		return *s
	}
	return Stats{}
}

// Ticks returns how many tick bodies ran for id.
func (d *Dashboard) Ticks(id string) int {
	return d.Stats(id).Ticks
}

// Renders returns how many chart renders reached a surface for id.
func (d *Dashboard) Renders(id string) int {
	return d.Stats(id).Renders
}

// RenderTo draws a chart widget onto s at the dashboard's canvas size with
// the current theme. It reports false for unknown or non-chart widgets.
// Used for off-screen output such as snapshots; it does not count as a
// render.
func (d *Dashboard) RenderTo(id string, s chart.Surface) bool {
	w, ok := d.reg.Find(id)
	if !ok || !w.Kind.IsChart() {
		return false
	}
	chart.Render(s, w.Kind, w.Data, d.width, d.height, d.theme.Palette())
	return true
}

// tick is the refresh body: mutate, present, publish counters.
func (d *Dashboard) tick(w *widgets.Widget) {
	widgets.Advance(w, d.gen)
	if s, ok := d.stats[w.ID]; ok {
		s.Ticks++
	}
	d.present(w)
	c := d.publishCounters()
	d.log.Debug("tick", "widget", w.ID, "widgets", c.Widgets, "data_points", c.DataPoints)
}

// present shows w's current data: charts are redrawn, metric tiles get
// their text fields replaced.
func (d *Dashboard) present(w *widgets.Widget) {
	switch {
	case w.Kind.IsChart():
		d.render(w)
	case w.Kind == widgets.KindMetric:
		if m, ok := w.Data.(*widgets.Metric); ok {
			d.view.MetricUpdated(w.ID, widgets.FormatMetric(m))
		}
	}
}

func (d *Dashboard) render(w *widgets.Widget) {
	s, ok := d.view.Surface(w.ID)
	if !ok {
		return
	}
	chart.Render(s, w.Kind, w.Data, d.width, d.height, d.theme.Palette())
	if st, ok := d.stats[w.ID]; ok {
		st.Renders++
	}
}

func (d *Dashboard) publishCounters() Counters {
	c := d.Counters()
	d.view.CountersUpdated(c)
	return c
}
