package dashboard

import "gitlab.com/tinyland/lab/quantum-flux/pkg/widgets"

// WidgetState is the serializable form of one widget.
type WidgetState struct {
	widgets.Widget `yaml:",inline"`

	Metric *widgets.MetricText `yaml:"display,omitempty" json:"display,omitempty"`
	Stats  Stats               `yaml:"stats" json:"stats"`
}

// State is a point-in-time dump of the dashboard.
type State struct {
	Theme    string        `yaml:"theme" json:"theme"`
	Counters Counters      `yaml:"counters" json:"counters"`
	Widgets  []WidgetState `yaml:"widgets" json:"widgets"`
}

// Snapshot returns a deep copy of the dashboard's state.
func (d *Dashboard) Snapshot() State {
	st := State{
		Theme:    d.theme.Name,
		Counters: d.Counters(),
	}
	for _, w := range d.reg.List() {
		ws := WidgetState{Widget: *w, Stats: d.Stats(w.ID)}
		if w.Data != nil {
			ws.Data = w.Data.Clone()
		}
		if m, ok := w.Data.(*widgets.Metric); ok {
			text := widgets.FormatMetric(m)
			ws.Metric = &text
		}
		st.Widgets = append(st.Widgets, ws)
	}
	return st
}
