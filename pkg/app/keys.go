package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/quantum-flux/pkg/widgets"
)

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Expand  key.Binding
	Back    key.Binding
	Add     key.Binding
	Line    key.Binding
	Bar     key.Binding
	Pie     key.Binding
	Metric  key.Binding
	Refresh key.Binding
	Remove  key.Binding
	Theme   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:    key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab", "previous")),
		Expand:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Add:     key.NewBinding(key.WithKeys("a", "+"), key.WithHelp("a", "add widget")),
		Line:    key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "add line")),
		Bar:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "add bar")),
		Pie:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "add pie")),
		Metric:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "add metric")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Remove:  key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Refresh, k.Remove, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Expand, k.Back},
		{k.Add, k.Line, k.Bar, k.Pie, k.Metric},
		{k.Refresh, k.Remove, k.Theme},
		{k.Help, k.Quit},
	}
}

// kindFor maps the direct add keys onto widget kinds.
func (k keyMap) kindFor(msg tea.KeyMsg) (widgets.Kind, bool) {
	switch {
	case key.Matches(msg, k.Line):
		return widgets.KindTimeSeries, true
	case key.Matches(msg, k.Bar):
		return widgets.KindBarSet, true
	case key.Matches(msg, k.Pie):
		return widgets.KindPieSet, true
	case key.Matches(msg, k.Metric):
		return widgets.KindMetric, true
	}
	return widgets.KindUnknown, false
}
