package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// WaitForTick returns a Cmd that blocks until the scheduler queues a widget
// id and delivers it as a WidgetTickEvent. Update re-issues it after every
// tick, so exactly one wait is outstanding at a time.
func WaitForTick(ticks <-chan string) tea.Cmd {
	return func() tea.Msg {
		return WidgetTickEvent{ID: <-ticks}
	}
}

// EventCmd wraps msg in a Cmd, for callers that want to drive the model
// with the events in this package.
func EventCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
