// Package app is the terminal view of the dashboard: a bubbletea model
// that binds the headless dashboard core to a grid of bordered tiles,
// drives refresh ticks through the update loop and maps keys and mouse
// clicks onto dashboard operations.
package app

import "gitlab.com/tinyland/lab/quantum-flux/pkg/widgets"

// WidgetTickEvent carries one refresh timer firing from the scheduler
// into the bubbletea update loop.
type WidgetTickEvent struct {
	ID string
}

// WidgetFocusEvent requests that focus move to a specific widget.
type WidgetFocusEvent struct {
	WidgetID string
}

// WidgetExpandEvent toggles a widget between its grid cell and the whole
// body area.
type WidgetExpandEvent struct {
	WidgetID string
}

// AddWidgetEvent adds a widget of Kind and focuses it.
type AddWidgetEvent struct {
	Kind widgets.Kind
}

// RemoveWidgetEvent removes a widget and stops its refresh timer.
type RemoveWidgetEvent struct {
	WidgetID string
}

// RefreshWidgetEvent regenerates a widget's data.
type RefreshWidgetEvent struct {
	WidgetID string
}

// ThemeChangeEvent flips between the dark and light themes.
type ThemeChangeEvent struct{}
