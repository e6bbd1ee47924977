package app

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/quantum-flux/pkg/dashboard"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/widgets"
)

const (
	defaultMinTileWidth = 44
	defaultTileHeight   = 14
	tileGap             = 1
)

// Config holds the terminal view settings.
type Config struct {
	// ColorDepth is the terminal color depth in bits (24, 8, 4 or 1).
	ColorDepth int
	// MinTileWidth is the narrowest grid column, borders included.
	MinTileWidth int
	// TileHeight is the height of a grid row, borders included.
	TileHeight int
}

// DefaultConfig returns a Config for a true-color terminal.
func DefaultConfig() Config {
	return Config{
		ColorDepth:   24,
		MinTileWidth: defaultMinTileWidth,
		TileHeight:   defaultTileHeight,
	}
}

// AppModel is the root bubbletea model. It implements tea.Model; the
// dashboard.View side lives in a shared board.
type AppModel struct {
	cfg   Config
	dash  *dashboard.Dashboard
	board *board

	zones      *zone.Manager
	zonePrefix string

	keys keyMap
	help help.Model

	focusedWidget  string
	expandedWidget string
	pickerOpen     bool

	width, height int
	quitting      bool
}

// NewAppModel binds a terminal view to d and adds one widget per entry of
// initial, focusing the first.
func NewAppModel(cfg Config, d *dashboard.Dashboard, initial ...widgets.Kind) AppModel {
	if cfg.MinTileWidth <= 2 {
		cfg.MinTileWidth = defaultMinTileWidth
	}
	if cfg.TileHeight <= 2 {
		cfg.TileHeight = defaultTileHeight
	}

	zones := zone.New()
	m := AppModel{
		cfg:        cfg,
		dash:       d,
		board:      newBoard(d.Theme(), cfg.ColorDepth),
		zones:      zones,
		zonePrefix: zones.NewPrefix(),
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
	m.applyHelpStyles()
	d.SetView(m.board)

	for _, kind := range initial {
		d.AddWidget(kind)
	}
	if len(m.board.order) > 0 {
		m.focusedWidget = m.board.order[0]
	}
	return m
}

// Init implements tea.Model.
func (m AppModel) Init() tea.Cmd {
	return WaitForTick(m.dash.Queue())
}

// Update implements tea.Model.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case WidgetTickEvent:
		m.dash.HandleTick(msg.ID)
		return m, WaitForTick(m.dash.Queue())

	case WidgetFocusEvent:
		m.FocusWidget(msg.WidgetID)
		return m, nil

	case WidgetExpandEvent:
		m.FocusWidget(msg.WidgetID)
		if m.focusedWidget == msg.WidgetID {
			m.ToggleExpand()
			m.relayout()
		}
		return m, nil

	case AddWidgetEvent:
		m.addWidget(msg.Kind)
		return m, nil

	case RemoveWidgetEvent:
		m.removeWidget(msg.WidgetID)
		return m, nil

	case RefreshWidgetEvent:
		m.dash.RefreshWidget(msg.WidgetID)
		return m, nil

	case ThemeChangeEvent:
		m.toggleTheme()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.pickerOpen {
		switch {
		case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Add):
			m.pickerOpen = false
		default:
			if kind, ok := pickerKind(msg.String()); ok {
				m.pickerOpen = false
				m.addWidget(kind)
			}
		}
		return m, nil
	}

	if kind, ok := m.keys.kindFor(msg); ok {
		m.addWidget(kind)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
	case key.Matches(msg, m.keys.Next):
		m.CycleFocusForward()
	case key.Matches(msg, m.keys.Prev):
		m.CycleFocusBackward()
	case key.Matches(msg, m.keys.Expand):
		m.ToggleExpand()
		m.relayout()
	case key.Matches(msg, m.keys.Back):
		if m.expandedWidget != "" {
			m.expandedWidget = ""
			m.relayout()
		}
	case key.Matches(msg, m.keys.Add):
		m.pickerOpen = true
	case key.Matches(msg, m.keys.Refresh):
		if m.focusedWidget != "" {
			m.dash.RefreshWidget(m.focusedWidget)
		}
	case key.Matches(msg, m.keys.Remove):
		m.removeWidget(m.focusedWidget)
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
	}
	return m, nil
}

func (m AppModel) handleMouse(msg tea.MouseMsg) AppModel {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m
	}

	if m.pickerOpen {
		for _, kind := range widgets.Kinds {
			if m.clicked(msg, "pick-"+kind.String()) {
				m.pickerOpen = false
				m.addWidget(kind)
				return m
			}
		}
		if m.clicked(msg, "pick-close") {
			m.pickerOpen = false
		}
		return m
	}

	switch {
	case m.clicked(msg, "add"):
		m.pickerOpen = true
		return m
	case m.clicked(msg, "theme"):
		m.toggleTheme()
		return m
	}

	for _, id := range m.board.order {
		switch {
		case m.clicked(msg, "refresh-"+id):
			m.focusedWidget = id
			m.dash.RefreshWidget(id)
			return m
		case m.clicked(msg, "remove-"+id):
			m.removeWidget(id)
			return m
		case m.clicked(msg, "title-"+id):
			m.focusedWidget = id
			return m
		}
	}
	return m
}

// clicked reports whether msg falls inside the zone marked with id during
// the last View.
func (m AppModel) clicked(msg tea.MouseMsg, id string) bool {
	z := m.zones.Get(m.zonePrefix + id)
	return z != nil && z.InBounds(msg)
}

func (m *AppModel) addWidget(kind widgets.Kind) {
	w := m.dash.AddWidget(kind)
	m.focusedWidget = w.ID
	m.relayout()
}

// removeWidget drops id and moves focus to the tile that took its place.
func (m *AppModel) removeWidget(id string) {
	idx := m.board.index(id)
	if idx < 0 {
		return
	}
	m.dash.RemoveWidget(id)

	if m.expandedWidget == id {
		m.expandedWidget = ""
	}
	if m.focusedWidget == id {
		m.focusedWidget = ""
		if n := len(m.board.order); n > 0 {
			m.focusedWidget = m.board.order[min(idx, n-1)]
		}
	}
	m.relayout()
}

func (m *AppModel) toggleTheme() {
	m.dash.ToggleTheme()
	m.applyHelpStyles()
}

func (m *AppModel) applyHelpStyles() {
	s := m.board.styles
	m.help.Styles.ShortKey = s.HelpKey
	m.help.Styles.ShortDesc = s.HelpDesc
	m.help.Styles.FullKey = s.HelpKey
	m.help.Styles.FullDesc = s.HelpDesc
	m.help.Styles.ShortSeparator = s.Dim
	m.help.Styles.FullSeparator = s.Dim
}

// relayout resizes every chart canvas to its current cell and redraws the
// charts whose canvas changed size.
func (m *AppModel) relayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, body, _ := m.regions()
	cells := m.cells(body)

	if len(cells) > 0 {
		m.board.cols, m.board.rows = cells[0].Width-2, cells[0].Height-2
	}
	for i, id := range m.board.order {
		r := cells[i]
		if id == m.expandedWidget {
			r = body
		}
		if m.board.tiles[id].resize(r.Width-2, r.Height-2) {
			m.dash.Redraw(id)
		}
	}
}

// Close releases the mouse zone tracker.
func (m AppModel) Close() {
	m.zones.Close()
}

// Width returns the terminal width.
func (m AppModel) Width() int { return m.width }

// Height returns the terminal height.
func (m AppModel) Height() int { return m.height }

// FocusedWidgetID returns the focused widget id, or "" with no widgets.
func (m AppModel) FocusedWidgetID() string { return m.focusedWidget }

// ExpandedWidgetID returns the expanded widget id, or "" in grid mode.
func (m AppModel) ExpandedWidgetID() string { return m.expandedWidget }

// Quitting reports whether the user asked to quit.
func (m AppModel) Quitting() bool { return m.quitting }

// HelpVisible reports whether the full key help is shown.
func (m AppModel) HelpVisible() bool { return m.help.ShowAll }

// PickerOpen reports whether the widget picker is shown.
func (m AppModel) PickerOpen() bool { return m.pickerOpen }

// WidgetOrder returns the tile ids in display order.
func (m AppModel) WidgetOrder() []string {
	return append([]string(nil), m.board.order...)
}

// Dashboard returns the bound dashboard.
func (m AppModel) Dashboard() *dashboard.Dashboard { return m.dash }
