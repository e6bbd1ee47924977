package app

// CycleFocusForward moves focus to the next tile in display order,
// wrapping around to the first tile after the last.
func (m *AppModel) CycleFocusForward() {
	order := m.board.order
	if len(order) == 0 {
		return
	}

	idx := m.focusedIndex()
	idx = (idx + 1) % len(order)
	m.focusedWidget = order[idx]
}

// CycleFocusBackward moves focus to the previous tile in display order,
// wrapping around to the last tile before the first.
func (m *AppModel) CycleFocusBackward() {
	order := m.board.order
	if len(order) == 0 {
		return
	}

	idx := m.focusedIndex()
	idx = (idx - 1 + len(order)) % len(order)
	m.focusedWidget = order[idx]
}

// FocusWidget directly sets focus to the tile with the given ID.
// If the ID is not on the board, focus does not change.
func (m *AppModel) FocusWidget(id string) {
	if _, ok := m.board.tiles[id]; ok {
		m.focusedWidget = id
	}
}

// ToggleExpand toggles the focused tile between its grid cell and the
// whole body. If a different tile is already expanded, expansion moves to
// the focused one.
func (m *AppModel) ToggleExpand() {
	if m.focusedWidget == "" {
		return
	}

	if m.expandedWidget == m.focusedWidget {
		m.expandedWidget = ""
	} else {
		m.expandedWidget = m.focusedWidget
	}
}

// focusedIndex returns the index of the focused tile in display order.
// Returns 0 if not found.
func (m *AppModel) focusedIndex() int {
	if idx := m.board.index(m.focusedWidget); idx >= 0 {
		return idx
	}
	return 0
}
