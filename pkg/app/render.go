package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"gitlab.com/tinyland/lab/quantum-flux/pkg/components"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/layout"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/widgets"
)

const headerHeight = 2

// View implements tea.Model.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	header, body, _ := m.regions()

	var content string
	switch {
	case m.pickerOpen:
		content = m.renderPicker(body)
	case m.expandedWidget != "":
		content = m.renderTile(m.expandedWidget, body.Width, body.Height)
	default:
		content = m.renderGrid(body)
	}

	out := strings.Join([]string{
		m.renderHeader(header.Width),
		fitHeight(content, body.Height),
		m.help.View(m.keys),
	}, "\n")
	return m.zones.Scan(out)
}

// regions splits the terminal into header, tile body and key help footer.
func (m AppModel) regions() (header, body, footer layout.Rect) {
	footerHeight := lipgloss.Height(m.help.View(m.keys))
	rs := layout.Split(layout.Rect{Width: m.width, Height: m.height}, layout.Vertical, 0,
		layout.Length{Value: headerHeight},
		layout.Fill{Weight: 1},
		layout.Length{Value: footerHeight},
	)
	return rs[0], rs[1], rs[2]
}

// cells places one grid cell per tile inside body.
func (m AppModel) cells(body layout.Rect) []layout.Rect {
	return layout.Grid(body, len(m.board.order), m.cfg.MinTileWidth, m.cfg.TileHeight, tileGap)
}

func (m AppModel) renderHeader(width int) string {
	s := m.board.styles
	c := m.board.counters

	left := s.Header.Render("⚡ Quantum Flux")
	right := m.mark("add", s.Accent.Render("[+ Add Widget]")) + "  " +
		m.mark("theme", s.Text.Render(m.board.theme.Icon()+" "+m.board.theme.Name))

	gap := max(width-components.VisibleLen(left)-components.VisibleLen(right), 1)
	title := left + strings.Repeat(" ", gap) + right

	stats := s.Dim.Render("Widgets ") + s.Text.Render(strconv.Itoa(c.Widgets)) +
		s.Dim.Render("  ·  Data Points ") + s.Text.Render(humanize.Comma(int64(c.DataPoints)))

	return components.Truncate(title, width) + "\n" + components.Truncate(stats, width)
}

// renderGrid lays the tiles out row by row and scrolls so the focused
// tile's row is visible.
func (m AppModel) renderGrid(body layout.Rect) string {
	order := m.board.order
	if len(order) == 0 {
		return lipgloss.Place(body.Width, body.Height, lipgloss.Center, lipgloss.Center,
			m.board.styles.Dim.Render("No widgets. Press a to add one."))
	}

	cells := m.cells(body)
	spacer := strings.Repeat(" ", tileGap)

	var rows, line []string
	rowY := cells[0].Y
	focusRow := 0
	for i, id := range order {
		c := cells[i]
		if c.Y != rowY {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))
			line, rowY = nil, c.Y
		}
		if id == m.focusedWidget {
			focusRow = len(rows)
		}
		if len(line) > 0 {
			line = append(line, spacer)
		}
		line = append(line, m.renderTile(id, c.Width, c.Height))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))

	visible := max((body.Height+tileGap)/(m.cfg.TileHeight+tileGap), 1)
	first := max(focusRow-visible+1, 0)
	return strings.Join(rows[first:], strings.Repeat("\n", tileGap+1))
}

func (m AppModel) renderTile(id string, width, height int) string {
	t, ok := m.board.tiles[id]
	if !ok {
		return ""
	}
	s := m.board.styles

	focused := id == m.focusedWidget
	border := components.BorderRounded
	if focused {
		border = components.BorderHeavy
	}
	style := components.BoxStyle{
		Border:     border,
		Title:      m.mark("title-"+id, s.Title.Render(t.Title())),
		TitleAlign: components.AlignLeft,
		FG:         s.BorderFor(focused),
		Actions: m.mark("refresh-"+id, s.Accent.Render("↻")) + " " +
			m.mark("remove-"+id, s.Negative.Render("✕")),
	}
	return components.RenderBox(t.View(width-2, height-2, s), width, height, style)
}

func (m AppModel) renderPicker(body layout.Rect) string {
	s := m.board.styles

	lines := []string{s.Title.Render("Add Widget"), ""}
	for i, kind := range widgets.Kinds {
		entry := fmt.Sprintf("%d  %s", i+1, kind.Title())
		lines = append(lines, m.mark("pick-"+kind.String(), s.Text.Render(entry)))
	}
	lines = append(lines, "", m.mark("pick-close", s.Dim.Render("esc  close")))

	box := components.RenderBox(strings.Join(lines, "\n"),
		min(body.Width, 40), min(body.Height, len(lines)+2),
		components.BoxStyle{
			Border:  components.BorderRounded,
			Padding: components.NewPaddingHV(1, 0),
			FG:      s.BorderFocus,
		})
	return lipgloss.Place(body.Width, body.Height, lipgloss.Center, lipgloss.Center, box)
}

// pickerKind maps the picker's number keys onto widget kinds.
func pickerKind(keyName string) (widgets.Kind, bool) {
	n, err := strconv.Atoi(keyName)
	if err != nil || n < 1 || n > len(widgets.Kinds) {
		return widgets.KindUnknown, false
	}
	return widgets.Kinds[n-1], true
}

func (m AppModel) mark(id, s string) string {
	return m.zones.Mark(m.zonePrefix+id, s)
}

// fitHeight clips or pads s to exactly height lines.
func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
