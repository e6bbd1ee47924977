package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles the terminal view draws with. Build them
// from an adapted theme so the colors match the terminal's depth.
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Text     lipgloss.Style
	Dim      lipgloss.Style
	Accent   lipgloss.Style
	Positive lipgloss.Style
	Negative lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Border and BorderFocus are raw color values for components.RenderBox.
	Border      string
	BorderFocus string
}

// NewStyles derives the view styles from t.
func NewStyles(t Theme) Styles {
	fg := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}
	return Styles{
		Header:   fg(t.Foreground).Bold(true),
		Title:    fg(t.Foreground).Bold(true),
		Text:     fg(t.Foreground),
		Dim:      fg(t.TextSecondary),
		Accent:   fg(t.Accent),
		Positive: fg(t.Positive),
		Negative: fg(t.Negative),
		HelpKey:  fg(t.HelpKey),
		HelpDesc: fg(t.HelpDesc),

		Border:      t.Border,
		BorderFocus: t.BorderFocus,
	}
}

// BorderFor returns the tile border color.
func (s Styles) BorderFor(focused bool) string {
	if focused {
		return s.BorderFocus
	}
	return s.Border
}

// Change colors a metric change line by its sign.
func (s Styles) Change(text string, positive bool) string {
	if positive {
		return s.Positive.Render(text)
	}
	return s.Negative.Render(text)
}
