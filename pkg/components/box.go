package components

import (
	"strings"
)

// BorderStyle selects which set of box-drawing characters to use.
type BorderStyle int

const (
	// BorderNone renders no border at all.
	BorderNone BorderStyle = iota
	// BorderSingle uses single-line box-drawing characters.
	BorderSingle
	// BorderRounded uses single-line characters with rounded corners.
	BorderRounded
	// BorderHeavy uses heavy (thick) box-drawing characters.
	BorderHeavy
)

// borderChars holds the corners and the two edge characters of a border.
type borderChars struct {
	TopLeft, TopRight, BottomLeft, BottomRight string
	Horizontal, Vertical                       string
}

var borderSets = map[BorderStyle]borderChars{
	BorderSingle:  {"┌", "┐", "└", "┘", "─", "│"},
	BorderRounded: {"╭", "╮", "╰", "╯", "─", "│"},
	BorderHeavy:   {"┏", "┓", "┗", "┛", "━", "┃"},
}

// BoxStyle controls the visual appearance of a rendered box.
type BoxStyle struct {
	Border     BorderStyle
	Title      string
	TitleAlign Align
	Padding    Padding
	FG         string // border foreground: raw escape, hex like "#ff5500" or a 256-color index
	BG         string // border background, same forms as FG

	// Actions is drawn at the right end of the top border, after the title.
	Actions string
}

// RenderBox renders content inside a box of exactly width x height cells,
// borders and padding included. Content lines are truncated or padded to
// the interior width; missing lines are blank. Boxes smaller than 2x2
// render as the empty string.
func RenderBox(content string, width, height int, style BoxStyle) string {
	chars, bordered := borderSets[style.Border]
	edge := 0
	if bordered {
		edge = 1
	}
	if width < 2*edge || height < 2*edge || width <= 0 || height <= 0 {
		return ""
	}

	pre, suf := styleColors(style)
	paint := func(s string) string { return pre + s + suf }

	innerW := max(width-2*edge-style.Padding.Left-style.Padding.Right, 0)
	innerH := max(height-2*edge-style.Padding.Top-style.Padding.Bottom, 0)

	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}

	rows := make([]string, 0, height)
	row := func(body string) {
		line := strings.Repeat(" ", style.Padding.Left) + body + strings.Repeat(" ", style.Padding.Right)
		if bordered {
			line = paint(chars.Vertical) + line + paint(chars.Vertical)
		}
		rows = append(rows, line)
	}

	if bordered {
		bar := width - 2
		top := paint(strings.Repeat(chars.Horizontal, bar))
		if style.Title != "" || style.Actions != "" {
			top = renderTopBar(style, bar, chars.Horizontal, paint)
		}
		rows = append(rows, paint(chars.TopLeft)+top+paint(chars.TopRight))
	}
	blank := strings.Repeat(" ", innerW)
	for range style.Padding.Top {
		row(blank)
	}
	for i := range innerH {
		if i < len(lines) {
			row(Fit(lines[i], innerW))
		} else {
			row(blank)
		}
	}
	for range style.Padding.Bottom {
		row(blank)
	}
	if bordered {
		rows = append(rows, paint(chars.BottomLeft+strings.Repeat(chars.Horizontal, width-2)+chars.BottomRight))
	}
	return strings.Join(rows, "\n")
}

// renderTopBar renders the top border between the corners: the title
// followed by the actions segment when there is room for it.
func renderTopBar(style BoxStyle, bar int, hChar string, paint func(string) string) string {
	actionsWidth := VisibleLen(style.Actions) + 2
	if style.Actions == "" || actionsWidth+1 > bar {
		return renderTitleBar(style.Title, style.TitleAlign, bar, hChar, paint)
	}
	return renderTitleBar(style.Title, style.TitleAlign, bar-actionsWidth-1, hChar, paint) +
		" " + style.Actions + " " + paint(hChar)
}

// renderTitleBar embeds title, surrounded by single spaces, in a run of
// hChar that is width cells long. Titles that do not fit are cut with an
// ellipsis; with no room at all the bar is plain.
func renderTitleBar(title string, align Align, width int, hChar string, paint func(string) string) string {
	room := width - 4
	if title == "" || room <= 0 {
		return paint(strings.Repeat(hChar, max(width, 0)))
	}
	if VisibleLen(title) > room {
		title = TruncateWithTail(title, room, "…")
	}

	rest := width - VisibleLen(title) - 2
	var left int
	switch align {
	case AlignRight:
		left = rest - 1
	case AlignCenter:
		left = rest / 2
	default:
		left = 1
	}
	return paint(strings.Repeat(hChar, left)) + " " + title + " " + paint(strings.Repeat(hChar, rest-left))
}

// styleColors returns the escape prefix and reset suffix for border
// characters. Both are empty when no color is set.
func styleColors(style BoxStyle) (pre, suf string) {
	if style.FG == "" && style.BG == "" {
		return "", ""
	}
	if style.FG != "" {
		pre += Color(style.FG)
	}
	if style.BG != "" {
		pre += BgColor(style.BG)
	}
	return pre, Reset()
}
