package components

import (
	"strings"
	"testing"
)

func TestNewPaddingHV(t *testing.T) {
	p := NewPaddingHV(2, 1)
	if p.Top != 1 || p.Bottom != 1 || p.Left != 2 || p.Right != 2 {
		t.Errorf("NewPaddingHV(2,1) = %+v, want T=1,B=1,L=2,R=2", p)
	}
	if p := NewPaddingHV(-1, -3); p != (Padding{}) {
		t.Errorf("negative padding = %+v, want zero", p)
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"hex", Color, "#ff5500", "\x1b[38;2;255;85;0m"},
		{"hex without hash", Color, "00ff00", "\x1b[38;2;0;255;0m"},
		{"background hex", BgColor, "#001122", "\x1b[48;2;0;17;34m"},
		{"256 index", Color, "196", "\x1b[38;5;196m"},
		{"background index", BgColor, "17", "\x1b[48;5;17m"},
		{"raw escape", Color, "\x1b[31m", "\x1b[31m"},
		{"index out of range", Color, "256", ""},
		{"garbage", Color, "xyz", ""},
		{"empty", Color, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVisibleLen(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"hello", 5},
		{"", 0},
		{"\x1b[31mred\x1b[0m", 3},
		{"📈 up", 5},
	}
	for _, tt := range tests {
		if got := VisibleLen(tt.in); got != tt.want {
			t.Errorf("VisibleLen(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTruncateAndFit(t *testing.T) {
	if got := Truncate("hello world", 5); got != "hello" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("hello", 0); got != "" {
		t.Errorf("Truncate to 0 = %q", got)
	}
	if got := TruncateWithTail("hello world", 6, "…"); got != "hello…" {
		t.Errorf("TruncateWithTail = %q", got)
	}
	if got := Fit("ab", 4); got != "ab  " {
		t.Errorf("Fit pad = %q", got)
	}
	if got := Fit("abcdef", 4); got != "abcd" {
		t.Errorf("Fit cut = %q", got)
	}
	if got := PadRight("abcdef", 3); got != "abcdef" {
		t.Errorf("PadRight on a wider string = %q", got)
	}
}

func TestRenderBoxGeometry(t *testing.T) {
	box := RenderBox("line1\nline2\nline3", 12, 5, BoxStyle{Border: BorderRounded})
	lines := strings.Split(box, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), lines)
	}
	for i, l := range lines {
		if w := VisibleLen(l); w != 12 {
			t.Errorf("line %d width %d, want 12: %q", i, w, l)
		}
	}
	if !strings.HasPrefix(lines[0], "╭") || !strings.HasSuffix(lines[4], "╯") {
		t.Errorf("unexpected corners: %q / %q", lines[0], lines[4])
	}
	for i, want := range []string{"line1", "line2", "line3"} {
		if !strings.Contains(lines[i+1], want) {
			t.Errorf("line %d = %q, want it to contain %q", i+1, lines[i+1], want)
		}
	}
}

func TestRenderBoxTooSmall(t *testing.T) {
	if box := RenderBox("", 1, 1, BoxStyle{Border: BorderSingle}); box != "" {
		t.Errorf("1x1 box should be empty, got %q", box)
	}
	if box := RenderBox("x", 0, 3, BoxStyle{}); box != "" {
		t.Errorf("0-width borderless box should be empty, got %q", box)
	}
}

func TestRenderBoxClipsAndFills(t *testing.T) {
	box := RenderBox("toolong\nb\nc\nd", 6, 4, BoxStyle{Border: BorderSingle})
	lines := strings.Split(box, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[1] != "│tool│" {
		t.Errorf("truncated row = %q", lines[1])
	}
	if lines[2] != "│b   │" {
		t.Errorf("padded row = %q", lines[2])
	}
}

func TestRenderBoxPadding(t *testing.T) {
	box := RenderBox("x", 8, 5, BoxStyle{Border: BorderSingle, Padding: NewPaddingHV(2, 1)})
	lines := strings.Split(box, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if lines[1] != "│      │" {
		t.Errorf("top padding row = %q", lines[1])
	}
	if lines[2] != "│  x   │" {
		t.Errorf("content row = %q", lines[2])
	}
}

func TestRenderBoxNoBorder(t *testing.T) {
	box := RenderBox("hi", 4, 2, BoxStyle{Border: BorderNone})
	if box != "hi  \n    " {
		t.Errorf("borderless box = %q", box)
	}
}

func TestRenderBoxTitleAlign(t *testing.T) {
	tests := []struct {
		align Align
		want  string
	}{
		{AlignLeft, "┌─ ab ─────┐"},
		{AlignCenter, "┌─── ab ───┐"},
		{AlignRight, "┌───── ab ─┐"},
	}
	for _, tt := range tests {
		box := RenderBox("", 12, 2, BoxStyle{Border: BorderSingle, Title: "ab", TitleAlign: tt.align})
		if top := strings.Split(box, "\n")[0]; top != tt.want {
			t.Errorf("align %d: top = %q, want %q", tt.align, top, tt.want)
		}
	}
}

func TestRenderBoxTitleTruncation(t *testing.T) {
	box := RenderBox("", 10, 2, BoxStyle{Border: BorderSingle, Title: "a very long title"})
	top := strings.Split(box, "\n")[0]
	if VisibleLen(top) != 10 {
		t.Errorf("top width %d, want 10: %q", VisibleLen(top), top)
	}
	if !strings.Contains(top, "…") {
		t.Errorf("expected an ellipsis in %q", top)
	}
}

func TestRenderBoxActions(t *testing.T) {
	box := RenderBox("", 16, 2, BoxStyle{Border: BorderRounded, Title: "T", Actions: "↻ ✕"})
	top := strings.Split(box, "\n")[0]
	if top != "╭─ T ──── ↻ ✕ ─╮" {
		t.Errorf("top = %q", top)
	}

	// Actions without a title still sit at the right.
	box = RenderBox("", 10, 2, BoxStyle{Border: BorderRounded, Actions: "✕"})
	if top := strings.Split(box, "\n")[0]; top != "╭──── ✕ ─╮" {
		t.Errorf("untitled top = %q", top)
	}

	// No room: the actions are dropped.
	box = RenderBox("", 5, 2, BoxStyle{Border: BorderRounded, Actions: "↻ ✕"})
	if top := strings.Split(box, "\n")[0]; top != "╭───╮" {
		t.Errorf("narrow top = %q", top)
	}
}

func TestRenderBoxHeavy(t *testing.T) {
	box := RenderBox("", 4, 3, BoxStyle{Border: BorderHeavy})
	want := "┏━━┓\n┃  ┃\n┗━━┛"
	if box != want {
		t.Errorf("heavy box = %q, want %q", box, want)
	}
}

func TestRenderBoxWithColor(t *testing.T) {
	box := RenderBox("", 4, 2, BoxStyle{Border: BorderSingle, FG: "#ff0000"})
	if !strings.Contains(box, "\x1b[38;2;255;0;0m") {
		t.Errorf("expected a true-color border, got %q", box)
	}
	if !strings.Contains(box, Reset()) {
		t.Error("expected a reset after the colored border")
	}

	box = RenderBox("", 4, 2, BoxStyle{Border: BorderSingle, FG: "240"})
	if !strings.Contains(box, "\x1b[38;5;240m") {
		t.Errorf("expected an indexed border color, got %q", box)
	}
}
