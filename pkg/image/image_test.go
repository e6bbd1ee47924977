package image

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"

	"gitlab.com/tinyland/lab/quantum-flux/pkg/dashboard"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/scheduler"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/series"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/terminal"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/widgets"
)

// makeImage creates a solid-colored NRGBA test image.
func makeImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func newTestDashboard(t *testing.T) *dashboard.Dashboard {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	sched := scheduler.New(scheduler.NewManual(), scheduler.WithLogger(log))
	d := dashboard.New(sched,
		dashboard.WithGenerator(series.NewGenerator(series.NewSource(7))),
		dashboard.WithLogger(log),
	)
	t.Cleanup(d.Close)
	return d
}

func TestResizeToFitNoUpscale(t *testing.T) {
	img := makeImage(10, 10, color.White)
	if got := ResizeToFit(img, 80, 24, 8, 16); got != image.Image(img) {
		t.Error("expected an image that fits to be returned unchanged")
	}
}

func TestResizeToFitKeepsAspect(t *testing.T) {
	img := makeImage(400, 250, color.White)
	got := ResizeToFit(img, 40, 40, 1, 2)
	b := got.Bounds()
	if b.Dx() != 40 || b.Dy() != 25 {
		t.Errorf("resized to %dx%d, want 40x25", b.Dx(), b.Dy())
	}
}

func TestResizeToFitNil(t *testing.T) {
	if ResizeToFit(nil, 10, 10, 8, 16) != nil {
		t.Error("expected nil for nil input")
	}
}

func TestImageToNRGBA(t *testing.T) {
	n := makeImage(2, 2, color.Black)
	if ImageToNRGBA(n) != n {
		t.Error("expected NRGBA input returned as is")
	}
	rgba := image.NewRGBA(image.Rect(0, 0, 3, 1))
	rgba.Set(1, 0, color.RGBA{R: 255, A: 255})
	got := ImageToNRGBA(rgba)
	if c := got.NRGBAAt(1, 0); c.R != 255 || c.A != 255 {
		t.Errorf("pixel = %+v, want opaque red", c)
	}
}

func TestRenderHalfblocks(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 2, color.NRGBA{R: 9, G: 9, B: 9, A: 255})

	out := renderHalfblocks(img)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines for 3 pixel rows, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "\x1b[38;2;255;0;0m\x1b[48;2;0;0;255m▀") {
		t.Errorf("expected red over blue in %q", lines[0])
	}
	if !strings.Contains(lines[0], "\x1b[38;2;0;255;0m\x1b[49m▄") {
		t.Errorf("expected a lower half block for the green pixel in %q", lines[0])
	}
	if !strings.Contains(lines[1], "\x1b[38;2;9;9;9m\x1b[49m▀") {
		t.Errorf("expected a top-only cell on the odd last row in %q", lines[1])
	}
	if !strings.HasSuffix(out, "\x1b[0m") {
		t.Error("expected a trailing reset")
	}
}

func TestRenderHalfblocksEmpty(t *testing.T) {
	if out := renderHalfblocks(image.NewNRGBA(image.Rect(0, 0, 0, 0))); out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}

func TestRendererHalfblocksFits(t *testing.T) {
	r := NewRenderer(terminal.ProtocolHalfblocks, terminal.Size{})
	out, err := r.Render(makeImage(400, 250, color.White), 40, 20)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out, "\n")
	// 40 pixel columns by 25 pixel rows: 13 half-block lines.
	if len(lines) != 13 {
		t.Errorf("got %d lines, want 13", len(lines))
	}
	if n := strings.Count(lines[0], "▀"); n != 40 {
		t.Errorf("first line has %d cells, want 40", n)
	}
}

func TestRendererDisabled(t *testing.T) {
	r := NewRenderer(terminal.ProtocolNone, terminal.Size{})
	if _, err := r.Render(makeImage(1, 1, color.White), 10, 10); !errors.Is(err, ErrDisabled) {
		t.Errorf("err = %v, want ErrDisabled", err)
	}
	if _, err := NewRenderer(terminal.ProtocolHalfblocks, terminal.Size{}).Render(nil, 1, 1); err == nil {
		t.Error("expected an error for a nil image")
	}
}

func TestNewRendererCellDefaults(t *testing.T) {
	r := NewRenderer(terminal.ProtocolKitty, terminal.Size{CellW: 0, CellH: 20})
	if r.cellW != 8 || r.cellH != 20 {
		t.Errorf("cell = %dx%d, want 8x20", r.cellW, r.cellH)
	}
	if r.Protocol() != terminal.ProtocolKitty {
		t.Errorf("Protocol() = %s", r.Protocol())
	}
}

func TestSnapshotChartWidget(t *testing.T) {
	d := newTestDashboard(t)
	w := d.AddWidget(widgets.KindBarSet)

	img, ok := Snapshot(d, w.ID, 2)
	if !ok {
		t.Fatal("expected a snapshot for a bar widget")
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 500 {
		t.Errorf("snapshot is %dx%d, want 800x500", b.Dx(), b.Dy())
	}
	// Corner pixel is the tile background.
	want := color.RGBA{R: 0x1e, G: 0x29, B: 0x3b, A: 0xff}
	if got := img.RGBAAt(0, 0); got != want {
		t.Errorf("background = %+v, want %+v", got, want)
	}
}

func TestSnapshotSkipsMetricAndUnknown(t *testing.T) {
	d := newTestDashboard(t)
	m := d.AddWidget(widgets.KindMetric)
	if _, ok := Snapshot(d, m.ID, 1); ok {
		t.Error("expected no snapshot for a metric widget")
	}
	if _, ok := Snapshot(d, "widget-99", 1); ok {
		t.Error("expected no snapshot for an unknown id")
	}
}

func TestSaveAll(t *testing.T) {
	d := newTestDashboard(t)
	d.AddWidget(widgets.KindTimeSeries)
	d.AddWidget(widgets.KindMetric)
	d.AddWidget(widgets.KindPieSet)

	dir := filepath.Join(t.TempDir(), "snaps")
	paths, err := SaveAll(d, dir, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(dir, "widget-0.png"), filepath.Join(dir, "widget-2.png")}
	if strings.Join(paths, ",") != strings.Join(want, ",") {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for _, p := range paths {
		img, err := imaging.Open(p)
		if err != nil {
			t.Fatalf("open %s: %v", p, err)
		}
		if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 250 {
			t.Errorf("%s is %dx%d, want 400x250", p, b.Dx(), b.Dy())
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "widget-1.png")); !os.IsNotExist(err) {
		t.Error("expected no PNG for the metric widget")
	}
}
