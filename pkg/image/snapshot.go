package image

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"

	"github.com/disintegration/imaging"

	"gitlab.com/tinyland/lab/quantum-flux/pkg/chart"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/dashboard"
	"gitlab.com/tinyland/lab/quantum-flux/pkg/perf"
)

// Snapshot draws chart widget id onto a fresh raster at scale pixels per
// logical unit, on the current theme's tile background. It returns false
// for unknown ids and for widgets that are not charts.
func Snapshot(d *dashboard.Dashboard, id string, scale float64) (*image.RGBA, bool) {
	w, h := d.Canvas()
	r := chart.NewRaster(int(w), int(h), scale, d.Theme().Surface)
	if !d.RenderTo(id, r) {
		return nil, false
	}
	return r.Image(), true
}

// SaveAll writes one PNG per chart widget to dir as <id>.png, creating dir
// if needed, and returns the paths written in widget order. Charts are
// rasterized and encoded in parallel; d must not be ticked meanwhile.
func SaveAll(d *dashboard.Dashboard, dir string, scale float64) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create snapshot dir: %w", err)
	}

	var tasks []perf.Task[string]
	for _, w := range d.Widgets() {
		if !w.Kind.IsChart() {
			continue
		}
		tasks = append(tasks, perf.Task[string]{
			ID: w.ID,
			Run: func() (string, error) {
				img, ok := Snapshot(d, w.ID, scale)
				if !ok {
					return "", fmt.Errorf("widget %s is not a chart", w.ID)
				}
				path := filepath.Join(dir, w.ID+".png")
				return path, imaging.Save(img, path)
			},
		})
	}

	var paths []string
	for _, r := range perf.Batch(tasks, runtime.GOMAXPROCS(0)) {
		if r.Err != nil {
			return paths, fmt.Errorf("save %s: %w", r.ID, r.Err)
		}
		paths = append(paths, r.Value)
	}
	return paths, nil
}
