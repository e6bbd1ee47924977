package perf

import "testing"

// Threshold defines a performance budget for a named operation. Benchmarks
// that exceed these thresholds indicate a performance regression that should
// be investigated before merging.
type Threshold struct {
	// Name identifies the operation (must match a NamedResult name).
	Name string

	// MaxNs is the maximum allowed nanoseconds per operation.
	MaxNs int64

	// MaxAlloc is the maximum allowed bytes allocated per operation.
	MaxAlloc int64
}

// NamedResult pairs a benchmark result with the threshold name it is
// checked against.
type NamedResult struct {
	Name   string
	Result testing.BenchmarkResult
}

// Violation records a threshold breach for a specific benchmark.
type Violation struct {
	// Threshold is the budget that was exceeded.
	Threshold Threshold

	// Actual is the measured value that exceeded the threshold.
	Actual int64

	// Field indicates which metric was violated: "ns" for time or "alloc"
	// for memory allocation.
	Field string
}

// DefaultThresholds returns the performance budgets for the dashboard's
// rendering paths. A refresh tick redraws one chart, so every chart budget
// is far below the 2 s refresh period.
//
// Budgets:
//   - chart_*_braille < 2ms: one chart into a 42x12 terminal canvas
//   - chart_line_raster < 20ms: one anti-aliased chart at scale 2
//   - dashboard_tick < 5ms: advance, redraw and counter publish
//   - layout_grid_* < 1ms: tile placement
//   - component_box < 500us: one bordered tile
//   - image_halfblocks < 50ms: a 400x250 snapshot as half blocks
func DefaultThresholds() []Threshold {
	return []Threshold{
		{Name: "chart_line_braille", MaxNs: 2_000_000, MaxAlloc: 262144},
		{Name: "chart_bar_braille", MaxNs: 2_000_000, MaxAlloc: 262144},
		{Name: "chart_pie_braille", MaxNs: 2_000_000, MaxAlloc: 262144},
		{Name: "chart_line_raster", MaxNs: 20_000_000, MaxAlloc: 8_388_608},
		{Name: "dashboard_tick", MaxNs: 5_000_000, MaxAlloc: 524288},
		{Name: "layout_grid_6", MaxNs: 1_000_000, MaxAlloc: 16384},
		{Name: "layout_grid_20", MaxNs: 1_000_000, MaxAlloc: 65536},
		{Name: "component_box", MaxNs: 500_000, MaxAlloc: 32768},
		{Name: "text_truncate", MaxNs: 50_000, MaxAlloc: 4096},
		{Name: "visible_len", MaxNs: 50_000, MaxAlloc: 2048},
		{Name: "image_halfblocks", MaxNs: 50_000_000, MaxAlloc: 8_388_608},
	}
}

// CheckRegression compares benchmark results against thresholds and returns
// all violations found. A violation occurs when either the nanoseconds per
// operation exceed MaxNs or the bytes allocated per operation exceed
// MaxAlloc. A zero budget is not checked.
//
// Results are matched to thresholds by name; results without a matching
// threshold are ignored.
func CheckRegression(results []NamedResult, thresholds []Threshold) []Violation {
	if len(results) == 0 || len(thresholds) == 0 {
		return nil
	}

	threshMap := make(map[string]Threshold, len(thresholds))
	for _, t := range thresholds {
		threshMap[t.Name] = t
	}

	var violations []Violation
	for _, r := range results {
		t, ok := threshMap[r.Name]
		if !ok {
			continue
		}

		if ns := r.Result.NsPerOp(); t.MaxNs > 0 && ns > t.MaxNs {
			violations = append(violations, Violation{Threshold: t, Actual: ns, Field: "ns"})
		}
		if alloc := r.Result.AllocedBytesPerOp(); t.MaxAlloc > 0 && alloc > t.MaxAlloc {
			violations = append(violations, Violation{Threshold: t, Actual: alloc, Field: "alloc"})
		}
	}

	return violations
}
