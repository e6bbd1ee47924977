package widgets

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Randomizer supplies the fresh values a refresh tick writes into a widget.
type Randomizer interface {
	// Value returns a chart value in [0, 100).
	Value() float64
	// Count returns a metric value in [0, 10000).
	Count() int
}

// Advance applies one refresh tick to w's data:
//
//   - time series: drop the oldest sample, append label+1 with a fresh value
//   - bar/pie: replace every value, labels unchanged
//   - metric: replace the value and recompute the percentage change
//
// Unknown kinds and mismatched payloads are left untouched.
func Advance(w *Widget, r Randomizer) {
	switch d := w.Data.(type) {
	case *TimeSeries:
		if len(d.Samples) == 0 {
			return
		}
		next := Sample{Label: d.Samples[len(d.Samples)-1].Label + 1, Value: r.Value()}
		copy(d.Samples, d.Samples[1:])
		d.Samples[len(d.Samples)-1] = next
	case *Categories:
		for i := range d.Points {
			d.Points[i].Value = r.Value()
		}
	case *Metric:
		old := d.Value
		d.Value = r.Count()
		d.Change = PercentChange(old, d.Value)
	}
}

// PercentChange returns (next-prev)/prev*100. A zero previous value yields
// 0 rather than an infinite or NaN percentage.
func PercentChange(prev, next int) float64 {
	if prev == 0 {
		return 0
	}
	return float64(next-prev) / float64(prev) * 100
}

// MetricText is the rendered form of a metric tile's two live fields.
type MetricText struct {
	Value    string // e.g. "4,821"
	Change   string // e.g. "↑ 12.50%"
	Positive bool   // selects the positive/negative color
}

// FormatMetric renders m the way the metric tile shows it.
func FormatMetric(m *Metric) MetricText {
	positive := m.Change >= 0
	arrow := "↓"
	if positive {
		arrow = "↑"
	}
	return MetricText{
		Value:    humanize.Comma(int64(m.Value)),
		Change:   fmt.Sprintf("%s %.2f%%", arrow, math.Abs(m.Change)),
		Positive: positive,
	}
}
