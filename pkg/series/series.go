// Package series generates the mock datasets that seed and refresh
// dashboard widgets. All randomness flows through an injected Source so
// tests can replay fixed values.
package series

import (
	"math/rand/v2"
	"time"

	"gitlab.com/tinyland/lab/quantum-flux/pkg/widgets"
)

const (
	// WindowSize is the number of samples in a time series.
	WindowSize = 20

	// MaxValue bounds chart values to [0, MaxValue).
	MaxValue = 100.0
	// MaxCount bounds metric values to [0, MaxCount).
	MaxCount = 10000
	// MaxChange bounds the initial metric change to [-MaxChange, MaxChange).
	MaxChange = 10.0
)

// BarLabels are the categories of a new bar chart.
var BarLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// PieLabels are the categories of a new pie chart.
var PieLabels = []string{"Product A", "Product B", "Product C", "Product D"}

// Source is the uniform random source a Generator draws from.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// NewSource returns a PCG-backed source. A zero seed derives one from the
// current time.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generator builds widget payloads from a Source. It implements
// widgets.Randomizer so the same source drives seeding and refresh ticks.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator reading from src. A nil src uses a
// time-seeded source.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = NewSource(0)
	}
	return &Generator{src: src}
}

// Value returns a chart value in [0, MaxValue).
func (g *Generator) Value() float64 {
	return g.src.Float64() * MaxValue
}

// Count returns a metric value in [0, MaxCount).
func (g *Generator) Count() int {
	return g.src.IntN(MaxCount)
}

// Change returns an initial metric change in [-MaxChange, MaxChange).
func (g *Generator) Change() float64 {
	return (g.src.Float64() - 0.5) * 2 * MaxChange
}

// Generate returns a fresh payload for kind. Unknown kinds yield an empty
// category sequence; Generate never fails.
func (g *Generator) Generate(kind widgets.Kind) widgets.Data {
	switch kind {
	case widgets.KindTimeSeries:
		samples := make([]widgets.Sample, WindowSize)
		for i := range samples {
			samples[i] = widgets.Sample{Label: i, Value: g.Value()}
		}
		return &widgets.TimeSeries{Samples: samples}
	case widgets.KindBarSet:
		return g.categories(BarLabels)
	case widgets.KindPieSet:
		return g.categories(PieLabels)
	case widgets.KindMetric:
		return &widgets.Metric{Value: g.Count(), Change: g.Change()}
	default:
		return &widgets.Categories{}
	}
}

func (g *Generator) categories(labels []string) *widgets.Categories {
	points := make([]widgets.Point, len(labels))
	for i, label := range labels {
		points[i] = widgets.Point{Label: label, Value: g.Value()}
	}
	return &widgets.Categories{Points: points}
}
