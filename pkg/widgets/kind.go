package widgets

import "strings"

// Kind identifies which of the fixed widget variants a tile is.
type Kind int

const (
	// KindUnknown is a widget whose type name was not recognized. It carries
	// an empty data sequence and is never drawn.
	KindUnknown Kind = iota
	// KindTimeSeries is the "line" chart: a sliding window of samples.
	KindTimeSeries
	// KindBarSet is the "bar" chart: five weekday categories.
	KindBarSet
	// KindPieSet is the "pie" chart: four product shares.
	KindPieSet
	// KindMetric is the numeric tile with a percentage change.
	KindMetric
)

// Kinds lists every known kind in picker order.
var Kinds = []Kind{KindTimeSeries, KindBarSet, KindPieSet, KindMetric}

// String returns the short type name used in config files and key hints.
func (k Kind) String() string {
	switch k {
	case KindTimeSeries:
		return "line"
	case KindBarSet:
		return "bar"
	case KindPieSet:
		return "pie"
	case KindMetric:
		return "metric"
	default:
		return "unknown"
	}
}

// Title returns the display title for a new widget of this kind.
func (k Kind) Title() string {
	switch k {
	case KindTimeSeries:
		return "📈 Real-time Metrics"
	case KindBarSet:
		return "📊 Weekly Performance"
	case KindPieSet:
		return "🥧 Market Distribution"
	case KindMetric:
		return "🎯 Key Performance"
	default:
		return "Widget"
	}
}

// IsChart reports whether widgets of this kind are drawn by the chart
// renderer (as opposed to text fields).
func (k Kind) IsChart() bool {
	switch k {
	case KindTimeSeries, KindBarSet, KindPieSet:
		return true
	default:
		return false
	}
}

// ParseKind maps a type name ("line", "bar", "pie", "metric") to its Kind.
// Matching is case-insensitive. Unrecognized names return KindUnknown, false.
func ParseKind(name string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "line":
		return KindTimeSeries, true
	case "bar":
		return KindBarSet, true
	case "pie":
		return KindPieSet, true
	case "metric":
		return KindMetric, true
	default:
		return KindUnknown, false
	}
}

// MarshalText implements encoding.TextMarshaler so kinds serialize by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
