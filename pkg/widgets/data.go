package widgets

// Data is the payload carried by a widget. The concrete type is determined
// by the widget's Kind:
//
//	KindTimeSeries -> *TimeSeries
//	KindBarSet     -> *Categories
//	KindPieSet     -> *Categories
//	KindMetric     -> *Metric
//	KindUnknown    -> *Categories (empty)
//
// The interface is sealed; only this package provides implementations.
type Data interface {
	// Len returns how many data points the payload contributes to the
	// dashboard's total: sequence length for array payloads, 1 for scalars.
	Len() int
	// Clone returns a deep copy that shares no slices with the receiver.
	Clone() Data

	data() // sealed marker
}

// Sample is one point of a time series. Labels increase by one per tick.
type Sample struct {
	Label int     `yaml:"label" json:"label"`
	Value float64 `yaml:"value" json:"value"`
}

// TimeSeries is a fixed-length sliding window of samples.
type TimeSeries struct {
	Samples []Sample `yaml:"samples" json:"samples"`
}

// Len returns the window length.
func (ts *TimeSeries) Len() int { return len(ts.Samples) }

// Clone returns a deep copy.
func (ts *TimeSeries) Clone() Data {
	out := &TimeSeries{Samples: make([]Sample, len(ts.Samples))}
	copy(out.Samples, ts.Samples)
	return out
}

// Values returns the sample values in window order.
func (ts *TimeSeries) Values() []float64 {
	vals := make([]float64, len(ts.Samples))
	for i, s := range ts.Samples {
		vals[i] = s.Value
	}
	return vals
}

func (*TimeSeries) data() {}

// Point is one labeled category of a bar or pie chart.
type Point struct {
	Label string  `yaml:"label" json:"label"`
	Value float64 `yaml:"value" json:"value"`
}

// Categories is an ordered, fixed set of labeled values. Labels never change
// after generation; refreshes replace values in place.
type Categories struct {
	Points []Point `yaml:"points" json:"points"`
}

// Len returns the number of categories.
func (c *Categories) Len() int { return len(c.Points) }

// Clone returns a deep copy.
func (c *Categories) Clone() Data {
	out := &Categories{Points: make([]Point, len(c.Points))}
	copy(out.Points, c.Points)
	return out
}

func (*Categories) data() {}

// Metric is the single-value tile payload. Change is a signed percentage
// relative to the previous Value.
type Metric struct {
	Value  int     `yaml:"value" json:"value"`
	Change float64 `yaml:"change" json:"change"`
}

// Len always returns 1.
func (*Metric) Len() int { return 1 }

// Clone returns a copy.
func (m *Metric) Clone() Data {
	out := *m
	return &out
}

func (*Metric) data() {}

// Values returns the category values in order.
func (c *Categories) Values() []float64 {
	vals := make([]float64, len(c.Points))
	for i, p := range c.Points {
		vals[i] = p.Value
	}
	return vals
}
