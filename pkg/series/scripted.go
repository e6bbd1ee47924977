package series

// Scripted is a Source that replays a fixed list of fractions in [0, 1).
// Once the list is exhausted it repeats from the start. An empty script
// always returns 0.
type Scripted struct {
	values []float64
	pos    int
}

// NewScripted returns a Source replaying values in order.
func NewScripted(values ...float64) *Scripted {
	return &Scripted{values: values}
}

// Float64 returns the next scripted fraction.
func (s *Scripted) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

// IntN scales the next scripted fraction to [0, n).
func (s *Scripted) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(s.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// Calls returns how many values have been drawn.
func (s *Scripted) Calls() int {
	return s.pos
}
