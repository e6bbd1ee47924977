package scheduler

import (
	"sync"
	"time"
)

// Manual is a Backend whose timers fire only when told to. It is used by
// tests and by callers that drive refreshes themselves.
type Manual struct {
	mu       sync.Mutex
	fires    map[string]func()
	cancels  map[string]int
	interval map[string]time.Duration
}

// NewManual returns an empty Manual backend.
func NewManual() *Manual {
	return &Manual{
		fires:    make(map[string]func()),
		cancels:  make(map[string]int),
		interval: make(map[string]time.Duration),
	}
}

// Every registers fire under id.
func (m *Manual) Every(id string, interval time.Duration, fire func()) func() {
	m.mu.Lock()
	m.fires[id] = fire
	m.interval[id] = interval
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		m.cancels[id]++
		delete(m.fires, id)
	}
}

// Fire triggers the timer for id once. It reports whether a live timer
// exists.
func (m *Manual) Fire(id string) bool {
	m.mu.Lock()
	fire := m.fires[id]
	m.mu.Unlock()
	if fire == nil {
		return false
	}
	fire()
	return true
}

// FireAll triggers every live timer once.
func (m *Manual) FireAll() int {
	m.mu.Lock()
	fires := make([]func(), 0, len(m.fires))
	for _, f := range m.fires {
		fires = append(fires, f)
	}
	m.mu.Unlock()
	for _, f := range fires {
		f()
	}
	return len(fires)
}

// Cancels returns how many times the timer for id was cancelled.
func (m *Manual) Cancels(id string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancels[id]
}

// Interval returns the period id was registered with.
func (m *Manual) Interval(id string) time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.interval[id]
}

// Live returns the number of uncancelled timers.
func (m *Manual) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.fires)
}
