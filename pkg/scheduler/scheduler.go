// Package scheduler owns the per-widget refresh timers. Each live widget id
// has at most one active timer; firing a timer only enqueues the id on a
// buffered channel, and the event loop that drains the channel asks Accept
// whether the tick still belongs to a live timer. Timers run on backend
// goroutines, but all widget mutation stays on the loop.
package scheduler

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is the refresh period of a widget timer.
const DefaultInterval = 2 * time.Second

// DefaultBuffer is the capacity of the tick channel.
const DefaultBuffer = 64

var (
	// ErrActive is returned by Start when the id already has a timer.
	ErrActive = errors.New("scheduler: timer already active")
	// ErrRetired is returned by Start for an id that was stopped. Ids are
	// never reused, so a retired id is a caller bug.
	ErrRetired = errors.New("scheduler: id retired")
	// ErrClosed is returned by Start after Close.
	ErrClosed = errors.New("scheduler: closed")
)

// Backend creates repeating timers. Every must call fire once per interval
// until cancel is called; cancel is called at most once. fire may run on
// any goroutine.
type Backend interface {
	Every(id string, interval time.Duration, fire func()) (cancel func())
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithInterval sets the timer period. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithBuffer sets the tick channel capacity. Values below 1 are ignored.
func WithBuffer(n int) Option {
	return func(s *Scheduler) {
		if n > 0 {
			s.buffer = n
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// Scheduler tracks which ids have a running timer.
type Scheduler struct {
	backend  Backend
	interval time.Duration
	buffer   int
	log      *slog.Logger

	ticks   chan string
	dropped atomic.Int64

	mu      sync.Mutex
	active  map[string]func()
	retired map[string]struct{}
	closed  bool
}

// New returns a Scheduler creating timers on backend.
func New(backend Backend, opts ...Option) *Scheduler {
	s := &Scheduler{
		backend:  backend,
		interval: DefaultInterval,
		buffer:   DefaultBuffer,
		log:      slog.Default(),
		active:   make(map[string]func()),
		retired:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.ticks = make(chan string, s.buffer)
	return s
}

// Interval returns the timer period.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Ticks returns the channel fired timers deliver ids on. The channel is
// never closed; consumers stop on their own context.
func (s *Scheduler) Ticks() <-chan string {
	return s.ticks
}

// Start creates the timer for id.
func (s *Scheduler) Start(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.closed:
		return ErrClosed
	case s.active[id] != nil:
		return fmt.Errorf("start %s: %w", id, ErrActive)
	}
	if _, ok := s.retired[id]; ok {
		return fmt.Errorf("start %s: %w", id, ErrRetired)
	}

	s.active[id] = s.backend.Every(id, s.interval, func() { s.enqueue(id) })
	s.log.Debug("timer started", "widget", id, "interval", s.interval)
	return nil
}

// Stop cancels the timer for id and retires the id. It reports whether a
// timer was active; stopping an unknown or retired id does nothing.
func (s *Scheduler) Stop(id string) bool {
	s.mu.Lock()
	cancel, ok := s.active[id]
	if ok {
		delete(s.active, id)
		s.retired[id] = struct{}{}
	}
	s.mu.Unlock()

	if !ok {
		return false
	}
	cancel()
	s.log.Debug("timer stopped", "widget", id)
	return true
}

// Active reports whether id has a running timer.
func (s *Scheduler) Active(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active[id] != nil
}

// Len returns the number of active timers.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// Accept reports whether a tick received from Ticks should be processed.
// Ticks queued before Stop are rejected here.
func (s *Scheduler) Accept(id string) bool {
	return s.Active(id)
}

// Dropped returns how many ticks were discarded because the channel was
// full.
func (s *Scheduler) Dropped() int64 {
	return s.dropped.Load()
}

// Close stops every timer. Start fails afterwards.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	cancels := make([]func(), 0, len(s.active))
	for id, cancel := range s.active {
		cancels = append(cancels, cancel)
		s.retired[id] = struct{}{}
		delete(s.active, id)
	}
	s.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
	if c, ok := s.backend.(interface{ Close() }); ok {
		c.Close()
	}
	s.log.Debug("scheduler closed", "timers", len(cancels))
}

func (s *Scheduler) enqueue(id string) {
	select {
	case s.ticks <- id:
	default:
		n := s.dropped.Add(1)
		s.log.Debug("tick dropped", "widget", id, "dropped", n)
	}
}
