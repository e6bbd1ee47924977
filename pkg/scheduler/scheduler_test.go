package scheduler

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

func TestStartStop(t *testing.T) {
	s, m := newManualScheduler()

	if err := s.Start("widget-0"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !s.Active("widget-0") {
		t.Error("Active(widget-0) = false after Start")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
	if !s.Stop("widget-0") {
		t.Error("Stop(widget-0) = false, want true")
	}
	if s.Active("widget-0") {
		t.Error("Active(widget-0) = true after Stop")
	}
	if got := m.Cancels("widget-0"); got != 1 {
		t.Errorf("Cancels = %d, want 1", got)
	}
}

func TestStartTwice(t *testing.T) {
	s, _ := newManualScheduler()
	_ = s.Start("widget-0")
	err := s.Start("widget-0")
	if !errors.Is(err, ErrActive) {
		t.Errorf("second Start = %v, want ErrActive", err)
	}
}

func TestStartRetired(t *testing.T) {
	s, _ := newManualScheduler()
	_ = s.Start("widget-0")
	s.Stop("widget-0")
	if err := s.Start("widget-0"); !errors.Is(err, ErrRetired) {
		t.Errorf("Start after Stop = %v, want ErrRetired", err)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	s, m := newManualScheduler()
	_ = s.Start("widget-0")
	s.Stop("widget-0")
	if s.Stop("widget-0") {
		t.Error("second Stop = true, want false")
	}
	if s.Stop("widget-99") {
		t.Error("Stop(unknown) = true, want false")
	}
	if got := m.Cancels("widget-0"); got != 1 {
		t.Errorf("Cancels = %d, want exactly 1", got)
	}
}

func TestFireEnqueuesID(t *testing.T) {
	s, m := newManualScheduler()
	_ = s.Start("widget-3")
	if !m.Fire("widget-3") {
		t.Fatal("Fire returned false for live timer")
	}
	select {
	case id := <-s.Ticks():
		if id != "widget-3" {
			t.Errorf("tick id = %q, want widget-3", id)
		}
		if !s.Accept(id) {
			t.Error("Accept = false for active id")
		}
	default:
		t.Fatal("no tick queued")
	}
}

func TestQueuedTickRejectedAfterStop(t *testing.T) {
	s, m := newManualScheduler()
	_ = s.Start("widget-0")
	m.Fire("widget-0")
	s.Stop("widget-0")

	id := <-s.Ticks()
	if s.Accept(id) {
		t.Error("Accept = true for tick queued before Stop")
	}
	if m.Fire("widget-0") {
		t.Error("Fire after Stop reached a cancelled timer")
	}
}

func TestFullChannelDrops(t *testing.T) {
	m := NewManual()
	s := New(m, WithBuffer(1), WithLogger(discard()))
	_ = s.Start("widget-0")
	m.Fire("widget-0")
	m.Fire("widget-0")
	m.Fire("widget-0")

	if got := s.Dropped(); got != 2 {
		t.Errorf("Dropped() = %d, want 2", got)
	}
	if got := len(s.Ticks()); got != 1 {
		t.Errorf("queued ticks = %d, want 1", got)
	}
}

func TestIntervalOption(t *testing.T) {
	m := NewManual()
	s := New(m, WithInterval(500*time.Millisecond), WithLogger(discard()))
	_ = s.Start("widget-0")
	if got := m.Interval("widget-0"); got != 500*time.Millisecond {
		t.Errorf("backend interval = %v, want 500ms", got)
	}

	d := New(m, WithInterval(-1))
	if d.Interval() != DefaultInterval {
		t.Errorf("Interval() = %v, want default %v", d.Interval(), DefaultInterval)
	}
}

func TestClose(t *testing.T) {
	s, m := newManualScheduler()
	for _, id := range []string{"widget-0", "widget-1", "widget-2"} {
		_ = s.Start(id)
	}
	s.Close()

	if s.Len() != 0 {
		t.Errorf("Len() after Close = %d, want 0", s.Len())
	}
	if m.Live() != 0 {
		t.Errorf("backend live timers = %d, want 0", m.Live())
	}
	if err := s.Start("widget-3"); !errors.Is(err, ErrClosed) {
		t.Errorf("Start after Close = %v, want ErrClosed", err)
	}
	s.Close()
	if got := m.Cancels("widget-1"); got != 1 {
		t.Errorf("Cancels after double Close = %d, want 1", got)
	}
}

func TestManualFireAll(t *testing.T) {
	s, m := newManualScheduler()
	_ = s.Start("widget-0")
	_ = s.Start("widget-1")
	if n := m.FireAll(); n != 2 {
		t.Errorf("FireAll() = %d, want 2", n)
	}
	if got := len(s.Ticks()); got != 2 {
		t.Errorf("queued ticks = %d, want 2", got)
	}
}

func TestCronBackendFires(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for a real one-second cron tick")
	}
	b := NewCronBackend(discard())
	s := New(b, WithInterval(time.Second), WithLogger(discard()))
	defer s.Close()

	if err := s.Start("widget-0"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if b.Entries() != 1 {
		t.Errorf("Entries() = %d, want 1", b.Entries())
	}

	select {
	case id := <-s.Ticks():
		if id != "widget-0" {
			t.Errorf("tick id = %q, want widget-0", id)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no tick within 3s")
	}

	s.Stop("widget-0")
	if b.Entries() != 0 {
		t.Errorf("Entries() after Stop = %d, want 0", b.Entries())
	}
}

// --- helpers ---

func newManualScheduler() (*Scheduler, *Manual) {
	m := NewManual()
	return New(m, WithLogger(discard())), m
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
