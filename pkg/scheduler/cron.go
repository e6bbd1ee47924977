package scheduler

import (
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// CronBackend runs timers as cron.Every entries on a single cron.Cron.
// cron.Every rounds intervals down to whole seconds with a one second
// minimum.
type CronBackend struct {
	cron *cron.Cron

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

// NewCronBackend returns a started backend. Cron's own messages go to
// logger.
func NewCronBackend(logger *slog.Logger) *CronBackend {
	if logger == nil {
		logger = slog.Default()
	}
	b := &CronBackend{
		cron:    cron.New(cron.WithLogger(cronLogger{logger})),
		entries: make(map[string]cron.EntryID),
	}
	b.cron.Start()
	return b
}

// Every schedules fire on a fixed period.
func (b *CronBackend) Every(id string, interval time.Duration, fire func()) func() {
	entry := b.cron.Schedule(cron.Every(interval), cron.FuncJob(fire))

	b.mu.Lock()
	b.entries[id] = entry
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.cron.Remove(entry)
			b.mu.Lock()
			delete(b.entries, id)
			b.mu.Unlock()
		})
	}
}

// Entries returns the number of scheduled entries.
func (b *CronBackend) Entries() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Close stops the cron runner and waits for running jobs.
func (b *CronBackend) Close() {
	<-b.cron.Stop().Done()
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error("cron: "+msg, append([]interface{}{"error", err}, keysAndValues...)...)
}
