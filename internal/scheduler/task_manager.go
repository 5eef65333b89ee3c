// Package scheduler runs work deferred to the next host tick.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// DefaultInterval is one host tick.
const DefaultInterval = 50 * time.Millisecond

// Task is a unit of deferred work.
type Task func()

// TaskManager queues tasks and runs them on the next tick, in submission order.
// A task submitted while a tick is running waits for the following tick.
type TaskManager struct {
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once

	mu    sync.Mutex
	tasks []Task
}

// NewTaskManager creates a task manager ticking every interval
// (DefaultInterval if interval <= 0).
func NewTaskManager(interval time.Duration) *TaskManager {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &TaskManager{
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// RunTask schedules fn for the next tick.
func (m *TaskManager) RunTask(fn func()) {
	if fn == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = append(m.tasks, fn)
}

// PendingCount returns the number of tasks waiting for a tick.
func (m *TaskManager) PendingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tasks)
}

// Start runs the tick loop (blocks until ctx is canceled or Stop is called).
// Pending tasks are drained once more before returning.
func (m *TaskManager) Start(ctx context.Context) error {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	slog.Info("task manager started", "interval", m.interval)

	for {
		select {
		case <-ctx.Done():
			m.RunPending()
			slog.Info("task manager stopping")
			return ctx.Err()

		case <-m.stopCh:
			m.RunPending()
			slog.Info("task manager stopped")
			return nil

		case <-ticker.C:
			m.RunPending()
		}
	}
}

// Stop terminates Start. Safe to call more than once.
func (m *TaskManager) Stop() {
	m.stopOnce.Do(func() { close(m.stopCh) })
}

// RunPending runs every task queued so far on the calling goroutine and
// returns how many ran. Tests use it to step ticks deterministically.
func (m *TaskManager) RunPending() int {
	m.mu.Lock()
	due := m.tasks
	m.tasks = nil
	m.mu.Unlock()

	for _, task := range due {
		m.execute(task)
	}
	return len(due)
}

// execute runs one task; a panicking task is logged and does not stop the tick.
func (m *TaskManager) execute(task Task) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("deferred task panicked", "panic", r)
		}
	}()
	task()
}
