package gameserver

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/udisondev/anvil/internal/config"
	"github.com/udisondev/anvil/internal/model"
	"github.com/udisondev/anvil/internal/permission"
	"github.com/udisondev/anvil/internal/scheduler"
	"github.com/udisondev/anvil/internal/testutil"
)

// fakeRecorder collects audit records; err makes every write fail.
type fakeRecorder struct {
	mu      sync.Mutex
	records []model.CombinationRecord
	err     error
}

func (r *fakeRecorder) RecordCombination(_ context.Context, rec model.CombinationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, rec)
	return nil
}

func (r *fakeRecorder) Records() []model.CombinationRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.CombinationRecord, len(r.records))
	copy(out, r.records)
	return out
}

type listenerFixture struct {
	listener *AnvilListener
	tasks    *scheduler.TaskManager
	audit    *fakeRecorder
	host     *AnvilHost
}

// newFixture builds a listener whose ticker never fires on its own; tests
// drain deferred work with Tick.
func newFixture(t *testing.T, cfg config.Anvil, operators ...string) *listenerFixture {
	t.Helper()
	return newFixtureWithInterval(t, cfg, time.Hour, operators...)
}

// newFixtureWithInterval is newFixture with a chosen tick interval, for tests
// that run the ticker loop.
func newFixtureWithInterval(t *testing.T, cfg config.Anvil, interval time.Duration, operators ...string) *listenerFixture {
	t.Helper()
	tasks := scheduler.NewTaskManager(interval)
	audit := &fakeRecorder{}
	perms := permission.NewStatic(map[string][]string{cfg.UnsafePermission: operators})
	l := NewAnvilListener(cfg, testutil.Catalog(t), tasks, perms, audit)
	return &listenerFixture{
		listener: l,
		tasks:    tasks,
		audit:    audit,
		host:     NewAnvilHost(l, tasks),
	}
}
