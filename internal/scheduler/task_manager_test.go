package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskManager_RunPendingInOrder(t *testing.T) {
	m := NewTaskManager(time.Hour)

	var order []int
	m.RunTask(func() { order = append(order, 1) })
	m.RunTask(func() { order = append(order, 2) })
	m.RunTask(nil)

	assert.Equal(t, 2, m.PendingCount())
	assert.Equal(t, 2, m.RunPending())
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 0, m.PendingCount())
	assert.Equal(t, 0, m.RunPending())
}

func TestTaskManager_TaskScheduledDuringTickWaits(t *testing.T) {
	m := NewTaskManager(time.Hour)

	var ran atomic.Int32
	m.RunTask(func() {
		ran.Add(1)
		m.RunTask(func() { ran.Add(10) })
	})

	assert.Equal(t, 1, m.RunPending())
	assert.Equal(t, int32(1), ran.Load())
	assert.Equal(t, 1, m.PendingCount())

	m.RunPending()
	assert.Equal(t, int32(11), ran.Load())
}

func TestTaskManager_PanicDoesNotStopTick(t *testing.T) {
	m := NewTaskManager(time.Hour)

	var ran atomic.Bool
	m.RunTask(func() { panic("boom") })
	m.RunTask(func() { ran.Store(true) })

	assert.Equal(t, 2, m.RunPending())
	assert.True(t, ran.Load())
}

func TestTaskManager_StartRunsTasks(t *testing.T) {
	m := NewTaskManager(5 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- m.Start(ctx) }()

	ran := make(chan struct{})
	m.RunTask(func() { close(ran) })

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run within 2s")
	}

	cancel()
	err := <-done
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestTaskManager_StopDrains(t *testing.T) {
	m := NewTaskManager(time.Hour)

	done := make(chan error, 1)
	go func() { done <- m.Start(context.Background()) }()

	var ran atomic.Bool
	m.RunTask(func() { ran.Store(true) })
	m.Stop()
	m.Stop()

	require.NoError(t, <-done)
	assert.True(t, ran.Load())
}

func TestNewTaskManager_DefaultInterval(t *testing.T) {
	assert.Equal(t, DefaultInterval, NewTaskManager(0).interval)
}
