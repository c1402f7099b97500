package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJobScheduler_RunsJobsOnEveryTick(t *testing.T) {
	scheduler := NewJobScheduler("test", 10*time.Millisecond)

	var runs atomic.Int64
	scheduler.AddJob(Job{Name: "counter", Run: func(ctx context.Context) {
		runs.Add(1)
	}})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go scheduler.Run(ctx)

	assert.Eventually(t, func() bool { return runs.Load() >= 2 }, time.Second, 5*time.Millisecond)
}

func TestJobScheduler_StopsOnContextCancel(t *testing.T) {
	scheduler := NewJobScheduler("test", 5*time.Millisecond)

	var runs atomic.Int64
	scheduler.AddJob(Job{Name: "counter", Run: func(ctx context.Context) {
		runs.Add(1)
	}})

	ctx, cancel := context.WithCancel(context.Background())
	go scheduler.Run(ctx)

	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, time.Second, time.Millisecond)
	cancel()

	time.Sleep(20 * time.Millisecond)
	settled := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, runs.Load(), "no runs after cancellation")
}
