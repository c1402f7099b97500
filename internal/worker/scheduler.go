package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Job is a unit of scheduled work. Jobs must be safe to run repeatedly and
// must not panic.
type Job struct {
	Name string
	Run  func(ctx context.Context)
}

// JobScheduler runs a list of jobs on a fixed interval until its context is
// cancelled.
type JobScheduler struct {
	Name   string
	Ticker *time.Ticker
	Jobs   []Job
	mu     sync.RWMutex
}

func NewJobScheduler(name string, interval time.Duration) *JobScheduler {
	return &JobScheduler{
		Name:   name,
		Ticker: time.NewTicker(interval),
		Jobs:   make([]Job, 0),
	}
}

func (s *JobScheduler) AddJob(job Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Jobs = append(s.Jobs, job)
}

func (s *JobScheduler) Run(ctx context.Context) {
	slog.Info("Scheduler running", "scheduler", s.Name)
	defer s.Ticker.Stop()

	for {
		select {
		case <-s.Ticker.C:
			s.runJobs(ctx)
		case <-ctx.Done():
			slog.Info("Scheduler shutting down", "scheduler", s.Name)
			return
		}
	}
}

func (s *JobScheduler) runJobs(ctx context.Context) {
	s.mu.RLock()
	jobs := make([]Job, len(s.Jobs))
	copy(jobs, s.Jobs)
	s.mu.RUnlock()

	for _, job := range jobs {
		jobCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		job.Run(jobCtx)
		cancel()
		slog.Debug("Scheduled job completed", "scheduler", s.Name, "job", job.Name)
	}
}
