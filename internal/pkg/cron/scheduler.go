package cron

import (
	"context"
	"log"
	"log/slog"
	"time"

	cronlib "github.com/netresearch/go-cron"
)

// Job is a named unit of scheduled work.
type Job struct {
	Name string
	Spec string
	Fn   func(ctx context.Context) error
}

// Scheduler wraps the cron runner with panic recovery and overlap
// protection for every registered job.
type Scheduler struct {
	runner *cronlib.Cron
	jobs   []Job
}

// NewScheduler creates a scheduler that fires in the given location.
func NewScheduler(location *time.Location) *Scheduler {
	logger := cronlib.PrintfLogger(log.New(
		slog.NewLogLogger(slog.Default().Handler(), slog.LevelWarn).Writer(),
		"cron: ", 0,
	))

	runner := cronlib.New(
		cronlib.WithLocation(location),
		cronlib.WithChain(
			cronlib.Recover(logger),
			cronlib.SkipIfStillRunning(logger),
		),
	)

	return &Scheduler{runner: runner}
}

// AddJob registers fn to run on the cron spec. The job receives a fresh
// background context per run.
func (s *Scheduler) AddJob(name string, spec string, fn func(ctx context.Context) error) error {
	job := Job{Name: name, Spec: spec, Fn: fn}

	_, err := s.runner.AddFunc(spec, func() {
		s.executeJob(context.Background(), job)
	})
	if err != nil {
		return err
	}

	s.jobs = append(s.jobs, job)
	slog.Info("Cron job registered", "name", name, "spec", spec)
	return nil
}

func (s *Scheduler) Start() {
	s.runner.Start()
	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop halts scheduling and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	ctx := s.runner.Stop()
	<-ctx.Done()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) executeJob(ctx context.Context, job Job) {
	start := time.Now()
	slog.Debug("Cron job starting", "name", job.Name)

	if err := job.Fn(ctx); err != nil {
		slog.Error("Cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
	} else {
		slog.Debug("Cron job completed", "name", job.Name, "duration", time.Since(start))
	}
}

// RunOnce runs all registered jobs immediately, outside their schedule.
func (s *Scheduler) RunOnce(ctx context.Context) {
	for _, job := range s.jobs {
		s.executeJob(ctx, job)
	}
}
