// Package scheduler runs the periodic assessment jobs: closing assessments
// whose end date has passed and announcing the ones about to close.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"psicomapa-backend/internal/logger"
	"psicomapa-backend/internal/observability"
	"psicomapa-backend/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Job names used in logs and metrics
const (
	JobCloseExpired    = "close_expired"
	JobClosingReminder = "closing_reminder"
)

// DefaultReminderWindow is how far ahead the closing reminder looks
const DefaultReminderWindow = 48 * time.Hour

const jobTimeout = 5 * time.Minute

// Config holds the cron expressions of each job (standard five field syntax)
type Config struct {
	CloseExpired    string
	ClosingReminder string
	ReminderWindow  time.Duration
}

// Scheduler owns the cron runner
type Scheduler struct {
	cron    *cron.Cron
	jobs    service.AssessmentJobsInterface
	metrics *observability.Metrics
	window  time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
	last   map[string]time.Time
}

// New parses the schedules and registers the jobs. Nothing runs until Start.
// An empty expression disables that job.
func New(jobs service.AssessmentJobsInterface, metrics *observability.Metrics, cfg Config) (*Scheduler, error) {
	cronLogger := cron.PrintfLogger(logrus.StandardLogger())
	ctx, cancel := context.WithCancel(context.Background())

	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		jobs:    jobs,
		metrics: metrics,
		window:  cfg.ReminderWindow,
		ctx:     ctx,
		cancel:  cancel,
		last:    map[string]time.Time{},
	}
	if s.window <= 0 {
		s.window = DefaultReminderWindow
	}

	entries := []struct {
		name string
		spec string
		run  func(context.Context) (int, error)
	}{
		{JobCloseExpired, cfg.CloseExpired, s.jobs.CloseExpired},
		{JobClosingReminder, cfg.ClosingReminder, func(ctx context.Context) (int, error) {
			return s.jobs.NotifyClosingSoon(ctx, s.window)
		}},
	}
	for _, e := range entries {
		if e.spec == "" {
			continue
		}
		if _, err := s.cron.AddFunc(e.spec, func() { s.Run(e.name, e.run) }); err != nil {
			cancel()
			return nil, fmt.Errorf("invalid schedule %q for job %s: %w", e.spec, e.name, err)
		}
	}
	return s, nil
}

// Start launches the cron runner in its own goroutine
func (s *Scheduler) Start() {
	logger.New().WithField("jobs", len(s.cron.Entries())).Info("Scheduler started")
	s.cron.Start()
}

// Stop cancels running jobs and waits for them to return or ctx to expire
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop().Done()
	select {
	case <-done:
		logger.New().Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run executes one job with a timeout, logging and counting the outcome
func (s *Scheduler) Run(name string, job func(context.Context) (int, error)) {
	ctx, cancel := context.WithTimeout(s.ctx, jobTimeout)
	defer cancel()

	log := logger.WithContext(ctx).WithField("job", name)
	start := time.Now()

	affected, err := job(ctx)
	if err != nil {
		s.metrics.RecordSchedulerRun(name, "error")
		log.WithError(err).Error("Scheduled job failed")
		return
	}

	s.mu.Lock()
	s.last[name] = start
	s.mu.Unlock()

	s.metrics.RecordSchedulerRun(name, "success")
	log.WithFields(map[string]interface{}{
		"affected":    affected,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Scheduled job finished")
}

// LastSuccess reports when a job last completed without error
func (s *Scheduler) LastSuccess(name string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.last[name]
	return t, ok
}
