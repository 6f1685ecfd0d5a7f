// Package scheduler provides scheduled job management using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"licenza/internal/shared/logger"
)

// AlertRunner is the slice of the alert service the scheduler needs.
type AlertRunner interface {
	RunAlerts(ctx context.Context) (sent bool, message string, err error)
}

// AlertScheduler triggers periodic alert runs. Runs are idempotent (the
// notification ledger deduplicates), so an overlapping manual trigger is
// harmless, but the job itself is kept singleton to avoid wasted SMTP calls.
type AlertScheduler struct {
	scheduler gocron.Scheduler
	runner    AlertRunner
	logger    logger.Interface

	started   bool
	startedMu sync.Mutex
}

// NewAlertScheduler creates an AlertScheduler with a cron expression, e.g.
// "0 8 * * *" for daily at 08:00.
func NewAlertScheduler(cronExpr string, runner AlertRunner, log logger.Interface) (*AlertScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	s := &AlertScheduler{
		scheduler: scheduler,
		runner:    runner,
		logger:    log,
	}

	_, err = scheduler.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(s.runOnce),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithName("alert-run"),
	)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins executing the schedule.
func (s *AlertScheduler) Start() {
	s.startedMu.Lock()
	defer s.startedMu.Unlock()
	if s.started {
		return
	}
	s.scheduler.Start()
	s.started = true
	s.logger.Infow("alert scheduler started")
}

// Stop shuts the scheduler down, waiting for a running job to finish.
func (s *AlertScheduler) Stop() error {
	s.startedMu.Lock()
	defer s.startedMu.Unlock()
	if !s.started {
		return nil
	}
	s.started = false
	return s.scheduler.Shutdown()
}

func (s *AlertScheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	sent, message, err := s.runner.RunAlerts(ctx)
	if err != nil {
		s.logger.Errorw("scheduled alert run failed", "error", err)
		return
	}
	s.logger.Infow("scheduled alert run finished", "sent", sent, "message", message)
}
