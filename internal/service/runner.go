package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/textpesa/smsrelay/internal/config"
	"github.com/textpesa/smsrelay/internal/scheduler"
)

// Runner owns the recurring background sweeps: retry queue processing,
// reconciliation and due-message promotion. Each is an interval task
// with its own cancel handle so lifecycle is testable deterministically.
type Runner struct {
	retry          *scheduler.Scheduler
	reconciliation *scheduler.Scheduler
	promotion      *scheduler.Scheduler
	logger         *zap.Logger
}

func NewRunner(
	cfg *config.Config,
	retrySvc RetryService,
	reconciliationSvc ReconciliationService,
	schedulerSvc SchedulerService,
	logger *zap.Logger,
) *Runner {
	r := &Runner{logger: logger}

	r.retry = scheduler.NewScheduler("retry-queue", logger,
		time.Duration(cfg.Retry.IntervalMinutes)*time.Minute,
		func(ctx context.Context) error {
			_, err := retrySvc.ProcessQueue(ctx)
			return err
		})

	r.reconciliation = scheduler.NewScheduler("reconciliation", logger,
		time.Duration(cfg.Reconciliation.IntervalMinutes)*time.Minute,
		func(ctx context.Context) error {
			_, err := reconciliationSvc.Run(ctx, 0)
			return err
		})

	r.promotion = scheduler.NewScheduler("scheduled-promotion", logger,
		time.Duration(cfg.Scheduler.IntervalMinutes)*time.Minute,
		func(ctx context.Context) error {
			_, err := schedulerSvc.ProcessDueMessages(ctx)
			return err
		})

	return r
}

// Start launches all sweeps. Each fires once immediately, which gives
// the reconciliation engine its run-at-startup behavior.
func (r *Runner) Start(ctx context.Context) error {
	for _, s := range r.all() {
		if err := s.Start(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Stop halts all sweeps, collecting errors from those still running.
func (r *Runner) Stop() error {
	var errs []error
	for _, s := range r.all() {
		if !s.IsRunning() {
			continue
		}
		if err := s.Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Status reports which sweeps are running, keyed by task name.
func (r *Runner) Status() map[string]bool {
	return map[string]bool{
		"retry-queue":         r.retry.IsRunning(),
		"reconciliation":      r.reconciliation.IsRunning(),
		"scheduled-promotion": r.promotion.IsRunning(),
	}
}

func (r *Runner) all() []*scheduler.Scheduler {
	return []*scheduler.Scheduler{r.retry, r.reconciliation, r.promotion}
}
