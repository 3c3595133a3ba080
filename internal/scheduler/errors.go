// Package scheduler provides the interval runner behind the recurring
// background sweeps.
package scheduler

import "errors"

var (
	ErrSchedulerAlreadyRunning = errors.New("scheduler is already running")
	ErrSchedulerNotRunning     = errors.New("scheduler is not running")
)
