// Package preflight runs the read-only safety checks gating bulk sends.
package preflight

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/textpesa/smsrelay/internal/apperrors"
	"github.com/textpesa/smsrelay/internal/config"
	"github.com/textpesa/smsrelay/internal/gateway"
)

// ConnectivityProbe reads the device's network state.
type ConnectivityProbe interface {
	Connectivity(ctx context.Context) (gateway.ConnectivityStatus, error)
}

// RoleProbe reports whether the gateway holds the default sender role.
type RoleProbe interface {
	IsDefaultSender(ctx context.Context) (bool, error)
}

// BatteryProbe reads the device battery percentage.
type BatteryProbe interface {
	BatteryLevel(ctx context.Context) (int, error)
}

// Result classifies findings. Errors block the operation; warnings are
// surfaced to the caller but do not block.
type Result struct {
	CanProceed bool     `json:"can_proceed"`
	Errors     []string `json:"errors"`
	Warnings   []string `json:"warnings"`
}

// Checker collects device state in parallel and classifies it for an
// intended batch size.
type Checker struct {
	cfg          *config.PreflightConfig
	connectivity ConnectivityProbe
	role         RoleProbe
	battery      BatteryProbe
	logger       *zap.Logger
}

// NewChecker builds a checker. battery may be nil; the battery check is
// optional.
func NewChecker(
	cfg *config.PreflightConfig,
	connectivity ConnectivityProbe,
	role RoleProbe,
	battery BatteryProbe,
	logger *zap.Logger,
) *Checker {
	return &Checker{
		cfg:          cfg,
		connectivity: connectivity,
		role:         role,
		battery:      battery,
		logger:       logger,
	}
}

// Check probes connectivity, sender role and battery concurrently and
// classifies the findings for a batch of recipientCount messages.
func (c *Checker) Check(ctx context.Context, recipientCount int) Result {
	var (
		wg sync.WaitGroup

		connStatus gateway.ConnectivityStatus
		connErr    error

		isDefault bool
		roleErr   error

		batteryLevel int
		batteryErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		connStatus, connErr = c.connectivity.Connectivity(ctx)
	}()
	go func() {
		defer wg.Done()
		isDefault, roleErr = c.role.IsDefaultSender(ctx)
	}()

	if c.battery != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			batteryLevel, batteryErr = c.battery.BatteryLevel(ctx)
		}()
	}

	wg.Wait()

	result := Result{}

	switch {
	case connErr != nil:
		result.Errors = append(result.Errors, fmt.Sprintf("unable to determine connectivity: %v", connErr))
	case !connStatus.Connected:
		result.Errors = append(result.Errors, "no network connectivity")
	case strings.EqualFold(connStatus.Type, "cellular") && recipientCount > c.cfg.CellularWarnBatchSize:
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("sending %d messages over a cellular connection", recipientCount))
	}

	switch {
	case roleErr != nil:
		result.Warnings = append(result.Warnings, fmt.Sprintf("unable to determine sender role: %v", roleErr))
	case !isDefault && recipientCount > c.cfg.RoleWarnBatchSize:
		result.Warnings = append(result.Warnings, "gateway is not the default sender for a large batch")
	}

	if c.battery != nil {
		switch {
		case batteryErr != nil:
			result.Warnings = append(result.Warnings, fmt.Sprintf("unable to determine battery level: %v", batteryErr))
		case batteryLevel <= c.cfg.BatteryBlockPercent:
			result.Errors = append(result.Errors, fmt.Sprintf("battery critically low: %d%%", batteryLevel))
		case batteryLevel <= c.cfg.BatteryWarnPercent:
			result.Warnings = append(result.Warnings, fmt.Sprintf("battery low: %d%%", batteryLevel))
		}
	}

	if recipientCount > c.cfg.LargeBatchWarnSize {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("batch of %d recipients exceeds %d", recipientCount, c.cfg.LargeBatchWarnSize))
	}

	result.CanProceed = len(result.Errors) == 0
	return result
}

// Require is the strict variant used by automated triggers: it returns
// ErrPreflightBlocked when the checks fail and logs warnings instead of
// blocking on them.
func (c *Checker) Require(ctx context.Context, recipientCount int) error {
	result := c.Check(ctx, recipientCount)

	for _, warning := range result.Warnings {
		c.logger.Warn("Preflight warning", zap.String("warning", warning))
	}

	if !result.CanProceed {
		return fmt.Errorf("%w: %s", apperrors.ErrPreflightBlocked, strings.Join(result.Errors, "; "))
	}

	return nil
}
