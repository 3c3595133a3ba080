package service_test

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/textpesa/smsrelay/internal/compliance"
	"github.com/textpesa/smsrelay/internal/config"
	"github.com/textpesa/smsrelay/internal/gateway"
	"github.com/textpesa/smsrelay/internal/preflight"
)

// fakeTransport records every submission and fails the ones failFor
// selects. Safe for concurrent use since chunk sends run in parallel.
type fakeTransport struct {
	mu      sync.Mutex
	calls   []gateway.Request
	failFor func(req gateway.Request) error
}

func (f *fakeTransport) Send(_ context.Context, req gateway.Request) error {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	f.mu.Unlock()

	if f.failFor != nil {
		return f.failFor(req)
	}
	return nil
}

func (f *fakeTransport) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeTransport) Recipients() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.Recipient
	}
	return out
}

// fakeFilter blocks the configured recipients and allows everyone else.
type fakeFilter struct {
	blocked map[string]bool
	err     error
}

func (f *fakeFilter) FilterRecipients(_ context.Context, recipients []string) (compliance.Partition, error) {
	if f.err != nil {
		return compliance.Partition{}, f.err
	}

	var p compliance.Partition
	for _, r := range recipients {
		if f.blocked[r] {
			p.Blocked = append(p.Blocked, r)
		} else {
			p.Allowed = append(p.Allowed, r)
		}
	}
	return p, nil
}

// fakeClock returns a fixed now and records sleeps instead of blocking.
type fakeClock struct {
	mu       sync.Mutex
	now      time.Time
	sleeps   []time.Duration
	sleepErr error
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(_ context.Context, d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	return c.sleepErr
}

func (c *fakeClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, len(c.sleeps))
	copy(out, c.sleeps)
	return out
}

// stubDevice answers all three preflight probes from fixed values.
type stubDevice struct {
	connected bool
	connType  string
	connErr   error
	isDefault bool
	battery   int
}

func (d *stubDevice) Connectivity(context.Context) (gateway.ConnectivityStatus, error) {
	if d.connErr != nil {
		return gateway.ConnectivityStatus{}, d.connErr
	}
	return gateway.ConnectivityStatus{Type: d.connType, Connected: d.connected}, nil
}

func (d *stubDevice) IsDefaultSender(context.Context) (bool, error) {
	return d.isDefault, nil
}

func (d *stubDevice) BatteryLevel(context.Context) (int, error) {
	return d.battery, nil
}

func healthyDevice() *stubDevice {
	return &stubDevice{connected: true, connType: "wifi", isDefault: true, battery: 80}
}

func testConfig() *config.Config {
	return &config.Config{
		Dispatch: config.DispatchConfig{
			ChunkSize:         50,
			ChunkDelayMs:      1000,
			FastPathThreshold: 20,
		},
		Retry: config.RetryConfig{
			MaxRetries:          3,
			BaseBackoffMs:       2000,
			MaxBackoffMs:        30000,
			InterMessageDelayMs: 1000,
			IntervalMinutes:     5,
		},
		Reconciliation: config.ReconciliationConfig{
			IntervalMinutes:       60,
			DefaultThresholdHours: 3,
		},
		Preflight: config.PreflightConfig{
			RoleWarnBatchSize:     20,
			LargeBatchWarnSize:    500,
			CellularWarnBatchSize: 100,
			BatteryWarnPercent:    20,
			BatteryBlockPercent:   5,
		},
		Scheduler: config.SchedulerConfig{
			IntervalMinutes: 1,
			BatchSize:       100,
		},
	}
}

func testChecker(cfg *config.Config, dev *stubDevice) *preflight.Checker {
	return preflight.NewChecker(&cfg.Preflight, dev, dev, dev, zap.NewNop())
}
