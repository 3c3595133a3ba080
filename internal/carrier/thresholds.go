// Package carrier maps detected network operators to the staleness
// windows used by the reconciliation sweep.
package carrier

import (
	"context"
	"strings"
	"time"
)

// Detector reports the identity of the carrier currently serving the
// sending device. Implementations live at the gateway boundary.
type Detector interface {
	Detect(ctx context.Context) (string, error)
}

// Thresholds selects a staleness window per carrier. Carriers known to
// deliver confirmations slowly get longer windows; an unrecognized
// carrier gets the default, which must be the shortest configured window.
type Thresholds struct {
	byCarrier     map[string]time.Duration
	defaultWindow time.Duration
}

// NewThresholds builds a lookup table. Keys are matched
// case-insensitively.
func NewThresholds(byCarrier map[string]time.Duration, defaultWindow time.Duration) *Thresholds {
	normalized := make(map[string]time.Duration, len(byCarrier))
	for name, window := range byCarrier {
		normalized[strings.ToLower(name)] = window
	}

	return &Thresholds{
		byCarrier:     normalized,
		defaultWindow: defaultWindow,
	}
}

// Lookup returns the staleness window for the given carrier, falling
// back to the default window for unrecognized or empty identities.
func (t *Thresholds) Lookup(carrierName string) time.Duration {
	if window, ok := t.byCarrier[strings.ToLower(carrierName)]; ok {
		return window
	}
	return t.defaultWindow
}

// Default returns the fallback window.
func (t *Thresholds) Default() time.Duration {
	return t.defaultWindow
}
