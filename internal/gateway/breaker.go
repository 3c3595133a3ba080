package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/textpesa/smsrelay/internal/config"
)

// Breaker wraps gobreaker around gateway calls so a flapping device
// does not absorb every dispatch attempt.
type Breaker struct {
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger
}

func NewBreaker(cfg *config.CircuitBreakerConfig, logger *zap.Logger) *Breaker {
	settings := gobreaker.Settings{
		Name:        "gateway-circuit-breaker",
		MaxRequests: cfg.MaxRequests,
		Interval:    time.Duration(cfg.Interval) * time.Second,
		Timeout:     time.Duration(cfg.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.ConsecutiveFails && failureRatio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			// A rejection is a carrier-side verdict, not a device
			// fault; it must not trip the breaker.
			return err == nil || errors.Is(err, ErrRejected)
		},
	}

	return &Breaker{
		cb:     gobreaker.NewCircuitBreaker(settings),
		logger: logger,
	}
}

// Execute runs the given function through the circuit breaker.
func (b *Breaker) Execute(ctx context.Context, fn func() error) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			return nil, fn()
		}
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			b.logger.Warn("Circuit breaker is open, request blocked")
			return fmt.Errorf("gateway unavailable: circuit breaker is open")
		}
		if errors.Is(err, gobreaker.ErrTooManyRequests) {
			b.logger.Warn("Circuit breaker: too many requests")
			return fmt.Errorf("gateway unavailable: too many requests")
		}
		return err
	}

	return nil
}

// State returns the current breaker state.
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

// Counts returns the current request and failure counts.
func (b *Breaker) Counts() (requests, failures uint32) {
	counts := b.cb.Counts()
	return counts.Requests, counts.TotalFailures
}
