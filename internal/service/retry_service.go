package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/textpesa/smsrelay/internal/clock"
	"github.com/textpesa/smsrelay/internal/config"
	"github.com/textpesa/smsrelay/internal/gateway"
	"github.com/textpesa/smsrelay/internal/repository"
)

const retrySweepBatchSize = 100

type retryService struct {
	cfg       *config.RetryConfig
	repo      repository.Repository
	transport gateway.Transport
	clk       clock.Clock
	logger    *zap.Logger
}

// NewRetryService builds the background retry queue processor.
func NewRetryService(
	cfg *config.RetryConfig,
	repo repository.Repository,
	transport gateway.Transport,
	clk clock.Clock,
	logger *zap.Logger,
) RetryService {
	return &retryService{
		cfg:       cfg,
		repo:      repo,
		transport: transport,
		clk:       clk,
		logger:    logger,
	}
}

// backoffFor computes the delay before attempting an entry that has
// already failed retryCount times: exponential from the base delay,
// doubling per attempt, capped at the configured maximum.
func (s *retryService) backoffFor(retryCount int) time.Duration {
	if retryCount <= 0 {
		return 0
	}

	backoff := s.cfg.BaseBackoff()
	maxBackoff := s.cfg.MaxBackoff()
	for i := 1; i < retryCount; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	if backoff > maxBackoff {
		return maxBackoff
	}
	return backoff
}

// ProcessQueue sweeps the retry queue in original order. Entries at the
// retry limit are skipped without a transport call; everything else is
// attempted once with backoff. Successes are pruned, failures marked in
// place for the next sweep. Safe to run overlapping: pruning an
// already-removed row is a no-op and is not counted twice.
func (s *retryService) ProcessQueue(ctx context.Context) (RetryResult, error) {
	var result RetryResult

	entries, err := s.repo.Queue().List(retrySweepBatchSize)
	if err != nil {
		return result, err
	}

	if len(entries) == 0 {
		return result, nil
	}

	s.logger.Info("Processing retry queue", zap.Int("entries", len(entries)))

	for i, entry := range entries {
		// Fixed spacing between consecutive entries, independent of
		// backoff, to avoid carrier blocking from burst sending.
		if i > 0 {
			if err := s.clk.Sleep(ctx, s.cfg.InterMessageDelay()); err != nil {
				return result, err
			}
		}

		if entry.RetryCount >= s.cfg.MaxRetries {
			result.Skipped++
			s.logger.Warn("Skipping entry at retry limit",
				zap.Int64("entryID", entry.ID),
				zap.Int("retryCount", entry.RetryCount))
			continue
		}

		if backoff := s.backoffFor(entry.RetryCount); backoff > 0 {
			if err := s.clk.Sleep(ctx, backoff); err != nil {
				return result, err
			}
		}

		result.Attempted++
		sendErr := s.transport.Send(ctx, gateway.Request{
			Recipient: entry.Recipient,
			Body:      entry.Body,
			SimSlot:   entry.SimSlot,
		})

		if sendErr != nil {
			result.Failed++
			if incErr := s.repo.Queue().IncrementRetry(entry.ID, sendErr.Error()); incErr != nil {
				s.logger.Error("Failed to mark queue entry",
					zap.Int64("entryID", entry.ID),
					zap.Error(incErr))
			}
			continue
		}

		removed, delErr := s.repo.Queue().Delete(entry.ID)
		if delErr != nil {
			s.logger.Error("Failed to prune queue entry",
				zap.Int64("entryID", entry.ID),
				zap.Error(delErr))
			continue
		}
		if removed {
			result.Succeeded++
		}
	}

	s.logger.Info("Retry queue sweep complete",
		zap.Int("attempted", result.Attempted),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed),
		zap.Int("skipped", result.Skipped))

	return result, nil
}
