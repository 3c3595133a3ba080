package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/textpesa/smsrelay/internal/carrier"
	"github.com/textpesa/smsrelay/internal/clock"
	"github.com/textpesa/smsrelay/internal/repository"
)

type reconciliationService struct {
	repo       repository.Repository
	detector   carrier.Detector
	thresholds *carrier.Thresholds
	clk        clock.Clock
	logger     *zap.Logger
}

// NewReconciliationService builds the stale-message sweep. It only ever
// moves pending and sent rows to unknown: with no independent delivery
// confirmation channel, "unknown" is the only honest resolution.
func NewReconciliationService(
	repo repository.Repository,
	detector carrier.Detector,
	thresholds *carrier.Thresholds,
	clk clock.Clock,
	logger *zap.Logger,
) ReconciliationService {
	return &reconciliationService{
		repo:       repo,
		detector:   detector,
		thresholds: thresholds,
		clk:        clk,
		logger:     logger,
	}
}

// Run selects the staleness window for the current carrier (or uses
// thresholdOverride when positive) and resolves every pending or sent
// row older than the window to unknown.
func (s *reconciliationService) Run(ctx context.Context, thresholdOverride time.Duration) (ReconciliationResult, error) {
	result := ReconciliationResult{}

	if thresholdOverride > 0 {
		result.Threshold = thresholdOverride
	} else {
		carrierName, err := s.detector.Detect(ctx)
		if err != nil {
			// An undetectable carrier gets the default window rather
			// than aborting the sweep.
			s.logger.Warn("Carrier detection failed, using default threshold", zap.Error(err))
			carrierName = ""
		}
		result.Carrier = carrierName
		result.Threshold = s.thresholds.Lookup(carrierName)
	}

	cutoff := s.clk.Now().Add(-result.Threshold)

	resolved, err := s.repo.Message().MarkUnknownOlderThan(cutoff)
	if err != nil {
		return result, err
	}

	result.Reconciled = len(resolved)
	result.Details = resolved

	if result.Reconciled > 0 {
		s.logger.Info("Reconciled stale messages",
			zap.Int("count", result.Reconciled),
			zap.String("carrier", result.Carrier),
			zap.Duration("threshold", result.Threshold))
	}

	return result, nil
}
