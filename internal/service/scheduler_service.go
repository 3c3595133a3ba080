package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/textpesa/smsrelay/internal/clock"
	"github.com/textpesa/smsrelay/internal/config"
	"github.com/textpesa/smsrelay/internal/models"
	"github.com/textpesa/smsrelay/internal/repository"
)

type schedulerService struct {
	cfg            *config.SchedulerConfig
	repo           repository.Repository
	messageService MessageService
	clk            clock.Clock
	logger         *zap.Logger
}

// NewSchedulerService builds the future-dated send manager. Due rows
// are dispatched through the same single-send path as everything else.
func NewSchedulerService(
	cfg *config.SchedulerConfig,
	repo repository.Repository,
	messageService MessageService,
	clk clock.Clock,
	logger *zap.Logger,
) SchedulerService {
	return &schedulerService{
		cfg:            cfg,
		repo:           repo,
		messageService: messageService,
		clk:            clk,
		logger:         logger,
	}
}

// ScheduleMessage stores a future-dated message. Input is validated the
// same way as an immediate send so bad rows never reach the store.
func (s *schedulerService) ScheduleMessage(ctx context.Context, recipient, body string, simSlot int, scheduledAt time.Time) (int64, error) {
	if err := validateSend(recipient, body); err != nil {
		return 0, err
	}

	id, err := s.repo.Scheduled().Create(recipient, body, simSlot, scheduledAt)
	if err != nil {
		return 0, fmt.Errorf("failed to schedule message: %w", err)
	}

	s.logger.Info("Message scheduled",
		zap.Int64("scheduledID", id),
		zap.Time("scheduledAt", scheduledAt))

	return id, nil
}

// CancelMessage cancels a pending scheduled message. Cancellation is a
// pure status write; no transport side effect is possible.
func (s *schedulerService) CancelMessage(id int64) (bool, error) {
	cancelled, err := s.repo.Scheduled().Cancel(id)
	if err != nil {
		return false, err
	}

	if cancelled {
		s.logger.Info("Scheduled message cancelled", zap.Int64("scheduledID", id))
	}

	return cancelled, nil
}

// ProcessDueMessages promotes every due pending row through the
// single-send path and writes the resulting terminal status back.
func (s *schedulerService) ProcessDueMessages(ctx context.Context) (int, error) {
	due, err := s.repo.Scheduled().ListDue(s.clk.Now(), s.cfg.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list due messages: %w", err)
	}

	if len(due) == 0 {
		return 0, nil
	}

	s.logger.Info("Processing due scheduled messages", zap.Int("count", len(due)))

	processed := 0
	for _, row := range due {
		sendResult := s.messageService.SendMessage(ctx, row.Recipient, row.Body, row.SimSlot)

		status := models.ScheduledStatusFailed
		if sendResult.Success {
			status = models.ScheduledStatusSent
		}

		if err := s.repo.Scheduled().UpdateStatus(row.ID, status); err != nil {
			s.logger.Error("Failed to update scheduled message status",
				zap.Int64("scheduledID", row.ID),
				zap.Error(err))
			continue
		}

		processed++
	}

	return processed, nil
}
