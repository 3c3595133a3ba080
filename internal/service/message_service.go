// Package service provides business logic implementation for the application.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/textpesa/smsrelay/internal/apperrors"
	"github.com/textpesa/smsrelay/internal/compliance"
	"github.com/textpesa/smsrelay/internal/config"
	"github.com/textpesa/smsrelay/internal/gateway"
	"github.com/textpesa/smsrelay/internal/models"
	"github.com/textpesa/smsrelay/internal/repository"
)

type messageService struct {
	cfg         *config.Config
	repo        repository.Repository
	transport   gateway.Transport
	filter      compliance.Filter
	redisClient *redis.Client
	logger      *zap.Logger
}

func NewMessageService(
	cfg *config.Config,
	repo repository.Repository,
	transport gateway.Transport,
	filter compliance.Filter,
	redisClient *redis.Client,
	logger *zap.Logger,
) MessageService {
	return &messageService{
		cfg:         cfg,
		repo:        repo,
		transport:   transport,
		filter:      filter,
		redisClient: redisClient,
		logger:      logger,
	}
}

// validateSend rejects bad input before any persistence or transport
// attempt.
func validateSend(recipient, body string) error {
	if strings.TrimSpace(recipient) == "" {
		return fmt.Errorf("%w: recipient is empty", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("%w: message body is empty", apperrors.ErrInvalidInput)
	}
	if len(body) > models.MaxBodyLength {
		return fmt.Errorf("%w: message body exceeds %d characters", apperrors.ErrInvalidInput, models.MaxBodyLength)
	}
	return nil
}

func failResult(err error) SendResult {
	return SendResult{
		Success:   false,
		Error:     err.Error(),
		ErrorCode: apperrors.Code(err),
	}
}

// SendMessage runs the single-send path: validate, compliance check,
// write-ahead insert as pending, one transport attempt, synchronous
// status write. Transport failures also enqueue a retry entry so the
// background sweep can pick the message up again.
func (s *messageService) SendMessage(ctx context.Context, recipient, body string, simSlot int) SendResult {
	if err := validateSend(recipient, body); err != nil {
		return failResult(err)
	}

	partition, err := s.filter.FilterRecipients(ctx, []string{recipient})
	if err != nil {
		s.logger.Error("Compliance filter failed", zap.Error(err))
		return failResult(fmt.Errorf("compliance check failed: %w", err))
	}
	if len(partition.Blocked) > 0 {
		return failResult(fmt.Errorf("%w: %s", apperrors.ErrComplianceBlocked, recipient))
	}

	msg := &models.Message{
		Recipient: recipient,
		Body:      body,
		SimSlot:   simSlot,
	}

	id, err := s.repo.Message().Create(msg)
	if err != nil {
		s.logger.Error("Failed to pre-log message", zap.Error(err))
		return failResult(fmt.Errorf("failed to persist message: %w", err))
	}

	sendErr := s.transport.Send(ctx, gateway.Request{
		Recipient: recipient,
		Body:      body,
		SimSlot:   simSlot,
	})
	if sendErr != nil {
		errMsg := sendErr.Error()
		if updateErr := s.repo.Message().UpdateStatus(id, models.MessageStatusFailed, &errMsg); updateErr != nil {
			s.logger.Error("Failed to update message status",
				zap.Int64("messageID", id),
				zap.Error(updateErr))
		}

		if enqueueErr := s.repo.Queue().Enqueue(recipient, body, simSlot); enqueueErr != nil {
			s.logger.Error("Failed to enqueue message for retry",
				zap.Int64("messageID", id),
				zap.Error(enqueueErr))
		}

		s.logger.Warn("Message send failed",
			zap.Int64("messageID", id),
			zap.Error(sendErr))

		result := failResult(sendErr)
		result.MessageID = id
		return result
	}

	if err := s.repo.Message().UpdateStatus(id, models.MessageStatusSent, nil); err != nil {
		s.logger.Error("Failed to update message status",
			zap.Int64("messageID", id),
			zap.Error(err))
	}

	s.cacheSend(id, recipient)

	s.logger.Info("Message sent",
		zap.Int64("messageID", id),
		zap.Int("simSlot", simSlot))

	return SendResult{Success: true, MessageID: id}
}

// cacheSend records the send in Redis for quick UI lookups. The store
// row stays authoritative; a cache failure is only logged.
func (s *messageService) cacheSend(id int64, recipient string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cacheKey := fmt.Sprintf("message:%d", id)
	cacheValue := fmt.Sprintf("%s:%s", recipient, time.Now().Format(time.RFC3339))

	if err := s.redisClient.Set(ctx, cacheKey, cacheValue, 24*time.Hour).Err(); err != nil {
		s.logger.Warn("Failed to cache sent message",
			zap.Int64("messageID", id),
			zap.Error(err))
	}
}

// GetSentMessages retrieves sent messages with pagination.
func (s *messageService) GetSentMessages(page, limit int) (*MessageListResult, error) {
	offset := (page - 1) * limit

	messages, err := s.repo.Message().GetSentMessages(offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get sent messages: %w", err)
	}

	totalCount, err := s.repo.Message().GetTotalSentCount()
	if err != nil {
		return nil, fmt.Errorf("failed to get total count: %w", err)
	}

	totalPages := int(totalCount) / limit
	if int(totalCount)%limit > 0 {
		totalPages++
	}

	return &MessageListResult{
		Messages: messages,
		Pagination: Pagination{
			CurrentPage:  page,
			TotalPages:   totalPages,
			TotalItems:   int(totalCount),
			ItemsPerPage: limit,
		},
	}, nil
}
