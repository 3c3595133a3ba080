package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/textpesa/smsrelay/internal/apperrors"
	"github.com/textpesa/smsrelay/internal/clock"
	"github.com/textpesa/smsrelay/internal/compliance"
	"github.com/textpesa/smsrelay/internal/config"
	"github.com/textpesa/smsrelay/internal/gateway"
	"github.com/textpesa/smsrelay/internal/models"
	"github.com/textpesa/smsrelay/internal/preflight"
	"github.com/textpesa/smsrelay/internal/repository"
)

type bulkDispatcher struct {
	cfg       *config.Config
	repo      repository.Repository
	transport gateway.Transport
	filter    compliance.Filter
	checker   *preflight.Checker
	clk       clock.Clock
	logger    *zap.Logger
}

// NewBulkDispatcher builds the chunked bulk dispatcher.
func NewBulkDispatcher(
	cfg *config.Config,
	repo repository.Repository,
	transport gateway.Transport,
	filter compliance.Filter,
	checker *preflight.Checker,
	clk clock.Clock,
	logger *zap.Logger,
) BulkService {
	return &bulkDispatcher{
		cfg:       cfg,
		repo:      repo,
		transport: transport,
		filter:    filter,
		checker:   checker,
		clk:       clk,
		logger:    logger,
	}
}

// variantKeys returns variant ids in a stable order so assignment is a
// pure function of recipient index and key count.
func variantKeys(variants map[string]string) []string {
	keys := make([]string, 0, len(variants))
	for k := range variants {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (d *bulkDispatcher) validateBulk(req *BulkRequest) error {
	if len(req.Recipients) == 0 {
		return fmt.Errorf("%w: no recipients", apperrors.ErrInvalidInput)
	}

	if len(req.Variants) > 0 {
		for variantID, body := range req.Variants {
			if err := validateSend(req.Recipients[0], body); err != nil {
				return fmt.Errorf("variant %s: %w", variantID, err)
			}
		}
	} else if err := validateSend(req.Recipients[0], req.Body); err != nil {
		return err
	}

	if req.ChunkSize <= 0 {
		req.ChunkSize = d.cfg.Dispatch.ChunkSize
	}
	if req.ChunkDelay <= 0 {
		req.ChunkDelay = d.cfg.Dispatch.ChunkDelay()
	}
	return nil
}

// prepare runs compliance partitioning, variant assignment and the
// transactional write-ahead insert. Blocked recipients are counted as
// failed up front without consuming a transport attempt.
func (d *bulkDispatcher) prepare(ctx context.Context, req *BulkRequest, result *BulkResult) ([]*models.Message, error) {
	partition, err := d.filter.FilterRecipients(ctx, req.Recipients)
	if err != nil {
		result.Failed = len(req.Recipients)
		return nil, fmt.Errorf("compliance filter failed: %w", err)
	}

	result.Failed += len(partition.Blocked)
	if req.CampaignID != "" {
		for range partition.Blocked {
			if err := d.repo.Campaign().IncrementFailed(req.CampaignID); err != nil {
				d.logger.Error("Failed to increment campaign failed count", zap.Error(err))
			}
		}
	}

	keys := variantKeys(req.Variants)
	msgs := make([]*models.Message, len(partition.Allowed))
	for i, recipient := range partition.Allowed {
		body := req.Body
		var variantID string
		if len(keys) > 0 {
			variantID = keys[i%len(keys)]
			body = req.Variants[variantID]
		}

		msgs[i] = &models.Message{
			Recipient:  recipient,
			Body:       body,
			SimSlot:    req.SimSlot,
			CampaignID: models.NullString(req.CampaignID),
			VariantID:  models.NullString(variantID),
		}
	}

	// Write-ahead: every allowed message must exist as pending before
	// any transport attempt. Partial pre-logging is a fatal
	// precondition, so a failure fails the whole batch.
	if err := d.repo.Message().CreateBatch(msgs); err != nil {
		result.Failed = len(req.Recipients)
		return nil, fmt.Errorf("bulk pre-logging failed: %w", err)
	}

	return msgs, nil
}

// sendOne resolves one pre-logged message and updates counters under mu.
func (d *bulkDispatcher) sendOne(ctx context.Context, msg *models.Message, campaignID string, mu *sync.Mutex, sent, failed *int) {
	err := d.transport.Send(ctx, gateway.Request{
		Recipient: msg.Recipient,
		Body:      msg.Body,
		SimSlot:   msg.SimSlot,
	})

	if err != nil {
		errMsg := err.Error()
		if updateErr := d.repo.Message().UpdateStatus(msg.ID, models.MessageStatusFailed, &errMsg); updateErr != nil {
			d.logger.Error("Failed to update message status",
				zap.Int64("messageID", msg.ID),
				zap.Error(updateErr))
		}
		if campaignID != "" {
			if incErr := d.repo.Campaign().IncrementFailed(campaignID); incErr != nil {
				d.logger.Error("Failed to increment campaign failed count", zap.Error(incErr))
			}
		}

		mu.Lock()
		*failed++
		mu.Unlock()
		return
	}

	if updateErr := d.repo.Message().UpdateStatus(msg.ID, models.MessageStatusSent, nil); updateErr != nil {
		d.logger.Error("Failed to update message status",
			zap.Int64("messageID", msg.ID),
			zap.Error(updateErr))
	}
	if campaignID != "" {
		if incErr := d.repo.Campaign().IncrementSent(campaignID); incErr != nil {
			d.logger.Error("Failed to increment campaign sent count", zap.Error(incErr))
		}
	}

	mu.Lock()
	*sent++
	mu.Unlock()
}

// SendBulk dispatches a batch in sequential chunks. Within a chunk all
// messages are in flight concurrently; between chunks the dispatcher
// sleeps to respect carrier throttling. Cancellation only prevents
// future chunks: a dispatched chunk always resolves every message.
func (d *bulkDispatcher) SendBulk(ctx context.Context, req BulkRequest) (BulkResult, error) {
	result := BulkResult{BulkID: uuid.New().String()}

	if err := d.validateBulk(&req); err != nil {
		return result, err
	}

	if len(req.Recipients) < d.cfg.Dispatch.FastPathThreshold && req.Progress == nil {
		return d.sendAllAtOnce(ctx, req, result)
	}

	if err := d.checker.Require(ctx, len(req.Recipients)); err != nil {
		return result, err
	}

	msgs, err := d.prepare(ctx, &req, &result)
	if err != nil {
		return result, err
	}

	total := len(req.Recipients)
	totalChunks := (len(msgs) + req.ChunkSize - 1) / req.ChunkSize

	var (
		mu           sync.Mutex
		sent, failed int
	)
	failed = result.Failed // blocked recipients already counted

	d.logger.Info("Starting bulk dispatch",
		zap.String("bulkID", result.BulkID),
		zap.Int("recipients", total),
		zap.Int("chunks", totalChunks),
		zap.Int("chunkSize", req.ChunkSize))

	for chunkIdx := 0; chunkIdx < totalChunks; chunkIdx++ {
		start := chunkIdx * req.ChunkSize
		end := start + req.ChunkSize
		if end > len(msgs) {
			end = len(msgs)
		}
		chunk := msgs[start:end]

		var wg sync.WaitGroup
		for _, msg := range chunk {
			wg.Add(1)
			go func(m *models.Message) {
				defer wg.Done()
				d.sendOne(ctx, m, req.CampaignID, &mu, &sent, &failed)
			}(msg)
		}
		wg.Wait()

		if req.Progress != nil {
			mu.Lock()
			progress := Progress{
				Sent:         sent,
				Failed:       failed,
				Total:        total,
				CurrentChunk: chunkIdx + 1,
				TotalChunks:  totalChunks,
				Percentage:   float64(sent+failed) / float64(total) * 100,
			}
			mu.Unlock()
			req.Progress(progress)
		}

		if chunkIdx < totalChunks-1 {
			if err := d.clk.Sleep(ctx, req.ChunkDelay); err != nil {
				// Cancelled between chunks: the remaining pre-logged
				// rows stay pending for reconciliation, but they still
				// have to show up in the caller's tally.
				mu.Lock()
				failed += len(msgs) - end
				result.Successful = sent
				result.Failed = failed
				mu.Unlock()
				return result, err
			}
		}
	}

	mu.Lock()
	result.Successful = sent
	result.Failed = failed
	mu.Unlock()

	d.logger.Info("Bulk dispatch complete",
		zap.String("bulkID", result.BulkID),
		zap.Int("successful", result.Successful),
		zap.Int("failed", result.Failed))

	return result, nil
}

// SendBulkFast is the small-batch path: no chunk bookkeeping, no
// progress reporting, every send in flight at once. Blocked-recipient
// accounting is identical to the chunked path.
func (d *bulkDispatcher) SendBulkFast(ctx context.Context, req BulkRequest) (BulkResult, error) {
	result := BulkResult{BulkID: uuid.New().String()}

	if err := d.validateBulk(&req); err != nil {
		return result, err
	}

	return d.sendAllAtOnce(ctx, req, result)
}

// GetCampaignStats returns the persisted counters for a campaign.
func (d *bulkDispatcher) GetCampaignStats(campaignID string) (*models.CampaignStats, error) {
	return d.repo.Campaign().Get(campaignID)
}

func (d *bulkDispatcher) sendAllAtOnce(ctx context.Context, req BulkRequest, result BulkResult) (BulkResult, error) {
	if err := d.checker.Require(ctx, len(req.Recipients)); err != nil {
		return result, err
	}

	msgs, err := d.prepare(ctx, &req, &result)
	if err != nil {
		return result, err
	}

	var (
		mu           sync.Mutex
		sent, failed int
	)
	failed = result.Failed

	var wg sync.WaitGroup
	for _, msg := range msgs {
		wg.Add(1)
		go func(m *models.Message) {
			defer wg.Done()
			d.sendOne(ctx, m, req.CampaignID, &mu, &sent, &failed)
		}(msg)
	}
	wg.Wait()

	mu.Lock()
	result.Successful = sent
	result.Failed = failed
	mu.Unlock()

	return result, nil
}
