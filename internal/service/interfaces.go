package service

import (
	"context"
	"time"

	"github.com/textpesa/smsrelay/internal/models"
)

// MessageService is the single-send path.
type MessageService interface {
	SendMessage(ctx context.Context, recipient, body string, simSlot int) SendResult
	GetSentMessages(page, limit int) (*MessageListResult, error)
}

// BulkService orchestrates chunked bulk dispatch.
type BulkService interface {
	SendBulk(ctx context.Context, req BulkRequest) (BulkResult, error)
	SendBulkFast(ctx context.Context, req BulkRequest) (BulkResult, error)
	GetCampaignStats(campaignID string) (*models.CampaignStats, error)
}

// RetryService sweeps the durable retry queue.
type RetryService interface {
	ProcessQueue(ctx context.Context) (RetryResult, error)
}

// ReconciliationService resolves long-stuck pending/sent rows.
// A positive thresholdOverride bypasses carrier detection.
type ReconciliationService interface {
	Run(ctx context.Context, thresholdOverride time.Duration) (ReconciliationResult, error)
}

// SchedulerService manages future-dated sends.
type SchedulerService interface {
	ScheduleMessage(ctx context.Context, recipient, body string, simSlot int, scheduledAt time.Time) (int64, error)
	CancelMessage(id int64) (bool, error)
	ProcessDueMessages(ctx context.Context) (int, error)
}

// HealthService reports dependency health.
type HealthService interface {
	GetHealth() *HealthStatus
}
