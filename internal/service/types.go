package service

import (
	"time"

	"github.com/textpesa/smsrelay/internal/models"
	"github.com/textpesa/smsrelay/internal/repository"
)

// SendResult is the outcome of a single send. Every accepted message
// leaves a store row behind, so MessageID is set even on failure.
type SendResult struct {
	Success   bool   `json:"success"`
	MessageID int64  `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorCode string `json:"error_code,omitempty"`
}

// Progress is handed to the bulk caller after each chunk. Percentage is
// computed over resolved messages, not chunks, so failures still
// advance progress.
type Progress struct {
	Sent         int     `json:"sent"`
	Failed       int     `json:"failed"`
	Total        int     `json:"total"`
	CurrentChunk int     `json:"current_chunk"`
	TotalChunks  int     `json:"total_chunks"`
	Percentage   float64 `json:"percentage"`
}

// ProgressFunc receives progress updates during a bulk send.
type ProgressFunc func(Progress)

// BulkRequest describes one bulk operation.
type BulkRequest struct {
	Recipients []string
	Body       string
	SimSlot    int
	CampaignID string
	// Variants maps variant id to body. When set, recipients are
	// assigned variants round-robin and Body is ignored.
	Variants map[string]string
	// ChunkSize and ChunkDelay override the configured defaults when
	// positive.
	ChunkSize  int
	ChunkDelay time.Duration
	Progress   ProgressFunc
}

// BulkResult reports the aggregate outcome. Successful+Failed always
// equals the original recipient count, blocked recipients included.
type BulkResult struct {
	Successful int    `json:"successful"`
	Failed     int    `json:"failed"`
	BulkID     string `json:"bulk_id"`
}

// RetryResult reports one sweep of the retry queue.
type RetryResult struct {
	Attempted int `json:"attempted"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// ReconciliationResult reports one stale sweep.
type ReconciliationResult struct {
	Reconciled int                          `json:"reconciled"`
	Carrier    string                       `json:"carrier,omitempty"`
	Threshold  time.Duration                `json:"threshold"`
	Details    []repository.StaleResolution `json:"details"`
}

// Pagination mirrors the sent-message listing metadata.
type Pagination struct {
	CurrentPage  int `json:"current_page"`
	TotalPages   int `json:"total_pages"`
	TotalItems   int `json:"total_items"`
	ItemsPerPage int `json:"items_per_page"`
}

// MessageListResult is a page of sent messages.
type MessageListResult struct {
	Messages   []*models.Message `json:"messages"`
	Pagination Pagination        `json:"pagination"`
}

// HealthStatus aggregates dependency health for the health endpoint.
type HealthStatus struct {
	Status              string          `json:"status"`
	DatabaseStatus      string          `json:"database_status"`
	RedisStatus         string          `json:"redis_status"`
	RunnerStatus        map[string]bool `json:"runner_status"`
	CircuitBreakerState string          `json:"circuit_breaker_state"`
}
