package repository

import (
	"time"

	"github.com/textpesa/smsrelay/internal/models"
)

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks database connectivity
	Ping() error

	// Message returns the message store
	Message() MessageRepository

	// Queue returns the retry queue store
	Queue() QueueRepository

	// Scheduled returns the scheduled message store
	Scheduled() ScheduledRepository

	// Campaign returns the campaign stats store
	Campaign() CampaignRepository
}

// StaleResolution records one row moved to unknown by the
// reconciliation sweep, keeping the status it was in before.
type StaleResolution struct {
	ID             int64                `db:"id" json:"id"`
	PreviousStatus models.MessageStatus `db:"previous_status" json:"previous_status"`
}

// MessageRepository is the single source of truth for message status
// transitions. Every update is a row-scoped atomic write.
type MessageRepository interface {
	// Create inserts one message as pending and returns its id.
	Create(msg *models.Message) (int64, error)

	// CreateBatch pre-logs every message as pending inside one
	// transaction: either all rows are inserted or none are.
	CreateBatch(msgs []*models.Message) error

	// UpdateStatus transitions a single row.
	UpdateStatus(id int64, status models.MessageStatus, errorMsg *string) error

	// MarkUnknownOlderThan moves pending and sent rows created before
	// cutoff to unknown. Terminal rows are never touched.
	MarkUnknownOlderThan(cutoff time.Time) ([]StaleResolution, error)

	// GetByID fetches one message.
	GetByID(id int64) (*models.Message, error)

	// GetSentMessages retrieves sent messages with pagination.
	GetSentMessages(offset, limit int) ([]*models.Message, error)

	// GetTotalSentCount returns the total count of sent messages.
	GetTotalSentCount() (int64, error)
}

// QueueRepository stores the durable retry queue, separate from the
// message table.
type QueueRepository interface {
	// Enqueue adds an entry to the retry queue.
	Enqueue(recipient, body string, simSlot int) error

	// List returns entries in original queue order.
	List(limit int) ([]*models.QueueEntry, error)

	// IncrementRetry bumps retry bookkeeping in place after a failed
	// attempt.
	IncrementRetry(id int64, lastError string) error

	// Delete removes an entry, reporting whether a row was removed so
	// overlapping sweeps stay idempotent.
	Delete(id int64) (bool, error)
}

// ScheduledRepository stores future-dated messages.
type ScheduledRepository interface {
	// Create stores a future-dated message as pending.
	Create(recipient, body string, simSlot int, scheduledAt time.Time) (int64, error)

	// ListDue returns pending rows whose scheduled time has passed.
	ListDue(now time.Time, limit int) ([]*models.ScheduledMessage, error)

	// UpdateStatus writes the terminal status after dispatch.
	UpdateStatus(id int64, status models.ScheduledStatus) error

	// Cancel moves a pending row to cancelled, reporting whether the
	// row was still cancellable.
	Cancel(id int64) (bool, error)
}

// CampaignRepository stores aggregate campaign counters. Increments
// serialize at the store so concurrent chunk completions are safe.
type CampaignRepository interface {
	IncrementSent(campaignID string) error
	IncrementFailed(campaignID string) error
	IncrementDelivered(campaignID string) error
	Get(campaignID string) (*models.CampaignStats, error)
}
