package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/textpesa/smsrelay/internal/models"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

const messageColumns = `id, recipient, body, direction, status, sim_slot, retry_count,
	campaign_id, variant_id, provider_id, last_error, created_at, sent_at, updated_at`

// Create inserts a single message as pending and returns its id.
func (r *messageRepository) Create(msg *models.Message) (int64, error) {
	query := `
		INSERT INTO messages (recipient, body, direction, status, sim_slot, retry_count,
			campaign_id, variant_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := r.db.Get(&id, query,
		msg.Recipient, msg.Body, models.DirectionOutgoing, models.MessageStatusPending,
		msg.SimSlot, msg.RetryCount, msg.CampaignID, msg.VariantID, now)
	if err != nil {
		return 0, fmt.Errorf("failed to create message: %w", err)
	}

	return id, nil
}

// CreateBatch pre-logs every message of a bulk operation as pending in
// one transaction. A failure rolls the whole batch back; the ids of
// inserted rows are written back into msgs.
func (r *messageRepository) CreateBatch(msgs []*models.Message) error {
	if len(msgs) == 0 {
		return nil
	}

	tx, err := r.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin batch transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO messages (recipient, body, direction, status, sim_slot, retry_count,
			campaign_id, variant_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id
	`

	now := time.Now()
	for _, msg := range msgs {
		var id int64
		err := tx.Get(&id, query,
			msg.Recipient, msg.Body, models.DirectionOutgoing, models.MessageStatusPending,
			msg.SimSlot, msg.RetryCount, msg.CampaignID, msg.VariantID, now)
		if err != nil {
			return fmt.Errorf("failed to pre-log message for %s: %w", msg.Recipient, err)
		}
		msg.ID = id
		msg.Status = models.MessageStatusPending
		msg.CreatedAt = now
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}

	return nil
}

// UpdateStatus transitions a single row atomically.
func (r *messageRepository) UpdateStatus(id int64, status models.MessageStatus, errorMsg *string) error {
	query := `
		UPDATE messages
		SET status = $2,
		    last_error = $3,
		    sent_at = $4,
		    updated_at = $5
		WHERE id = $1
	`

	var sentAt sql.NullTime
	if status == models.MessageStatusSent {
		sentAt = sql.NullTime{
			Time:  time.Now(),
			Valid: true,
		}
	}

	var errMsg sql.NullString
	if errorMsg != nil {
		errMsg = sql.NullString{
			String: *errorMsg,
			Valid:  true,
		}
	}

	_, err := r.db.Exec(query, id, status, errMsg, sentAt, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update message status: %w", err)
	}

	return nil
}

// MarkUnknownOlderThan resolves stale pending and sent rows to unknown.
// The status filter is part of the statement, so delivered and failed
// rows can never be caught by the sweep.
func (r *messageRepository) MarkUnknownOlderThan(cutoff time.Time) ([]StaleResolution, error) {
	query := `
		WITH stale AS (
			SELECT id, status
			FROM messages
			WHERE status IN ($1, $2) AND created_at < $3
			FOR UPDATE
		)
		UPDATE messages m
		SET status = $4, updated_at = $5
		FROM stale
		WHERE m.id = stale.id
		RETURNING m.id AS id, stale.status AS previous_status
	`

	var resolved []StaleResolution
	err := r.db.Select(&resolved, query,
		models.MessageStatusPending, models.MessageStatusSent,
		cutoff, models.MessageStatusUnknown, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to mark stale messages: %w", err)
	}

	return resolved, nil
}

// GetByID fetches one message by id.
func (r *messageRepository) GetByID(id int64) (*models.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages WHERE id = $1`

	var msg models.Message
	if err := r.db.Get(&msg, query, id); err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	return &msg, nil
}

// GetSentMessages retrieves sent messages with pagination.
func (r *messageRepository) GetSentMessages(offset, limit int) ([]*models.Message, error) {
	query := `
		SELECT ` + messageColumns + `
		FROM messages
		WHERE status = $1
		ORDER BY sent_at DESC
		LIMIT $2 OFFSET $3
	`

	var messages []*models.Message
	err := r.db.Select(&messages, query, models.MessageStatusSent, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get sent messages: %w", err)
	}

	return messages, nil
}

// GetTotalSentCount returns the total count of sent messages.
func (r *messageRepository) GetTotalSentCount() (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM messages WHERE status = $1`

	err := r.db.Get(&count, query, models.MessageStatusSent)
	if err != nil {
		return 0, fmt.Errorf("failed to get total sent count: %w", err)
	}

	return count, nil
}
