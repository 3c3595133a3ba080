package repository

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/textpesa/smsrelay/internal/models"
)

type queueRepository struct {
	db *sqlx.DB
}

func NewQueueRepository(db *sqlx.DB) QueueRepository {
	return &queueRepository{
		db: db,
	}
}

// Enqueue adds a retry queue entry. Recipient uniqueness is best
// effort: duplicates are possible and tolerated downstream.
func (r *queueRepository) Enqueue(recipient, body string, simSlot int) error {
	query := `
		INSERT INTO retry_queue (recipient, body, sim_slot, retry_count, created_at, updated_at)
		VALUES ($1, $2, $3, 0, $4, $4)
	`

	now := time.Now()
	if _, err := r.db.Exec(query, recipient, body, simSlot, now); err != nil {
		return fmt.Errorf("failed to enqueue message: %w", err)
	}

	return nil
}

// List returns queue entries in original enqueue order.
func (r *queueRepository) List(limit int) ([]*models.QueueEntry, error) {
	query := `
		SELECT id, recipient, body, sim_slot, retry_count, last_error, created_at, updated_at
		FROM retry_queue
		ORDER BY id ASC
		LIMIT $1
	`

	var entries []*models.QueueEntry
	if err := r.db.Select(&entries, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list retry queue: %w", err)
	}

	return entries, nil
}

// IncrementRetry marks an entry failed in place for the next sweep.
func (r *queueRepository) IncrementRetry(id int64, lastError string) error {
	query := `
		UPDATE retry_queue
		SET retry_count = retry_count + 1,
		    last_error = $2,
		    updated_at = $3
		WHERE id = $1
	`

	if _, err := r.db.Exec(query, id, lastError, time.Now()); err != nil {
		return fmt.Errorf("failed to increment retry count: %w", err)
	}

	return nil
}

// Delete removes an entry. Removing an already-removed row is a no-op
// and reports false, which keeps overlapping sweeps idempotent.
func (r *queueRepository) Delete(id int64) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM retry_queue WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete queue entry: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected > 0, nil
}
