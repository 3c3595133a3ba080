package repository

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/textpesa/smsrelay/internal/models"
)

type scheduledRepository struct {
	db *sqlx.DB
}

func NewScheduledRepository(db *sqlx.DB) ScheduledRepository {
	return &scheduledRepository{
		db: db,
	}
}

// Create stores a future-dated message as pending.
func (r *scheduledRepository) Create(recipient, body string, simSlot int, scheduledAt time.Time) (int64, error) {
	query := `
		INSERT INTO scheduled_messages (recipient, body, sim_slot, scheduled_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id
	`

	now := time.Now()
	var id int64
	err := r.db.Get(&id, query, recipient, body, simSlot, scheduledAt, models.ScheduledStatusPending, now)
	if err != nil {
		return 0, fmt.Errorf("failed to create scheduled message: %w", err)
	}

	return id, nil
}

// ListDue returns pending rows whose scheduled time has passed, oldest
// first.
func (r *scheduledRepository) ListDue(now time.Time, limit int) ([]*models.ScheduledMessage, error) {
	query := `
		SELECT id, recipient, body, sim_slot, scheduled_at, status, created_at, updated_at
		FROM scheduled_messages
		WHERE status = $1 AND scheduled_at <= $2
		ORDER BY scheduled_at ASC
		LIMIT $3
	`

	var due []*models.ScheduledMessage
	if err := r.db.Select(&due, query, models.ScheduledStatusPending, now, limit); err != nil {
		return nil, fmt.Errorf("failed to list due messages: %w", err)
	}

	return due, nil
}

// UpdateStatus writes the terminal status after dispatch.
func (r *scheduledRepository) UpdateStatus(id int64, status models.ScheduledStatus) error {
	query := `UPDATE scheduled_messages SET status = $2, updated_at = $3 WHERE id = $1`

	if _, err := r.db.Exec(query, id, status, time.Now()); err != nil {
		return fmt.Errorf("failed to update scheduled message status: %w", err)
	}

	return nil
}

// Cancel moves a pending row to cancelled. The pending-only guard is in
// the statement, so a row already promoted cannot be cancelled.
func (r *scheduledRepository) Cancel(id int64) (bool, error) {
	query := `
		UPDATE scheduled_messages
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status = $4
	`

	result, err := r.db.Exec(query, id, models.ScheduledStatusCancelled, time.Now(), models.ScheduledStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to cancel scheduled message: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return affected > 0, nil
}
