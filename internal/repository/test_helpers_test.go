package repository_test

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// insertMessageAt inserts a message row with an explicit created_at so
// staleness windows can be tested against backdated rows.
func insertMessageAt(db *sqlx.DB, recipient, body, status string, createdAt time.Time) (int64, error) {
	var id int64
	query := `
		INSERT INTO messages (recipient, body, direction, status, sim_slot, retry_count, created_at, updated_at)
		VALUES ($1, $2, 'outgoing', $3, 0, 0, $4, $4)
		RETURNING id
	`

	if err := db.Get(&id, query, recipient, body, status, createdAt); err != nil {
		return 0, fmt.Errorf("failed to insert test message: %w", err)
	}

	return id, nil
}

func messageStatus(db *sqlx.DB, id int64) (string, error) {
	var status string
	if err := db.Get(&status, `SELECT status FROM messages WHERE id = $1`, id); err != nil {
		return "", fmt.Errorf("failed to read message status: %w", err)
	}
	return status, nil
}

func countMessages(db *sqlx.DB) (int, error) {
	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM messages`); err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}
