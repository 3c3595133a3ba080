// Package repository provides the Postgres-backed stores for messages,
// the retry queue, scheduled sends and campaign counters.
package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db        *sqlx.DB
	message   MessageRepository
	queue     QueueRepository
	scheduled ScheduledRepository
	campaign  CampaignRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:        db,
		message:   NewMessageRepository(db),
		queue:     NewQueueRepository(db),
		scheduled: NewScheduledRepository(db),
		campaign:  NewCampaignRepository(db),
	}
}

func (r *repositoryImpl) Message() MessageRepository {
	return r.message
}

func (r *repositoryImpl) Queue() QueueRepository {
	return r.queue
}

func (r *repositoryImpl) Scheduled() ScheduledRepository {
	return r.scheduled
}

func (r *repositoryImpl) Campaign() CampaignRepository {
	return r.campaign
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
