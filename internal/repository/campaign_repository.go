package repository

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/textpesa/smsrelay/internal/models"
)

type campaignRepository struct {
	db *sqlx.DB
}

func NewCampaignRepository(db *sqlx.DB) CampaignRepository {
	return &campaignRepository{
		db: db,
	}
}

// increment upserts a single counter. The read-modify-write happens in
// the statement, so concurrent chunk completions serialize at the
// store.
func (r *campaignRepository) increment(campaignID, column string) error {
	// column comes from the fixed set below, never from input.
	query := fmt.Sprintf(`
		INSERT INTO campaign_stats (campaign_id, %s, updated_at)
		VALUES ($1, 1, $2)
		ON CONFLICT (campaign_id)
		DO UPDATE SET %s = campaign_stats.%s + 1, updated_at = $2
	`, column, column, column)

	if _, err := r.db.Exec(query, campaignID, time.Now()); err != nil {
		return fmt.Errorf("failed to increment campaign %s count: %w", column, err)
	}

	return nil
}

func (r *campaignRepository) IncrementSent(campaignID string) error {
	return r.increment(campaignID, "sent")
}

func (r *campaignRepository) IncrementFailed(campaignID string) error {
	return r.increment(campaignID, "failed")
}

func (r *campaignRepository) IncrementDelivered(campaignID string) error {
	return r.increment(campaignID, "delivered")
}

// Get returns the counters for one campaign.
func (r *campaignRepository) Get(campaignID string) (*models.CampaignStats, error) {
	query := `
		SELECT campaign_id, sent, failed, delivered, updated_at
		FROM campaign_stats
		WHERE campaign_id = $1
	`

	var stats models.CampaignStats
	if err := r.db.Get(&stats, query, campaignID); err != nil {
		return nil, fmt.Errorf("failed to get campaign stats: %w", err)
	}

	return &stats, nil
}
