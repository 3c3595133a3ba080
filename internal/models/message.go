// Package models defines data structures used throughout the application.
package models

import (
	"database/sql"
	"time"
)

// MessageStatus is the lifecycle state of an outbound message.
type MessageStatus string

const (
	MessageStatusPending   MessageStatus = "pending"
	MessageStatusSent      MessageStatus = "sent"
	MessageStatusFailed    MessageStatus = "failed"
	MessageStatusDelivered MessageStatus = "delivered"
	MessageStatusUnknown   MessageStatus = "unknown"
)

// Terminal reports whether a status permits no further transitions.
// A failed row may be re-submitted as a new message by the retry path,
// but the original row is never mutated back to pending.
func (s MessageStatus) Terminal() bool {
	switch s {
	case MessageStatusFailed, MessageStatusDelivered, MessageStatusUnknown:
		return true
	}
	return false
}

// Direction distinguishes outbound rows from inbound-buffered ones.
type Direction string

const (
	DirectionOutgoing Direction = "outgoing"
	DirectionIncoming Direction = "incoming"
)

// MaxBodyLength is enforced before any persistence.
const MaxBodyLength = 1600

// Message represents one outbound (or inbound-buffered) unit in the store.
// Rows are written as pending before any transport attempt is made.
type Message struct {
	ID         int64          `db:"id" json:"id"`
	Recipient  string         `db:"recipient" json:"recipient"`
	Body       string         `db:"body" json:"body"`
	Direction  Direction      `db:"direction" json:"direction"`
	Status     MessageStatus  `db:"status" json:"status"`
	SimSlot    int            `db:"sim_slot" json:"sim_slot"`
	RetryCount int            `db:"retry_count" json:"retry_count"`
	CampaignID sql.NullString `db:"campaign_id" json:"campaign_id,omitempty"`
	VariantID  sql.NullString `db:"variant_id" json:"variant_id,omitempty"`
	ProviderID sql.NullString `db:"provider_id" json:"provider_id,omitempty"`
	LastError  sql.NullString `db:"last_error" json:"last_error,omitempty"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
	SentAt     sql.NullTime   `db:"sent_at" json:"sent_at,omitempty"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updated_at"`
}

// QueueEntry is a row in the durable retry queue. It is a logically
// separate table from messages; recipient uniqueness is best effort and
// duplicates are tolerated.
type QueueEntry struct {
	ID         int64          `db:"id" json:"id"`
	Recipient  string         `db:"recipient" json:"recipient"`
	Body       string         `db:"body" json:"body"`
	SimSlot    int            `db:"sim_slot" json:"sim_slot"`
	RetryCount int            `db:"retry_count" json:"retry_count"`
	LastError  sql.NullString `db:"last_error" json:"last_error,omitempty"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updated_at"`
}

// ScheduledStatus is the lifecycle state of a future-dated message.
type ScheduledStatus string

const (
	ScheduledStatusPending   ScheduledStatus = "pending"
	ScheduledStatusSent      ScheduledStatus = "sent"
	ScheduledStatusFailed    ScheduledStatus = "failed"
	ScheduledStatusCancelled ScheduledStatus = "cancelled"
)

// ScheduledMessage is a future-dated send promoted into the normal
// dispatch path once due.
type ScheduledMessage struct {
	ID          int64           `db:"id" json:"id"`
	Recipient   string          `db:"recipient" json:"recipient"`
	Body        string          `db:"body" json:"body"`
	SimSlot     int             `db:"sim_slot" json:"sim_slot"`
	ScheduledAt time.Time       `db:"scheduled_at" json:"scheduled_at"`
	Status      ScheduledStatus `db:"status" json:"status"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// NullString wraps a string for nullable columns; empty means NULL.
func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// CampaignStats holds aggregate counters for one bulk campaign.
// Counters are incremented as each message resolves, never decremented.
type CampaignStats struct {
	CampaignID string    `db:"campaign_id" json:"campaign_id"`
	Sent       int64     `db:"sent" json:"sent"`
	Failed     int64     `db:"failed" json:"failed"`
	Delivered  int64     `db:"delivered" json:"delivered"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
