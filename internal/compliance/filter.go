// Package compliance partitions recipient lists against a suppression
// list kept in Redis.
package compliance

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const suppressionSetKey = "suppression:recipients"

// Partition is the result of filtering a recipient list.
type Partition struct {
	Allowed []string
	Blocked []string
}

// Filter splits recipients into allowed and blocked partitions.
type Filter interface {
	FilterRecipients(ctx context.Context, recipients []string) (Partition, error)
}

type redisFilter struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisFilter returns a Filter backed by a Redis suppression set.
func NewRedisFilter(client *redis.Client, logger *zap.Logger) Filter {
	return &redisFilter{
		client: client,
		logger: logger,
	}
}

// FilterRecipients checks every recipient against the suppression set
// in a single round trip. Order within each partition follows input
// order.
func (f *redisFilter) FilterRecipients(ctx context.Context, recipients []string) (Partition, error) {
	if len(recipients) == 0 {
		return Partition{}, nil
	}

	members := make([]interface{}, len(recipients))
	for i, r := range recipients {
		members[i] = r
	}

	blocked, err := f.client.SMIsMember(ctx, suppressionSetKey, members...).Result()
	if err != nil {
		return Partition{}, fmt.Errorf("failed to check suppression list: %w", err)
	}

	partition := Partition{
		Allowed: make([]string, 0, len(recipients)),
	}
	for i, r := range recipients {
		if blocked[i] {
			partition.Blocked = append(partition.Blocked, r)
		} else {
			partition.Allowed = append(partition.Allowed, r)
		}
	}

	if len(partition.Blocked) > 0 {
		f.logger.Info("Recipients blocked by suppression list",
			zap.Int("blocked", len(partition.Blocked)),
			zap.Int("total", len(recipients)))
	}

	return partition, nil
}

// Suppress adds a recipient to the suppression set.
func Suppress(ctx context.Context, client *redis.Client, recipient string) error {
	if err := client.SAdd(ctx, suppressionSetKey, recipient).Err(); err != nil {
		return fmt.Errorf("failed to suppress recipient: %w", err)
	}
	return nil
}
