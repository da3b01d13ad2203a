package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const updateTTL = 24 * time.Hour

// UpdateDedupStore implements ports.UpdateDeduper using Redis.
// Telegram redelivers updates after restarts or missed confirmations;
// a short-lived SETNX marker keeps each update handled once.
type UpdateDedupStore struct {
	client *goredis.Client
	prefix string
}

// NewUpdateDedupStore creates a Redis-backed update dedup store.
func NewUpdateDedupStore(client *goredis.Client) *UpdateDedupStore {
	return &UpdateDedupStore{
		client: client,
		prefix: "update:",
	}
}

// Seen atomically marks the update ID and reports whether it was already marked.
func (s *UpdateDedupStore) Seen(ctx context.Context, updateID int) (bool, error) {
	key := s.prefix + strconv.Itoa(updateID)

	set, err := s.client.SetNX(ctx, key, 1, updateTTL).Result()
	if err != nil {
		return false, fmt.Errorf("redis update dedup: %w", err)
	}
	return !set, nil
}
