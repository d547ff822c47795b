package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultIdempotencyTTL = 24 * time.Hour

// IdempotencyStore maps contact Idempotency-Key values to the id of the
// message they produced.
// Key format: idem:contact:<key>
type IdempotencyStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewIdempotencyStore(client redis.Cmdable, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

// Lookup returns the message id recorded for key.
func (s *IdempotencyStore) Lookup(ctx context.Context, key string) (int64, bool, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: %w", err)
	}

	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("idempotency value %q: %w", v, err)
	}
	return id, true, nil
}

// Remember records messageID for key unless the key is already taken.
func (s *IdempotencyStore) Remember(ctx context.Context, key string, messageID int64) error {
	if err := s.client.SetNX(ctx, s.key(key), strconv.FormatInt(messageID, 10), s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency remember: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(k string) string {
	return "idem:contact:" + k
}
