package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// processingMarker is stored while the original request is still in flight.
const processingMarker = "processing"

// IdempotencyStore implements usecase.IdempotencyStore using Redis.
// Keys are prefixed so they share a keyspace with the report cache
// without colliding.
type IdempotencyStore struct {
	client *redis.Client
	prefix string
}

// NewIdempotencyStore creates a new IdempotencyStore.
func NewIdempotencyStore(client *redis.Client) *IdempotencyStore {
	return &IdempotencyStore{
		client: client,
		prefix: "finboard:idem:",
	}
}

// CheckAndSet returns the stored response for key if one exists. When the
// key is new it either stores response directly or, if response is nil,
// places a processing marker so concurrent retries observe the in-flight
// request.
func (s *IdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	k := s.prefix + key

	existing, err := s.client.Get(ctx, k).Bytes()
	switch {
	case err == nil:
		return true, existing, nil
	case !errors.Is(err, redis.Nil):
		return false, nil, fmt.Errorf("idempotency lookup: %w", err)
	}

	if response != nil {
		if err := s.client.Set(ctx, k, response, ttl).Err(); err != nil {
			return false, nil, fmt.Errorf("idempotency store: %w", err)
		}
		return false, nil, nil
	}

	locked, err := s.client.SetNX(ctx, k, processingMarker, ttl).Result()
	if err != nil {
		return false, nil, fmt.Errorf("idempotency lock: %w", err)
	}
	if !locked {
		// Lost the race: another request claimed the key between the
		// lookup and the SetNX.
		existing, err := s.client.Get(ctx, k).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return false, nil, fmt.Errorf("idempotency lookup: %w", err)
		}
		return true, existing, nil
	}

	return false, nil, nil
}

// Update replaces the processing marker with the final response.
func (s *IdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+key, response, ttl).Err(); err != nil {
		return fmt.Errorf("idempotency update: %w", err)
	}
	return nil
}
