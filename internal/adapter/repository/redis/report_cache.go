package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/finboard/internal/domain"
	"github.com/iho/finboard/internal/infrastructure/metrics"
)

// ReportCache implements usecase.ReportCache using Redis. Keys follow
// the "report:<owner-type>:<owner-id>:<date>" layout, which lets
// InvalidateOwner drop every report of one owner with a single scan.
type ReportCache struct {
	client *redis.Client
}

// NewReportCache creates a new ReportCache.
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

// Get retrieves a cached report. A miss returns (nil, nil).
func (c *ReportCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.ReportCacheMisses.Inc()
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	metrics.ReportCacheHits.Inc()
	return value, nil
}

// Set stores a report payload with TTL.
func (c *ReportCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// InvalidateOwner drops every cached report for an owner.
func (c *ReportCache) InvalidateOwner(ctx context.Context, owner domain.OwnerKey) error {
	pattern := "report:" + string(owner.Type) + ":" + owner.ID + ":*"

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	return c.client.Del(ctx, keys...).Err()
}
