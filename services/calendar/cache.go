package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"meetwise/models"
)

const eventsCachePrefix = "cal:events:"

// CachedSource decorates a Source with a short-lived Redis cache so repeated
// requests for the same participants within the TTL skip the provider round
// trip. Cache trouble degrades to a direct fetch, never to a failure.
type CachedSource struct {
	inner  Source
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedSource wraps inner with caching.
func NewCachedSource(inner Source, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedSource {
	return &CachedSource{inner: inner, client: client, ttl: ttl, logger: logger}
}

func (c *CachedSource) Events(ctx context.Context, participant string, from, to time.Time) ([]models.RawEvent, error) {
	key := fmt.Sprintf("%s%s:%d-%d", eventsCachePrefix, participant, from.Unix(), to.Unix())

	data, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var events []models.RawEvent
		if err := json.Unmarshal([]byte(data), &events); err == nil {
			return events, nil
		}
		c.logger.Warn("discarding corrupt calendar cache entry", zap.String("key", key))
	} else if err != redis.Nil {
		c.logger.Warn("calendar cache read failed", zap.String("key", key), zap.Error(err))
	}

	events, err := c.inner.Events(ctx, participant, from, to)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(events); err == nil {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Warn("calendar cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return events, nil
}
