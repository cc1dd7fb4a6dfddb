package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"talentdeck-api/internal/config"
	"talentdeck-api/internal/logging"
	"talentdeck-api/pkg/models"
)

// queryKeyPattern matches every cached query result; see query.Spec.CacheKey
const queryKeyPattern = "candidates:q*"

// QueryCache stores filtered candidate lists in Redis keyed by query
// specification. Every write to the candidate store invalidates it.
type QueryCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logging.Logger
}

// NewQueryCache creates a Redis-backed query cache
func NewQueryCache(cfg *config.Config) *QueryCache {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}
	}

	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = cfg.Redis.Timeout
	opts.WriteTimeout = cfg.Redis.Timeout

	return &QueryCache{
		client: redis.NewClient(opts),
		ttl:    cfg.Cache.TTL,
		logger: logging.GetGlobalLogger().WithField("component", "query_cache"),
	}
}

// Ping tests the Redis connection
func (c *QueryCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *QueryCache) Close() error {
	return c.client.Close()
}

// Get returns the cached candidate list for a key, if present. Cache
// failures are treated as misses; the store is always authoritative.
func (c *QueryCache) Get(ctx context.Context, key string) ([]models.Candidate, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("Query cache read failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return nil, false
	}

	var candidates []models.Candidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		c.logger.Warn("Query cache entry malformed, dropping", map[string]interface{}{"key": key})
		c.client.Del(ctx, key)
		return nil, false
	}
	return candidates, true
}

// Set stores a candidate list under a key with the configured TTL
func (c *QueryCache) Set(ctx context.Context, key string, candidates []models.Candidate) {
	data, err := json.Marshal(candidates)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("Query cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

// Invalidate drops every cached query result. Called on any candidate write.
func (c *QueryCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, queryKeyPattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan query cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate query cache: %w", err)
	}
	return nil
}
