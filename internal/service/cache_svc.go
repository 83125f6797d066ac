package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// EarningsCacheTTL bounds how stale a cached earnings view may get if a
// post_changes notification is lost.
const EarningsCacheTTL = 5 * time.Minute

// CacheService provides a Redis cache-aside layer for reconciled earnings
// responses. Reconciliation is cheap but read often; the cache absorbs
// dashboard polling.
type CacheService struct {
	rdb *redis.Client
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client and every
// cache operation becomes a no-op.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetEarnings retrieves a cached earnings response. Returns nil when not
// cached or when caching is disabled.
func (c *CacheService) GetEarnings(ctx context.Context, creatorID, cycleID, scope string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, earningsKey(creatorID, cycleID, scope)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetEarnings stores an earnings response.
func (c *CacheService) SetEarnings(ctx context.Context, creatorID, cycleID, scope string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, earningsKey(creatorID, cycleID, scope), b, EarningsCacheTTL).Err()
}

// InvalidateEarnings drops both scope variants for a creator/cycle (called
// after a relevance toggle or an ingest batch touches the pair).
func (c *CacheService) InvalidateEarnings(ctx context.Context, creatorID, cycleID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx,
		earningsKey(creatorID, cycleID, "current"),
		earningsKey(creatorID, cycleID, "history"),
	).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func earningsKey(creatorID, cycleID, scope string) string {
	return fmt.Sprintf("earnings:%s:%s:%s", creatorID, cycleID, scope)
}
