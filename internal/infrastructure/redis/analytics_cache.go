package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/config"
	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/service"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// NewClient creates a Redis client and checks the connection
func NewClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// AnalyticsCache stores computed analytics in Redis.
//
// Entries live under a per-user version number. Invalidate bumps the version
// so every earlier entry becomes unreachable and ages out on its own TTL. The
// version key itself never expires: restarting it from zero would make old
// entries reachable again.
type AnalyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ service.AnalyticsCache = (*AnalyticsCache)(nil)

// NewAnalyticsCache creates a new analytics cache
func NewAnalyticsCache(client *redis.Client, ttl time.Duration) *AnalyticsCache {
	return &AnalyticsCache{
		client: client,
		ttl:    ttl,
	}
}

// versionKey generates Redis key for the user's cache version
func versionKey(userID uuid.UUID) string {
	return fmt.Sprintf("analytics:%s:version", userID.String())
}

// entryKey generates Redis key for one cached result
func entryKey(userID uuid.UUID, version int64, key string) string {
	return fmt.Sprintf("analytics:%s:v%d:%s", userID.String(), version, key)
}

func (c *AnalyticsCache) version(ctx context.Context, userID uuid.UUID) (int64, error) {
	v, err := c.client.Get(ctx, versionKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get cache version: %w", err)
	}
	return v, nil
}

// Get loads a cached value into dst and reports the version it looked under
func (c *AnalyticsCache) Get(ctx context.Context, userID uuid.UUID, key string, dst any) (int64, bool, error) {
	v, err := c.version(ctx, userID)
	if err != nil {
		return 0, false, err
	}

	data, err := c.client.Get(ctx, entryKey(userID, v, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return v, false, nil
	}
	if err != nil {
		return v, false, fmt.Errorf("failed to get cached %s: %w", key, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return v, false, fmt.Errorf("failed to unmarshal cached %s: %w", key, err)
	}
	return v, true, nil
}

// Set stores value under version, which must come from the Get that missed.
// If the user wrote in between, the entry lands under a stale version and is
// never read.
func (c *AnalyticsCache) Set(ctx context.Context, userID uuid.UUID, version int64, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := c.client.Set(ctx, entryKey(userID, version, key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache %s: %w", key, err)
	}
	return nil
}

// Invalidate bumps the user's version and clears any TTL set on the version key
func (c *AnalyticsCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	key := versionKey(userID)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.Persist(ctx, key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate analytics cache: %w", err)
	}
	return nil
}
