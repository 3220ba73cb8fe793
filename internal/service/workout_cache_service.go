package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefixes for the workout catalog
	RedisWorkoutListKeyPrefix = "workouts:list:"
	RedisWorkoutItemKeyPrefix = "workouts:item:"

	redisCacheTimeout   = 2 * time.Second
	invalidateScanCount = 200
)

// WorkoutCacheService caches serialized list pages and single workouts.
// A miss and a cache failure look the same to callers: Get returns false.
type WorkoutCacheService interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any)
	InvalidateAll(ctx context.Context) (int, error)
}

type redisWorkoutCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

// NewWorkoutCacheService returns a redis-backed cache, or a no-op cache when redisClient is nil.
func NewWorkoutCacheService(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) WorkoutCacheService {
	if redisClient == nil {
		return noopWorkoutCache{}
	}
	return &redisWorkoutCache{redisClient: redisClient, log: log, ttl: ttl}
}

func (c *redisWorkoutCache) Get(ctx context.Context, key string, dest any) bool {
	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	raw, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read cache key %s: %+v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warnf("Failed to decode cache key %s: %+v", key, err)
		return false
	}
	return true
}

func (c *redisWorkoutCache) Set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warnf("Failed to encode cache key %s: %+v", key, err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, redisCacheTimeout)
	defer cancel()

	if err := c.redisClient.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to write cache key %s: %+v", key, err)
	}
}

// InvalidateAll drops every cached page and item, deleting one SCAN batch per pipeline.
func (c *redisWorkoutCache) InvalidateAll(ctx context.Context) (int, error) {
	deleted := 0
	for _, prefix := range []string{RedisWorkoutListKeyPrefix, RedisWorkoutItemKeyPrefix} {
		var cursor uint64
		for {
			keys, next, err := c.redisClient.Scan(ctx, cursor, prefix+"*", invalidateScanCount).Result()
			if err != nil {
				return deleted, fmt.Errorf("scan %s keys: %w", prefix, err)
			}
			if len(keys) > 0 {
				pipe := c.redisClient.Pipeline()
				for _, key := range keys {
					pipe.Del(ctx, key)
				}
				if _, err := pipe.Exec(ctx); err != nil {
					return deleted, fmt.Errorf("delete %s keys: %w", prefix, err)
				}
				deleted += len(keys)
			}
			cursor = next
			if cursor == 0 {
				break
			}
		}
	}
	c.log.Infof("Invalidated %d cached workout keys", deleted)
	return deleted, nil
}

type noopWorkoutCache struct{}

func (noopWorkoutCache) Get(context.Context, string, any) bool { return false }

func (noopWorkoutCache) Set(context.Context, string, any) {}

func (noopWorkoutCache) InvalidateAll(context.Context) (int, error) { return 0, nil }
