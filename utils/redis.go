package utils

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/minseo-dev/event-marketing-backend/config"
)

var redisClient *redis.Client

var ctx = context.Background()

// InitRedis connects the shared Redis client.
func InitRedis(cfg *config.Config) error {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return err
	}

	Logger.Info().Str("addr", cfg.RedisAddr).Msg("redis connected")
	return nil
}

// SetToken stores a value with TTL (refresh-token denylist, short-lived tokens).
func SetToken(key, value string, ttl time.Duration) error {
	if redisClient == nil {
		return errors.New("redis not initialized")
	}
	return redisClient.Set(ctx, key, value, ttl).Err()
}

// GetToken fetches a previously stored token value.
func GetToken(key string) (string, error) {
	if redisClient == nil {
		return "", errors.New("redis not initialized")
	}
	return redisClient.Get(ctx, key).Result()
}

// DeleteToken removes a stored token.
func DeleteToken(key string) error {
	if redisClient == nil {
		return errors.New("redis not initialized")
	}
	return redisClient.Del(ctx, key).Err()
}

// CacheSet stores a serialized payload with TTL. Failures are non-fatal for
// callers; the cache is an optimization only.
func CacheSet(key string, payload []byte, ttl time.Duration) error {
	if redisClient == nil {
		return errors.New("redis not initialized")
	}
	return redisClient.Set(ctx, key, payload, ttl).Err()
}

// CacheGet returns a cached payload, or redis.Nil when absent.
func CacheGet(key string) ([]byte, error) {
	if redisClient == nil {
		return nil, errors.New("redis not initialized")
	}
	return redisClient.Get(ctx, key).Bytes()
}

// CacheInvalidate drops cached payloads matching the given keys.
func CacheInvalidate(keys ...string) {
	if redisClient == nil || len(keys) == 0 {
		return
	}
	if err := redisClient.Del(ctx, keys...).Err(); err != nil {
		Logger.Warn().Err(err).Msg("cache invalidation failed")
	}
}
