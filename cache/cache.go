package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"wanderboard/config"
	"wanderboard/logger"
)

// ErrMiss is returned when a key is not cached.
var ErrMiss = errors.New("cache miss")

// Cache is a small JSON key/value cache. A nil *Cache is valid and
// behaves as always-miss, so callers can run without Redis configured.
type Cache struct {
	client *redis.Client
}

// Init connects to Redis using the configured address. Returns nil when
// no address is configured.
func Init(ctx context.Context) *Cache {
	cfg := config.GetConfig().Redis
	if cfg.Addr == "" {
		logger.Log.Info("redis not configured, caching disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Log.Warnf("redis ping failed, caching disabled: %v", err)
		return nil
	}

	logger.Log.Infof("connected to redis at %s", cfg.Addr)
	return &Cache{client: client}
}

func (c *Cache) GetJSON(ctx context.Context, key string, dest any) error {
	if c == nil {
		return ErrMiss
	}
	raw, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return ErrMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), dest)
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, key).Err()
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
