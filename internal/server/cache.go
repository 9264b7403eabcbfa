package server

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/gravitas-games/hexboard/internal/config"
	"github.com/gravitas-games/hexboard/internal/network"
)

// BoardCache stores generated boards in Redis, keyed by request
// fingerprint. Only reproducible requests are cached; cache failures are
// logged and treated as misses.
type BoardCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewBoardCache connects to Redis and verifies the connection.
func NewBoardCache(ctx context.Context, cfg config.RedisConfig) (*BoardCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &BoardCache{client: client, prefix: cfg.KeyPrefix, ttl: cfg.TTL()}, nil
}

// Get returns the cached board for a fingerprint, if any.
func (c *BoardCache) Get(ctx context.Context, key string) (*network.BoardPayload, bool) {
	if key == "" {
		return nil, false
	}
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("Warning: board cache read failed: %v", err)
		return nil, false
	}
	var payload network.BoardPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		log.Printf("Warning: board cache entry corrupt: %v", err)
		return nil, false
	}
	return &payload, true
}

// Put stores a board under a fingerprint.
func (c *BoardCache) Put(ctx context.Context, key string, payload *network.BoardPayload) {
	if key == "" {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Warning: failed to marshal board for cache: %v", err)
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		log.Printf("Warning: board cache write failed: %v", err)
	}
}

// Close releases the Redis connection.
func (c *BoardCache) Close() error {
	return c.client.Close()
}
