package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jonathan/opportunity-scout/internal/types"
)

const redisKeyPrefix = "discovery:"

// RedisStore is a Result Cache backed by Redis, for deployments where
// multiple engine instances should share cached results. TTL is enforced by
// Redis key expiry, so no retention sweep is needed.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore parses redisURL, verifies connectivity, and returns a store
// whose entries expire after ttl.
func NewRedisStore(ctx context.Context, redisURL string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL(%q): %w", redisURL, err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultMemoryConfig().TTL
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

// Get returns the cached result for key. Backend or decode errors read as a
// miss.
func (s *RedisStore) Get(ctx context.Context, key string) (*types.DiscoveryResult, bool) {
	data, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[cache] redis get failed: %v, treating as miss", err)
		}
		return nil, false
	}

	var result types.DiscoveryResult
	if err := json.Unmarshal(data, &result); err != nil {
		log.Printf("[cache] redis entry decode failed: %v, treating as miss", err)
		return nil, false
	}
	return &result, true
}

// Set stores a result under key with the configured expiry. Failures are
// logged and dropped.
func (s *RedisStore) Set(ctx context.Context, key string, result *types.DiscoveryResult) {
	data, err := json.Marshal(result)
	if err != nil {
		log.Printf("[cache] redis entry encode failed: %v", err)
		return
	}
	if err := s.client.Set(ctx, redisKeyPrefix+key, data, s.ttl).Err(); err != nil {
		log.Printf("[cache] redis set failed: %v", err)
	}
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
