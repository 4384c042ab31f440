package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/falconsystemsai/UOA/internal/domain/model"
	"github.com/falconsystemsai/UOA/internal/domain/repository"
)

// RedisRepository implements the ResponseCache port on Redis. Entries are
// stored as JSON with a per-key TTL so eviction is entirely Redis's job.
type RedisRepository struct {
	client *redis.Client
}

func NewRedisRepository(addr, password string, db int) *RedisRepository {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisRepository{client: client}
}

// Ensure RedisRepository implements the ResponseCache interface
var _ repository.ResponseCache = (*RedisRepository)(nil)

func (r *RedisRepository) Get(ctx context.Context, key string) (*model.CachedResponse, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var resp model.CachedResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		// A corrupt entry behaves like a miss; the next write replaces it.
		return nil, nil
	}
	return &resp, nil
}

func (r *RedisRepository) Put(ctx context.Context, key string, resp *model.CachedResponse, ttl time.Duration) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal cached response: %w", err)
	}
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("cache put: %w", err)
	}
	return nil
}

// Ping verifies connectivity; used at startup to decide between Redis and the
// in-memory fallback.
func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRepository) Close() error {
	return r.client.Close()
}
