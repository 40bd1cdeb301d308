package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client      *redis.Client
	serviceName string
	ttl         time.Duration
}

// NewRedisCache keeps entries until deleted when ttl is zero.
func NewRedisCache(ctx context.Context, addr, serviceName string, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &RedisCache{
		client:      client,
		serviceName: serviceName,
		ttl:         ttl,
	}, nil
}

func (r *RedisCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	return r.client.Set(ctx, key, data, r.ttl).Err()
}

func (r *RedisCache) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *RedisCache) GenerateKey(operation, key string) string {
	return fmt.Sprintf("%s:%s:%s", r.serviceName, operation, key)
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
