package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces every substrate key so a shared Redis instance can
// host other applications.
const keyPrefix = "lifebank:"

// RedisKV is the Redis-backed substrate for deployments where multiple
// instances need shared durable state.
type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (s *RedisKV) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (s *RedisKV) Put(ctx context.Context, key string, value []byte) error {
	// Records never expire; retention is a domain concern, not a cache TTL.
	return s.client.Set(ctx, keyPrefix+key, value, 0).Err()
}

func (s *RedisKV) Has(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, keyPrefix+key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisKV) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}
