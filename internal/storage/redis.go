package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores each scope document under a plain redis key.
// Useful when several machines share one known-market store.
type RedisBackend struct {
	client *redis.Client
}

func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

func (b *RedisBackend) Load(key string) ([]byte, error) {
	ctx := context.Background()
	data, err := b.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (b *RedisBackend) Save(key string, data []byte) error {
	ctx := context.Background()
	return b.client.Set(ctx, key, data, 0).Err()
}
