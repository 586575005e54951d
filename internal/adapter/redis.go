package adapter

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

var (
	client *redis.Client
	once   sync.Once
)

func InitRedisClient(addr string, password string) error {
	if addr == "" {
		return errors.New("redis host is empty")
	}

	var initError error
	once.Do(func() {
		c := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
		})

		// Ping the Redis server to check the connection
		if _, err := c.Ping(context.Background()).Result(); err != nil {
			initError = fmt.Errorf("failed to connect to Redis: %v", err)
			return
		}

		client = c
	})

	return initError
}

func GetRedisClient() (*redis.Client, error) {
	if client == nil {
		return nil, errors.New("redis client is not initialized. call InitRedisClient first")
	}
	return client, nil
}
