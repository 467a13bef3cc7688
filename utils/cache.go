// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// NewRedisClient builds and pings a Redis client for read caching. The
// handle is injected into the services that need it; callers own Close.
func NewRedisClient(addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
