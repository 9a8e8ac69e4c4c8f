// event-app10/config/redis.go
package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the optional Redis connection used by the session
// store. When REDIS_ADDR is unset or the server is unreachable it returns
// nil and the store falls back to process memory.
func ConnectRedis() *redis.Client {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		slog.Warn("REDIS_ADDR not set, sessions will be kept in process memory")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		slog.Error("redis connection failed, sessions will be kept in process memory", "error", err)
		return nil
	}

	slog.Info("redis connection established")
	return rdb
}
