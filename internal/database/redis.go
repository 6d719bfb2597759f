package database

import (
	"context"

	"go-eventcrm/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// NewRedis creates the Redis client used for permission-set caching.
// The connection is verified lazily; a dead Redis degrades to cache
// misses rather than failing startup.
func NewRedis(lc fx.Lifecycle, cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return client
}
