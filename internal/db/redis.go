package db

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"campaign-tracker/internal/config/configs"
)

// NewRedisClient connects to the Redis server described by cfg and verifies
// the connection with a 5 second ping. The caller must close the client.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.Addr.String())
	if err != nil {
		return nil, err
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}

	client := redis.NewClient(opts)

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = client.Ping(ctxPing).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
