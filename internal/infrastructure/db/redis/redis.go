package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultDialTimeout = 5 * time.Second
	// ioTimeout keeps a slow cache from stalling public reads.
	ioTimeout = 500 * time.Millisecond
)

// Config is the optional content cache backend.
type Config struct {
	Addr     string
	Password string
	DB       int
	// DialTimeout bounds the dial and the startup ping. Zero means defaultDialTimeout.
	DialTimeout time.Duration
}

// Connect dials Redis and pings it once. The client is meant for NewContentCache.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	dial := cfg.DialTimeout
	if dial <= 0 {
		dial = defaultDialTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dial,
		ReadTimeout:  ioTimeout,
		WriteTimeout: ioTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, dial)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}
