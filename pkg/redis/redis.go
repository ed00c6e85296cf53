package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v5"
	"github.com/redis/go-redis/v9"
)

// Options - параметры подключения к Redis
type Options struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
	// Число попыток ping при старте. Redis в docker-compose поднимается позже сервисов
	ConnectAttempts uint
}

// NewRedisClient создает клиент Redis и дожидается ответа на ping
func NewRedisClient(ctx context.Context, opts Options) (*redis.Client, error) {
	if opts.PoolSize <= 0 {
		opts.PoolSize = 10
	}
	if opts.ConnectAttempts == 0 {
		opts.ConnectAttempts = 1
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
		PoolSize: opts.PoolSize,
	})

	r := retry.New(
		retry.Context(ctx),
		retry.Attempts(opts.ConnectAttempts),
		retry.Delay(500*time.Millisecond),
	)
	if err := r.Do(func() error {
		return rdb.Ping(ctx).Err()
	}); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}
