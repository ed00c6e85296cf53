package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/drive_journal/internal/gps"
)

// GPSTokenCache хранит токен поставщика GPS в Redis до момента его истечения,
// чтобы перезапуск трекера не приводил к повторной авторизации
type GPSTokenCache struct {
	redisClient *redis.Client
}

func NewGPSTokenCache(redisClient *redis.Client) gps.TokenCache {
	return &GPSTokenCache{redisClient: redisClient}
}

func (c *GPSTokenCache) Get(ctx context.Context) (*gps.Token, error) {
	val, err := c.redisClient.Get(ctx, redisKeyGPSToken).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get gps token from cache: %w", err)
	}

	token := &gps.Token{}
	if err := json.Unmarshal(val, token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal gps token: %w", err)
	}
	return token, nil
}

func (c *GPSTokenCache) Set(ctx context.Context, token gps.Token) error {
	ttl := time.Until(token.ExpiresAt)
	if ttl <= 0 {
		return c.Clear(ctx)
	}

	val, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal gps token: %w", err)
	}
	if err := c.redisClient.Set(ctx, redisKeyGPSToken, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set gps token in cache: %w", err)
	}
	return nil
}

func (c *GPSTokenCache) Clear(ctx context.Context) error {
	if err := c.redisClient.Del(ctx, redisKeyGPSToken).Err(); err != nil {
		return fmt.Errorf("failed to clear gps token: %w", err)
	}
	return nil
}
