package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/drive_journal/internal/models"
)

const (
	webhookQueueKey = "drive_journal:webhook_events"
)

// WebhookEvent - тело вебхука о переходе через границу геозоны
type WebhookEvent struct {
	Type        string               `json:"type"`
	PublishedAt time.Time            `json:"published_at"`
	Data        models.GeofenceEvent `json:"data"`
}

// NewWebhookEvent оборачивает событие геозоны в тело вебхука
func NewWebhookEvent(event models.GeofenceEvent, now time.Time) WebhookEvent {
	return WebhookEvent{
		Type:        "geofence." + event.Type,
		PublishedAt: now.UTC(),
		Data:        event,
	}
}

// RedisWebhookPublisher ставит события в очередь Redis, доставкой занимается WebhookWorker
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event models.GeofenceEvent) error {
	payload, err := json.Marshal(NewWebhookEvent(event, time.Now()))
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH + BRPOP дают FIFO
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
