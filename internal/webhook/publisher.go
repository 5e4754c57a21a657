package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/pkg/metrics"
)

const (
	webhookQueueKey = "incident_events"
)

// Типы событий жизненного цикла инцидента
const (
	EventIncidentCreated = "incident.created"
	EventIncidentSOS     = "incident.sos"
	EventStatusChanged   = "incident.status_changed"
	EventPriorityChanged = "incident.priority_changed"
	EventAlertsFannedOut = "alerts.fanned_out"
)

// WebhookEvent - структура для данных вебхука
type WebhookEvent struct {
	Type          string           `json:"type"`
	Incident      *models.Incident `json:"incident"`
	AlertsCreated int              `json:"alerts_created,omitempty"`
	Timestamp     time.Time        `json:"timestamp"`
}

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
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
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH + BRPOP у воркера дают FIFO
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		metrics.RecordWebhookPublishError()
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	metrics.RecordWebhookPublished()
	return nil
}
