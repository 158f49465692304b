package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/disaster_connect/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

// EventIncidentReported - тип события о новом сообщении
const EventIncidentReported = "incident.reported"

// WebhookEvent - структура для данных вебхука
type WebhookEvent struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	Incident  models.Incident `json:"incident"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewIncidentReportedEvent создает событие с новым идентификатором доставки
func NewIncidentReportedEvent(incident models.Incident, now time.Time) WebhookEvent {
	return WebhookEvent{
		ID:        uuid.NewString(),
		Type:      EventIncidentReported,
		Incident:  incident,
		Timestamp: now,
	}
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// QueuePublisher сериализует событие и кладет его в очередь для воркера
type QueuePublisher struct {
	queue Queue
}

// NewQueuePublisher создает новый QueuePublisher
func NewQueuePublisher(queue Queue) *QueuePublisher {
	return &QueuePublisher{queue: queue}
}

// Publish публикует событие вебхука в очередь
func (p *QueuePublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}
	if err := p.queue.Push(ctx, payload); err != nil {
		return fmt.Errorf("failed to publish webhook event: %w", err)
	}
	return nil
}

// NoopPublisher используется, когда WEBHOOK_URL не задан
type NoopPublisher struct{}

// Publish ничего не делает
func (NoopPublisher) Publish(context.Context, WebhookEvent) error {
	return nil
}
