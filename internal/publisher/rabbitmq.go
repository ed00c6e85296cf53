package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shenikar/drive_journal/internal/models"
	"github.com/shenikar/drive_journal/internal/service"
)

var _ service.EventPublisher = (*RabbitMQPublisher)(nil)

const (
	exchangeName = "fleet.events"
	queueName    = "geofence_alerts"
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitMQPublisher рассылает события геозон через fanout-обменник
type RabbitMQPublisher struct {
	ch amqpChannel
}

// NewRabbitMQPublisher объявляет обменник и очередь оповещений и возвращает публикатора
func NewRabbitMQPublisher(conn *amqp.Connection) (*RabbitMQPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(queueName, "", exchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	return &RabbitMQPublisher{ch: ch}, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, event models.GeofenceEvent) error {
	body, err := json.Marshal(newAlertMessage(event))
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}

	if err := p.ch.PublishWithContext(ctx, exchangeName, "", false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID.String(),
		Timestamp:    event.OccurredAt,
		Type:         "geofence." + event.Type,
		Body:         body,
	}); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	return nil
}
