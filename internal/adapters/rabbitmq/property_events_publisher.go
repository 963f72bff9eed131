package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
	"property-service/pkg/rabbitmq"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// PropertyEventsPublisher implements EventPublisherPort on top of a
// RabbitMQ topic exchange. The event type is used as the routing key so
// downstream consumers can bind to "property.*" or to a single type.
type PropertyEventsPublisher struct {
	producer *rabbitmq.Publisher
}

func NewPropertyEventsPublisher(producer *rabbitmq.Publisher) (*PropertyEventsPublisher, error) {
	if producer == nil {
		return nil, fmt.Errorf("producer cannot be nil")
	}
	return &PropertyEventsPublisher{producer: producer}, nil
}

// PublishPropertyEvent serializes the event and posts it to the exchange.
func (a *PropertyEventsPublisher) PublishPropertyEvent(ctx context.Context, event domain.PropertyEvent) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "PropertyEventsPublisher",
		"event_type":  event.Type,
		"property_id": event.PropertyID.String(),
	})

	eventJSON, err := json.Marshal(event)
	if err != nil {
		adapterLogger.Error("Failed to marshal property event to JSON", err, nil)
		return fmt.Errorf("failed to marshal property event to JSON: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         eventJSON,
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Headers: amqp.Table{
			"event-type":    event.Type,
			"event-version": "1.0.0",
		},
	}

	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if err := a.producer.Publish(publishCtx, event.Type, msg); err != nil {
		adapterLogger.Error("Failed to publish property event", err, nil)
		return err
	}

	adapterLogger.Debug("Successfully published property event", nil)
	return nil
}

func (a *PropertyEventsPublisher) Close() error {
	return a.producer.Close()
}
