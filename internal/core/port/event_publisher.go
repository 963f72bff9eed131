package port

import (
	"context"
	"property-service/internal/core/domain"
)

// EventPublisherPort publishes property lifecycle events to the message
// broker. Implementations must be safe for concurrent use.
type EventPublisherPort interface {
	PublishPropertyEvent(ctx context.Context, event domain.PropertyEvent) error
	Close() error
}
