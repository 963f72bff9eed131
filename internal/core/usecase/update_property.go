package usecase

import (
	"context"
	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"

	"github.com/google/uuid"
)

type UpdatePropertyUseCase struct {
	storage port.PropertyStoragePort
	events  port.EventPublisherPort
}

func NewUpdatePropertyUseCase(storage port.PropertyStoragePort, events port.EventPublisherPort) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{storage: storage, events: events}
}

func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, id uuid.UUID, draft domain.PropertyDraft, identity domain.Identity) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdateProperty",
		"property_id": id.String(),
		"caller_id":   identity.UserID.String(),
	})
	ucLogger.Info("Use case started", nil)

	property, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	if !property.CanBeManagedBy(identity) {
		ucLogger.Warn("Caller is not allowed to manage this property", nil)
		return nil, domain.ErrForbidden
	}

	property.ApplyDraft(draft)
	if err := uc.storage.Update(ctx, property); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	publishPropertyEvent(ctx, uc.events, ucLogger, domain.NewPropertyEvent(domain.EventPropertyUpdated, property))

	ucLogger.Info("Property updated", nil)
	return property, nil
}

// publishPropertyEvent is shared by the write use cases. Publishing is
// best effort.
func publishPropertyEvent(ctx context.Context, events port.EventPublisherPort, logger port.LoggerPort, event domain.PropertyEvent) {
	if events == nil {
		return
	}
	if err := events.PublishPropertyEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish property event", port.Fields{
			"event_type": event.Type,
			"error":      err.Error(),
		})
	}
}
