package usecase

import (
	"context"
	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"
)

type CreatePropertyUseCase struct {
	storage port.PropertyStoragePort
	events  port.EventPublisherPort
}

func NewCreatePropertyUseCase(storage port.PropertyStoragePort, events port.EventPublisherPort) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{storage: storage, events: events}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, draft domain.PropertyDraft, identity domain.Identity) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateProperty",
		"owner_id": identity.UserID.String(),
	})
	ucLogger.Info("Use case started", nil)

	property := domain.NewProperty(draft, identity.UserID)
	if err := uc.storage.Create(ctx, property); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	publishPropertyEvent(ctx, uc.events, ucLogger, domain.NewPropertyEvent(domain.EventPropertyCreated, property))

	ucLogger.Info("Property created", port.Fields{"property_id": property.ID.String()})
	return property, nil
}
