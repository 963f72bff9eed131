package usecase

import (
	"context"
	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"

	"github.com/google/uuid"
)

// DeletePropertyUseCase performs the soft delete: the listing stays in
// the store with is_active = false and disappears from every query.
type DeletePropertyUseCase struct {
	storage port.PropertyStoragePort
	events  port.EventPublisherPort
}

func NewDeletePropertyUseCase(storage port.PropertyStoragePort, events port.EventPublisherPort) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{storage: storage, events: events}
}

func (uc *DeletePropertyUseCase) Execute(ctx context.Context, id uuid.UUID, identity domain.Identity) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "DeleteProperty",
		"property_id": id.String(),
		"caller_id":   identity.UserID.String(),
	})
	ucLogger.Info("Use case started", nil)

	property, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	if !property.CanBeManagedBy(identity) {
		ucLogger.Warn("Caller is not allowed to manage this property", nil)
		return domain.ErrForbidden
	}

	if err := uc.storage.Deactivate(ctx, id); err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	publishPropertyEvent(ctx, uc.events, ucLogger, domain.NewPropertyEvent(domain.EventPropertyDeactivated, property))

	ucLogger.Info("Property deactivated", nil)
	return nil
}
