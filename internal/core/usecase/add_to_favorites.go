package usecase

import (
	"context"
	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"

	"github.com/google/uuid"
)

type AddToFavoritesUseCase struct {
	favorites port.FavoritesRepositoryPort
	storage   port.PropertyStoragePort
}

func NewAddToFavoritesUseCase(favorites port.FavoritesRepositoryPort, storage port.PropertyStoragePort) *AddToFavoritesUseCase {
	return &AddToFavoritesUseCase{favorites: favorites, storage: storage}
}

func (uc *AddToFavoritesUseCase) Execute(ctx context.Context, userID, propertyID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "AddToFavorites",
		"user_id":     userID.String(),
		"property_id": propertyID.String(),
	})
	ucLogger.Info("Use case started", nil)

	property, err := uc.storage.GetByID(ctx, propertyID)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return err
	}

	// Users may not favorite their own listings.
	if property.OwnerID == userID {
		ucLogger.Warn("User tried to favorite own property", nil)
		return domain.ErrOwnFavorite
	}

	if err := uc.favorites.Add(ctx, userID, propertyID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	ucLogger.Info("Added to favorites", nil)
	return nil
}
