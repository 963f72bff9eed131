package usecase

import (
	"context"
	"property-service/internal/contextkeys"
	"property-service/internal/core/port"

	"github.com/google/uuid"
)

type RemoveFromFavoritesUseCase struct {
	favorites port.FavoritesRepositoryPort
}

func NewRemoveFromFavoritesUseCase(favorites port.FavoritesRepositoryPort) *RemoveFromFavoritesUseCase {
	return &RemoveFromFavoritesUseCase{favorites: favorites}
}

func (uc *RemoveFromFavoritesUseCase) Execute(ctx context.Context, userID, propertyID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "RemoveFromFavorites",
		"user_id":     userID.String(),
		"property_id": propertyID.String(),
	})

	if err := uc.favorites.Remove(ctx, userID, propertyID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	ucLogger.Info("Removed from favorites", nil)
	return nil
}
