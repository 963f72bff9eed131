package usecase

import (
	"context"
	"property-service/internal/contextkeys"
	"property-service/internal/core/port"

	"github.com/google/uuid"
)

type CheckFavoriteUseCase struct {
	favorites port.FavoritesRepositoryPort
}

func NewCheckFavoriteUseCase(favorites port.FavoritesRepositoryPort) *CheckFavoriteUseCase {
	return &CheckFavoriteUseCase{favorites: favorites}
}

func (uc *CheckFavoriteUseCase) Execute(ctx context.Context, userID, propertyID uuid.UUID) (bool, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	favorited, err := uc.favorites.IsFavorited(ctx, userID, propertyID)
	if err != nil {
		logger.WithFields(port.Fields{"use_case": "CheckFavorite"}).Error("Repository returned an error", err, nil)
		return false, err
	}
	return favorited, nil
}
