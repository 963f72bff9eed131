package usecases_port

import (
	"context"
	"property-service/internal/core/domain"

	"github.com/google/uuid"
)

type AddToFavoritesUseCase interface {
	Execute(ctx context.Context, userID, propertyID uuid.UUID) error
}

type RemoveFromFavoritesUseCase interface {
	Execute(ctx context.Context, userID, propertyID uuid.UUID) error
}

type GetUserFavoritesUseCase interface {
	Execute(ctx context.Context, userID uuid.UUID, page, limit int) (*domain.PaginatedFavorites, domain.Pagination, error)
}

type CheckFavoriteUseCase interface {
	Execute(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
}
