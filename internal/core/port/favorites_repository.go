package port

import (
	"context"
	"property-service/internal/core/domain"

	"github.com/google/uuid"
)

// FavoritesRepositoryPort stores the user/property favorite pairs.
type FavoritesRepositoryPort interface {
	Add(ctx context.Context, userID, propertyID uuid.UUID) error
	Remove(ctx context.Context, userID, propertyID uuid.UUID) error
	FindPaginatedByUser(ctx context.Context, userID uuid.UUID, limit, offset int) (*domain.PaginatedFavorites, error)
	IsFavorited(ctx context.Context, userID, propertyID uuid.UUID) (bool, error)
}
