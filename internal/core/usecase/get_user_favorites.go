package usecase

import (
	"context"
	"property-service/internal/contextkeys"
	"property-service/internal/core/domain"
	"property-service/internal/core/port"

	"github.com/google/uuid"
)

type GetUserFavoritesUseCase struct {
	favorites port.FavoritesRepositoryPort
}

func NewGetUserFavoritesUseCase(favorites port.FavoritesRepositoryPort) *GetUserFavoritesUseCase {
	return &GetUserFavoritesUseCase{favorites: favorites}
}

func (uc *GetUserFavoritesUseCase) Execute(ctx context.Context, userID uuid.UUID, page, limit int) (*domain.PaginatedFavorites, domain.Pagination, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetUserFavorites",
		"user_id":  userID.String(),
		"page":     page,
		"limit":    limit,
	})

	// Same clamping rules as the listing endpoint.
	if page < 1 {
		page = domain.DefaultPage
	}
	if limit < 1 || limit > domain.MaxLimit {
		limit = domain.DefaultLimit
	}

	result, err := uc.favorites.FindPaginatedByUser(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, domain.Pagination{}, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Items),
	})
	return result, domain.NewPagination(page, limit, result.TotalCount), nil
}
