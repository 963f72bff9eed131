package usecases_port

import (
	"context"
	"property-service/internal/core/domain"
)

type SearchPropertiesUseCase interface {
	Execute(ctx context.Context, raw map[string]string, identity *domain.Identity) (*domain.SearchResult, error)
}
