package usecases_port

import (
	"context"
	"property-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetPropertyUseCase interface {
	Execute(ctx context.Context, id uuid.UUID) (*domain.Property, error)
}

type CreatePropertyUseCase interface {
	Execute(ctx context.Context, draft domain.PropertyDraft, identity domain.Identity) (*domain.Property, error)
}

type UpdatePropertyUseCase interface {
	Execute(ctx context.Context, id uuid.UUID, draft domain.PropertyDraft, identity domain.Identity) (*domain.Property, error)
}

type DeletePropertyUseCase interface {
	Execute(ctx context.Context, id uuid.UUID, identity domain.Identity) error
}

type GetPropertyStatsUseCase interface {
	Execute(ctx context.Context) (*domain.PropertyStats, error)
}
