package port

import (
	"context"
	"property-service/internal/core/domain"

	"github.com/google/uuid"
)

// PropertyStoragePort is the persistence collaborator of the listing
// engine and the property CRUD use cases.
//
// FindWithFilter and CountWithFilter take the same immutable FilterSpec
// snapshot and are independent of each other, so the engine may run them
// concurrently.
type PropertyStoragePort interface {
	FindWithFilter(ctx context.Context, filter domain.FilterSpec, sort domain.SortSpec, limit, offset int) ([]domain.PropertyCard, error)
	CountWithFilter(ctx context.Context, filter domain.FilterSpec) (int64, error)

	GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error)
	Create(ctx context.Context, property *domain.Property) error
	Update(ctx context.Context, property *domain.Property) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	IncrementViews(ctx context.Context, id uuid.UUID) error
	GetStats(ctx context.Context) (*domain.PropertyStats, error)
}
