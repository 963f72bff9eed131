package port

import (
	"context"
	"property-service/internal/core/domain"

	"github.com/google/uuid"
)

// UserRepositoryPort is the persistence collaborator for accounts.
type UserRepositoryPort interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
